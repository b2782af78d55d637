// Package usbrole classifies the PSVR's composite USB interfaces by the
// interface number the host transport reports, so discovery can bind the
// right HID path to the right I/O role.
package usbrole

import "github.com/tethervr/psvr-go/errs"

// VendorID and ProductID identify the PSVR on the USB bus.
const (
	VendorID  = 0x054C
	ProductID = 0x09AF
)

// Role is a semantic tag for one of the PSVR's 9 USB interfaces.
type Role int

const (
	Audio3D Role = iota
	AudioControl
	AudioMic
	AudioChat
	HidSensor
	HidControl
	VideoStreamH264
	VideoStreamBulkIn
	HidControl2
)

func (r Role) String() string {
	switch r {
	case Audio3D:
		return "Audio3D"
	case AudioControl:
		return "AudioControl"
	case AudioMic:
		return "AudioMic"
	case AudioChat:
		return "AudioChat"
	case HidSensor:
		return "HidSensor"
	case HidControl:
		return "HidControl"
	case VideoStreamH264:
		return "VideoStreamH264"
	case VideoStreamBulkIn:
		return "VideoStreamBulkIn"
	case HidControl2:
		return "HidControl2"
	default:
		return "Unknown"
	}
}

// FromInterfaceNumber maps the raw USB interface number reported by the
// transport to its semantic Role. Interface numbers outside 0..=8 are not
// known PSVR interfaces.
func FromInterfaceNumber(n int) (Role, error) {
	if n < int(Audio3D) || n > int(HidControl2) {
		return 0, errs.Communication("usb interface '%d' is not a known PSVR interface number", n)
	}
	return Role(n), nil
}
