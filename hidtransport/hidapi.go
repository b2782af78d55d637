package hidtransport

import (
	"time"

	"github.com/karalabe/hid"
)

// hidapiEnumerator is the Enumerator backed by github.com/karalabe/hid,
// which in turn wraps the system's hidapi/libusb stack.
type hidapiEnumerator struct{}

// NewHidapiEnumerator returns the production Enumerator. It talks to
// whatever HID devices are actually attached; tests should use a mock
// Enumerator instead.
func NewHidapiEnumerator() Enumerator {
	return hidapiEnumerator{}
}

func (hidapiEnumerator) Enumerate(vendorID, productID uint16) ([]Info, error) {
	devices, err := hid.Enumerate(vendorID, productID)
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(devices))
	for _, d := range devices {
		infos = append(infos, Info{
			Path:      d.Path,
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Interface: d.Interface,
		})
	}
	return infos, nil
}

func (hidapiEnumerator) Open(path string) (Device, error) {
	devices, err := hid.Enumerate(0, 0)
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.Path != path {
			continue
		}
		dev, err := d.Open()
		if err != nil {
			return nil, err
		}
		return hidapiDevice{dev}, nil
	}
	return nil, hid.ErrDeviceClosed
}

// hidapiDevice adapts hid.Device's int-millisecond ReadTimeout signature to
// this package's time.Duration based one.
type hidapiDevice struct {
	dev hid.Device
}

func (d hidapiDevice) Write(b []byte) (int, error) { return d.dev.Write(b) }

func (d hidapiDevice) ReadTimeout(b []byte, timeout time.Duration) (int, error) {
	ms := int(timeout / time.Millisecond)
	if timeout <= 0 {
		ms = -1
	}
	return d.dev.ReadTimeout(b, ms)
}

func (d hidapiDevice) Close() error { return d.dev.Close() }
