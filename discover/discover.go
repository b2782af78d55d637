// Package discover enumerates PSVR devices attached to the system and
// groups their USB HID interfaces into a single logical device.
package discover

import (
	"github.com/tethervr/psvr-go/errs"
	"github.com/tethervr/psvr-go/hidtransport"
	"github.com/tethervr/psvr-go/usbrole"
)

// Interface pairs a classified role with the transport Info needed to open
// it.
type Interface struct {
	Role usbrole.Role
	Info hidtransport.Info
}

// DeviceInfo is one PSVR device's discovered interfaces. Interfaces that
// fail role classification (unknown interface numbers reported by the OS)
// are skipped rather than failing discovery outright.
type DeviceInfo struct {
	Interfaces []Interface
}

// Interface returns the discovered interface for role, if present.
func (d DeviceInfo) Interface(role usbrole.Role) (hidtransport.Info, bool) {
	for _, i := range d.Interfaces {
		if i.Role == role {
			return i.Info, true
		}
	}
	return hidtransport.Info{}, false
}

// All returns every PSVR device currently attached, matching the PSVR's
// well-known vendor and product IDs. The current hardware always exposes
// its interfaces as a single composite USB device, so this assumes at most
// one PSVR is plugged in and groups all matching interfaces into a single
// DeviceInfo; multiple physically distinct headsets are not distinguished
// from one another.
func All(enumerator hidtransport.Enumerator) ([]DeviceInfo, error) {
	return AllWithIDs(enumerator, usbrole.VendorID, usbrole.ProductID)
}

// AllWithIDs is like All but filters on caller-supplied vendor/product IDs
// instead of the PSVR's well-known ones, so a differently-badged or
// emulated composite device can be discovered the same way.
func AllWithIDs(enumerator hidtransport.Enumerator, vendorID, productID uint16) ([]DeviceInfo, error) {
	infos, err := enumerator.Enumerate(vendorID, productID)
	if err != nil {
		return nil, errs.Wrap(err, "could not enumerate HID devices")
	}
	if len(infos) == 0 {
		return nil, nil
	}

	device := DeviceInfo{}
	for _, info := range infos {
		role, err := usbrole.FromInterfaceNumber(info.Interface)
		if err != nil {
			continue
		}
		device.Interfaces = append(device.Interfaces, Interface{Role: role, Info: info})
	}
	return []DeviceInfo{device}, nil
}

// First returns the first discovered PSVR device, or ok=false if none are
// attached.
func First(enumerator hidtransport.Enumerator) (DeviceInfo, bool, error) {
	return FirstWithIDs(enumerator, usbrole.VendorID, usbrole.ProductID)
}

// FirstWithIDs is like First but filters on caller-supplied vendor/product
// IDs instead of the PSVR's well-known ones.
func FirstWithIDs(enumerator hidtransport.Enumerator, vendorID, productID uint16) (DeviceInfo, bool, error) {
	devices, err := AllWithIDs(enumerator, vendorID, productID)
	if err != nil {
		return DeviceInfo{}, false, err
	}
	if len(devices) == 0 {
		return DeviceInfo{}, false, nil
	}
	return devices[0], true, nil
}
