// Package hidtransport is the collaborator boundary between this module's
// protocol logic and the operating system's USB HID stack. Everything above
// this package talks to the small Device/Enumerator interfaces here; the
// real implementation wraps github.com/karalabe/hid, and tests substitute a
// mock transport that never touches actual hardware.
package hidtransport

import (
	"time"

	"github.com/tethervr/psvr-go/usbrole"
)

// Info describes one HID interface enumerated on the system, independent of
// whether it belongs to a device this module cares about.
type Info struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Interface int
}

// Device is a single open HID interface handle.
type Device interface {
	// Write sends one output report. It returns the number of bytes
	// accepted by the driver.
	Write(b []byte) (int, error)

	// ReadTimeout reads one input report, blocking at most timeout. A
	// timeout <= 0 performs a blocking read with no deadline.
	ReadTimeout(b []byte, timeout time.Duration) (int, error)

	// Close releases the underlying OS handle. Closing an already-closed
	// Device is a no-op.
	Close() error
}

// Enumerator discovers HID interfaces and opens them by path. The
// vendor/product filter is passed to each Enumerate call; implementations
// take no Config.
type Enumerator interface {
	// Enumerate lists every attached HID interface matching vendorID and
	// productID. A zero ID matches any value, mirroring hidapi's
	// convention.
	Enumerate(vendorID, productID uint16) ([]Info, error)

	// Open connects to a previously enumerated interface by its opaque
	// path.
	Open(path string) (Device, error)
}

// Config controls timeouts and bus identity applied by discovery. It plays
// the same role as the host-client transport's Config: a small bag of knobs
// the caller can override, with sane defaults otherwise.
type Config struct {
	// ReadTimeout bounds each single read ReceiveSensor makes on the
	// sensor interface; ReceiveSensor retries after a read that times out.
	ReadTimeout time.Duration

	// VendorID and ProductID override the USB identity discovery filters
	// on. They default to the PSVR's well-known IDs; overriding them is
	// mainly useful for testing against a different composite device.
	VendorID  uint16
	ProductID uint16
}

func defaultConfig() Config {
	return Config{
		ReadTimeout: 250 * time.Millisecond,
		VendorID:    usbrole.VendorID,
		ProductID:   usbrole.ProductID,
	}
}

// DefaultConfig returns the transport defaults used when no Config is
// supplied.
func DefaultConfig() Config { return defaultConfig() }
