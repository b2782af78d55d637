// Package client ties protocol framing, device discovery and orientation
// fusion together into a single PSVR session.
package client

import (
	"errors"
	"iter"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tethervr/psvr-go/command"
	"github.com/tethervr/psvr-go/discover"
	"github.com/tethervr/psvr-go/errs"
	"github.com/tethervr/psvr-go/fusion"
	"github.com/tethervr/psvr-go/hidtransport"
	"github.com/tethervr/psvr-go/internal/log"
	"github.com/tethervr/psvr-go/sensor"
	"github.com/tethervr/psvr-go/usbrole"
)

// Session is one open connection to a PSVR: its control and sensor
// interfaces, plus the running orientation estimate fed by every sensor
// readout received through it.
type Session struct {
	control hidtransport.Device
	sensor  hidtransport.Device
	fusion  *fusion.State
	cfg     hidtransport.Config
	raw     log.RawLogger

	now func() time.Time
}

// Option customizes a Session at Open time.
type Option func(*Session)

// WithRawLogger traces every control write and every complete sensor frame
// read through rl, in addition to the normal command/sensor API. Short
// report-ID-only reads and wrong-size reads are not traced. It is meant for debugging the
// wire protocol, not for production use.
func WithRawLogger(rl log.RawLogger) Option {
	return func(s *Session) { s.raw = rl }
}

// Open discovers the first attached PSVR and opens its control and sensor
// interfaces. It returns a communication error if no device is attached or
// if either required interface is missing.
func Open(enumerator hidtransport.Enumerator, opts ...Option) (*Session, error) {
	return OpenWithConfig(enumerator, hidtransport.DefaultConfig(), opts...)
}

// OpenWithConfig is like Open but lets the caller override transport
// timeouts and the USB vendor/product IDs discovery filters on.
func OpenWithConfig(enumerator hidtransport.Enumerator, cfg hidtransport.Config, opts ...Option) (*Session, error) {
	device, ok, err := discover.FirstWithIDs(enumerator, cfg.VendorID, cfg.ProductID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Communication("no PSVR device found")
	}
	return openDevice(enumerator, device, cfg, opts...)
}

func openDevice(enumerator hidtransport.Enumerator, device discover.DeviceInfo, cfg hidtransport.Config, opts ...Option) (*Session, error) {
	controlInfo, ok := device.Interface(usbrole.HidControl)
	if !ok {
		return nil, errs.Communication("PSVR does not expose an HID control interface")
	}
	sensorInfo, ok := device.Interface(usbrole.HidSensor)
	if !ok {
		return nil, errs.Communication("PSVR does not expose an HID sensor interface")
	}

	control, err := enumerator.Open(controlInfo.Path)
	if err != nil {
		return nil, errs.Wrap(err, "could not open HID control interface")
	}
	sensorDevice, err := enumerator.Open(sensorInfo.Path)
	if err != nil {
		_ = control.Close()
		return nil, errs.Wrap(err, "could not open HID sensor interface")
	}

	session := &Session{
		control: control,
		sensor:  sensorDevice,
		fusion:  fusion.NewState(),
		cfg:     cfg,
		raw:     log.NewRaw(nil),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(session)
	}
	return session, nil
}

// Result pairs a discovered device's Session with any error opening it, so
// Sessions can report a per-device failure without abandoning the rest of
// the walk.
type Result struct {
	Session *Session
	Err     error
}

// Sessions iterates every PSVR device currently discoverable through
// enumerator and attempts to open a Session for each. Unlike Open, a
// failure opening one device does not prevent later devices in the walk
// from being tried; callers inspect Result.Err per item. Iteration stops
// early if the consuming range loop breaks.
func Sessions(enumerator hidtransport.Enumerator, cfg hidtransport.Config, opts ...Option) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		devices, err := discover.AllWithIDs(enumerator, cfg.VendorID, cfg.ProductID)
		if err != nil {
			yield(Result{Err: err})
			return
		}
		for _, device := range devices {
			session, err := openDevice(enumerator, device, cfg, opts...)
			if !yield(Result{Session: session, Err: err}) {
				return
			}
		}
	}
}

// SendCommand encodes and writes a single command frame to the control
// interface.
func (s *Session) SendCommand(c command.Command) error {
	frame := command.Encode(c)
	s.raw.Log(true, frame[:])
	if _, err := s.control.Write(frame[:]); err != nil {
		return errs.Wrap(err, "could not send command")
	}
	return nil
}

// ReceiveSensor blocks until one full sensor readout has been received,
// retrying short reads that only carry a report ID byte. Every readout's
// first inertial instant is fed into the orientation fusion state.
func (s *Session) ReceiveSensor() (sensor.Readout, error) {
	buf := make([]byte, sensor.FrameSize)
	for {
		n, err := s.sensor.ReadTimeout(buf, s.cfg.ReadTimeout)
		if err != nil {
			return sensor.Readout{}, errs.Wrap(err, "could not read from device")
		}
		if n <= 1 {
			continue // only the report ID byte was read; try again.
		}
		if n != sensor.FrameSize {
			return sensor.Readout{}, errs.Communication("read psvr sensor frame of %d bytes but should be %d bytes", n, sensor.FrameSize)
		}
		s.raw.Log(false, buf)

		readout, err := sensor.Decode(buf)
		if err != nil {
			return sensor.Readout{}, err
		}

		instant := readout.Instants[0]
		gx, gy, gz := instant.Gyroscope()
		ax, ay, az := instant.Accelerometer()
		s.fusion.Update(mgl64.Vec3{gx, gy, gz}, mgl64.Vec3{ax, ay, az}, s.now())

		return readout, nil
	}
}

// PowerOn powers on the headset.
func (s *Session) PowerOn() error { return s.SetPower(true) }

// PowerOff powers off the headset.
func (s *Session) PowerOff() error { return s.SetPower(false) }

// SetPower sets the headset's power state.
func (s *Session) SetPower(on bool) error {
	return s.SendCommand(command.SetPower{On: on})
}

// VrMode switches the headset's display into VR mode.
func (s *Session) VrMode() error {
	return s.SendCommand(command.SetVrMode{VrMode: true})
}

// VrTracking enables the headset's positional tracking LEDs.
func (s *Session) VrTracking() error {
	return s.SendCommand(command.EnableVrTracking{})
}

// Orientation returns the current fused headset orientation.
func (s *Session) Orientation() mgl64.Quat {
	return s.fusion.Orientation()
}

// Close powers off the headset and releases both HID handles. The control
// handle is closed even if powering off fails, and both close errors are
// reported if both occur.
func (s *Session) Close() error {
	powerErr := s.SetPower(false)
	controlErr := s.control.Close()
	sensorErr := s.sensor.Close()

	return errors.Join(powerErr, controlErr, sensorErr)
}
