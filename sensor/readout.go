// Package sensor decodes the PSVR's 64-byte sensor report into button
// state, headset status and the two inertial instants it carries, and
// converts the raw IMU counts into radians/second and g-normalized units.
package sensor

import (
	"github.com/tethervr/psvr-go/errs"
	"github.com/tethervr/psvr-go/protocol"
)

// FrameSize is the fixed size of a sensor report.
const FrameSize = protocol.FrameSize

// Buttons reports the state of the headset's three physical buttons.
type Buttons struct {
	Plus  bool
	Minus bool
	Mute  bool
}

// Status reports the headset's worn/display/connection state.
type Status struct {
	Worn               bool
	DisplayActive      bool
	HdmiDisconnected   bool
	MicrophoneMuted    bool
	HeadphoneConnected bool
	Tick               bool
}

// InertiaInstant carries one sample's raw gyroscope and accelerometer
// counts, in device axis order (yaw/pitch/roll, x/y/z).
type InertiaInstant struct {
	RawGyro  [3]int16
	RawAccel [3]int16
}

// Gyroscope converts the raw gyroscope counts to radians/second. The
// z axis is negated before conversion, per the device's axis convention.
func (i InertiaInstant) Gyroscope() (x, y, z float64) {
	return gyroRadPerSec(i.RawGyro[0]), gyroRadPerSec(i.RawGyro[1]), gyroRadPerSec(-i.RawGyro[2])
}

// Accelerometer converts the raw accelerometer counts to g-normalized
// units. The z axis is negated before conversion.
func (i InertiaInstant) Accelerometer() (x, y, z float64) {
	return accelG(i.RawAccel[0]), accelG(i.RawAccel[1]), accelG(-i.RawAccel[2])
}

// Readout is one fully decoded sensor report.
type Readout struct {
	Buttons  Buttons
	Volume   uint8
	Status   Status
	Instants [2]InertiaInstant
}

// Decode parses a 64-byte sensor report. A short or long input is a
// communication error; Decode never panics on malformed data.
func Decode(raw []byte) (Readout, error) {
	if len(raw) != FrameSize {
		return Readout{}, errs.Communication("read psvr sensor frame of %d bytes but should be %d bytes", len(raw), FrameSize)
	}

	r := protocol.NewReader(raw)

	buttons := decodeButtons(r.U8())
	r.Skip(1) // reserved
	volume := r.U8()
	r.Skip(5) // reserved
	status := decodeStatus(r.U8())
	r.Skip(11) // reserved

	instantOne := decodeInstant(r)
	instantTwo := decodeInstant(r)
	r.Skip(12) // reserved

	return Readout{
		Buttons:  buttons,
		Volume:   volume,
		Status:   status,
		Instants: [2]InertiaInstant{instantOne, instantTwo},
	}, nil
}

func decodeButtons(b uint8) Buttons {
	return Buttons{
		Plus:  b&0b0010 != 0,
		Minus: b&0b0100 != 0,
		Mute:  b&0b1000 != 0,
	}
}

func decodeStatus(b uint8) Status {
	return Status{
		Worn:               b&(1<<0) != 0,
		DisplayActive:      b&(1<<1) != 0,
		HdmiDisconnected:   b&(1<<2) != 0,
		MicrophoneMuted:    b&(1<<3) != 0,
		HeadphoneConnected: b&(1<<4) != 0,
		Tick:               b&(1<<6) != 0,
	}
}

func decodeInstant(r *protocol.Reader) InertiaInstant {
	instant := InertiaInstant{
		RawGyro:  [3]int16{r.I16(), r.I16(), r.I16()},
		RawAccel: [3]int16{r.I16(), r.I16(), r.I16()},
	}
	r.Skip(4) // reserved
	return instant
}
