// Package command implements the closed set of control messages the PSVR
// understands: one type per message, each knowing its wire id and how to
// encode its own payload.
package command

import "github.com/tethervr/psvr-go/protocol"

// Command is anything that can be encoded into a control frame.
type Command interface {
	// ID is the command's fixed wire identifier.
	ID() uint8
	// Payload returns the command-specific payload bytes.
	Payload() []byte
}

// Encode turns a Command into its 64-byte on-wire frame.
func Encode(c Command) [protocol.FrameSize]byte {
	return protocol.NewFrame(c.ID(), c.Payload()).Encode()
}

// boolU32 renders a bool as the 1/0 little-endian uint32 the device expects
// for its on/off style flags.
func boolU32(w *protocol.Writer, v bool) *protocol.Writer {
	if v {
		return w.U32(1)
	}
	return w.U32(0)
}

// SetPower turns the headset's power on or off.
type SetPower struct {
	On bool
}

func (SetPower) ID() uint8 { return 0x17 }

func (c SetPower) Payload() []byte {
	return boolU32(protocol.NewWriter(), c.On).Payload()
}

// EnableVrTracking enables positional/rotational VR tracking.
type EnableVrTracking struct{}

func (EnableVrTracking) ID() uint8 { return 0x11 }

func (EnableVrTracking) Payload() []byte {
	return protocol.NewWriter().U32(0xFFFFFF00).U32(0x00000000).Payload()
}

// SetVrMode switches the headset's display between cinematic and VR mode.
type SetVrMode struct {
	VrMode bool
}

func (SetVrMode) ID() uint8 { return 0x23 }

func (c SetVrMode) Payload() []byte {
	return boolU32(protocol.NewWriter(), c.VrMode).Payload()
}

// BoxOff turns off the processor unit ("black box").
type BoxOff struct{}

func (BoxOff) ID() uint8 { return 0x13 }

func (BoxOff) Payload() []byte {
	return protocol.NewWriter().U32(1).Payload()
}

// SetCinematicConfiguration configures the non-VR cinematic display mode:
// simulated screen size/distance, IPD, brightness and mic volume.
type SetCinematicConfiguration struct {
	Mask           uint8
	ScreenSize     uint8
	ScreenDistance uint8
	IPD            uint8
	Reserved0      [6]uint8
	Brightness     uint8
	MicVolume      uint8
	Reserved1      [2]uint8
	Unknown        bool
	Reserved2      uint8
}

func (SetCinematicConfiguration) ID() uint8 { return 0x21 }

func (c SetCinematicConfiguration) Payload() []byte {
	w := protocol.NewWriter().
		U8(c.Mask).
		U8(c.ScreenSize).
		U8(c.ScreenDistance).
		U8(c.IPD).
		Bytes(c.Reserved0[:]).
		U8(c.Brightness).
		U8(c.MicVolume).
		Bytes(c.Reserved1[:])
	unknown := uint8(0)
	if c.Unknown {
		unknown = 1
	}
	return w.U8(unknown).U8(c.Reserved2).Payload()
}

// SetHmdLeds sets the brightness of the headset's front-facing LEDs.
// LedMask selects which of the 9 LEDs the corresponding Values byte applies to.
type SetHmdLeds struct {
	LedMask  uint16
	Values   [9]uint8
	Reserved [5]uint8
}

func (SetHmdLeds) ID() uint8 { return 0x15 }

func (c SetHmdLeds) Payload() []byte {
	return protocol.NewWriter().
		U16(c.LedMask).
		Bytes(c.Values[:]).
		Bytes(c.Reserved[:]).
		Payload()
}

// ReadDeviceInfo requests the headset's device information block.
type ReadDeviceInfo struct{}

func (ReadDeviceInfo) ID() uint8 { return 0x81 }

func (ReadDeviceInfo) Payload() []byte {
	return protocol.NewWriter().U8(0x80).Zeros(7).Payload()
}
