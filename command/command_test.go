package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tethervr/psvr-go/command"
	"github.com/tethervr/psvr-go/protocol"
)

func TestSetPowerOnEncoding(t *testing.T) {
	frame := command.Encode(command.SetPower{On: true})
	assert.Equal(t, []byte{0x17, 0x00, 0xAA, 0x04, 0x01, 0x00, 0x00, 0x00}, frame[:8])
	assert.Equal(t, make([]byte, 56), frame[8:])
}

func TestSetPowerOffEncoding(t *testing.T) {
	frame := command.Encode(command.SetPower{On: false})
	assert.Equal(t, []byte{0x17, 0x00, 0xAA, 0x04, 0x00, 0x00, 0x00, 0x00}, frame[:8])
}

func TestEnableVrTracking(t *testing.T) {
	frame := command.Encode(command.EnableVrTracking{})
	assert.Equal(t, []byte{0x11, 0x00, 0xAA, 0x08, 0x00, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, frame[:12])
}

func TestSetCinematicConfigurationLength(t *testing.T) {
	c := command.SetCinematicConfiguration{
		Brightness: 77,
		MicVolume:  95,
		Reserved1:  [2]uint8{9, 9},
		Unknown:    true,
		Reserved2:  127,
	}
	assert.Len(t, c.Payload(), 16)

	frame := command.Encode(c)
	assert.Len(t, frame, protocol.FrameSize)
}

func TestSetHmdLedsLength(t *testing.T) {
	c := command.SetHmdLeds{
		LedMask:  0xdead,
		Values:   [9]uint8{4, 4, 4, 4, 4, 4, 4, 4, 4},
		Reserved: [5]uint8{5, 5, 5, 5, 5},
	}
	assert.Len(t, c.Payload(), 16)
}

func TestReadDeviceInfo(t *testing.T) {
	c := command.ReadDeviceInfo{}
	assert.Equal(t, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, c.Payload())
}

func TestAllCommandsEncodeToFixedFrameSize(t *testing.T) {
	cmds := []command.Command{
		command.SetPower{On: true},
		command.EnableVrTracking{},
		command.SetVrMode{VrMode: true},
		command.BoxOff{},
		command.SetCinematicConfiguration{},
		command.SetHmdLeds{},
		command.ReadDeviceInfo{},
	}
	for _, c := range cmds {
		frame := command.Encode(c)
		assert.Len(t, frame, protocol.FrameSize, "%T", c)
		assert.Equal(t, uint8(0xAA), frame[2], "%T magic byte", c)
		assert.Equal(t, uint8(0), frame[1], "%T status byte", c)
		assert.Equal(t, uint8(len(c.Payload())), frame[3], "%T length byte", c)
	}
}
