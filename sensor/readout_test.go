package sensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tethervr/psvr-go/sensor"
)

func TestDecodeAllZeroFrame(t *testing.T) {
	readout, err := sensor.Decode(make([]byte, sensor.FrameSize))
	require.NoError(t, err)

	assert.Equal(t, sensor.Buttons{}, readout.Buttons)
	assert.Equal(t, uint8(0), readout.Volume)
	assert.Equal(t, sensor.Status{}, readout.Status)
	assert.Equal(t, [2]sensor.InertiaInstant{{}, {}}, readout.Instants)
}

func TestDecodeButtonBits(t *testing.T) {
	raw := make([]byte, sensor.FrameSize)
	raw[0] = 0b0000_0110
	raw[8] = 0b0001_0001

	readout, err := sensor.Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, sensor.Buttons{Plus: true, Minus: true, Mute: false}, readout.Buttons)
	assert.True(t, readout.Status.Worn)
	assert.True(t, readout.Status.HeadphoneConnected)
	assert.False(t, readout.Status.DisplayActive)
	assert.False(t, readout.Status.HdmiDisconnected)
	assert.False(t, readout.Status.MicrophoneMuted)
	assert.False(t, readout.Status.Tick)
}

func TestDecodeAcceptsExactly64Bytes(t *testing.T) {
	raw := make([]byte, sensor.FrameSize)
	_, err := sensor.Decode(raw)
	require.NoError(t, err)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := sensor.Decode(make([]byte, 63))
	assert.ErrorContains(t, err, "63")
	assert.ErrorContains(t, err, "64")

	_, err = sensor.Decode(make([]byte, 65))
	assert.Error(t, err)
}

func TestDecodeRoundTripsInertiaInstants(t *testing.T) {
	raw := make([]byte, sensor.FrameSize)
	// instant[0] gyro yaw=1000
	raw[20] = 0xE8
	raw[21] = 0x03
	readout, err := sensor.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, int16(1000), readout.Instants[0].RawGyro[0])
}
