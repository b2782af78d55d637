package hidtransport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tethervr/psvr-go/hidtransport"
)

func TestMockEnumeratorFiltersByVendorAndProduct(t *testing.T) {
	infos := []hidtransport.Info{
		{Path: "a", VendorID: 0x054C, ProductID: 0x09AF, Interface: 4},
		{Path: "b", VendorID: 0x054C, ProductID: 0x09AF, Interface: 5},
		{Path: "c", VendorID: 0x1234, ProductID: 0x5678, Interface: 0},
	}
	enumerator := hidtransport.NewMockEnumerator(infos, nil)

	matched, err := enumerator.Enumerate(0x054C, 0x09AF)
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	all, err := enumerator.Enumerate(0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMockEnumeratorOpenUnknownPathErrors(t *testing.T) {
	enumerator := hidtransport.NewMockEnumerator(nil, nil)
	_, err := enumerator.Open("missing")
	assert.Error(t, err)
}

func TestMockDeviceRecordsWritesAndServesQueuedReports(t *testing.T) {
	dev := &hidtransport.MockDevice{Reports: [][]byte{{1, 2, 3}}}
	enumerator := hidtransport.NewMockEnumerator(
		[]hidtransport.Info{{Path: "sensor"}},
		map[string]hidtransport.Device{"sensor": dev},
	)

	opened, err := enumerator.Open("sensor")
	require.NoError(t, err)

	n, err := opened.Write([]byte{0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, [][]byte{{0xAA, 0xBB}}, dev.Written)

	buf := make([]byte, 8)
	n, err = opened.ReadTimeout(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, buf[:n])

	require.NoError(t, opened.Close())
	assert.True(t, dev.Closed)
}
