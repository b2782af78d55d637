package discover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tethervr/psvr-go/discover"
	"github.com/tethervr/psvr-go/hidtransport"
	"github.com/tethervr/psvr-go/usbrole"
)

func TestAllReturnsNoDevicesWhenNothingMatches(t *testing.T) {
	enumerator := hidtransport.NewMockEnumerator(nil, nil)
	devices, err := discover.All(enumerator)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestAllGroupsInterfacesIntoOneDevice(t *testing.T) {
	infos := []hidtransport.Info{
		{Path: "control", VendorID: usbrole.VendorID, ProductID: usbrole.ProductID, Interface: 5},
		{Path: "sensor", VendorID: usbrole.VendorID, ProductID: usbrole.ProductID, Interface: 4},
		{Path: "other-vendor", VendorID: 0x1234, ProductID: 0x5678, Interface: 5},
	}
	enumerator := hidtransport.NewMockEnumerator(infos, nil)

	devices, err := discover.All(enumerator)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	control, ok := devices[0].Interface(usbrole.HidControl)
	require.True(t, ok)
	assert.Equal(t, "control", control.Path)

	sensor, ok := devices[0].Interface(usbrole.HidSensor)
	require.True(t, ok)
	assert.Equal(t, "sensor", sensor.Path)
}

func TestAllSkipsInterfacesWithUnknownRoles(t *testing.T) {
	infos := []hidtransport.Info{
		{Path: "weird", VendorID: usbrole.VendorID, ProductID: usbrole.ProductID, Interface: 42},
		{Path: "sensor", VendorID: usbrole.VendorID, ProductID: usbrole.ProductID, Interface: 4},
	}
	enumerator := hidtransport.NewMockEnumerator(infos, nil)

	devices, err := discover.All(enumerator)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Len(t, devices[0].Interfaces, 1)
}

func TestFirstReportsNotFoundWithoutError(t *testing.T) {
	enumerator := hidtransport.NewMockEnumerator(nil, nil)
	_, ok, err := discover.First(enumerator)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllWithIDsFiltersOnOverriddenVendorAndProduct(t *testing.T) {
	infos := []hidtransport.Info{
		{Path: "control", VendorID: 0x1234, ProductID: 0x5678, Interface: 5},
		{Path: "sensor", VendorID: 0x1234, ProductID: 0x5678, Interface: 4},
		{Path: "psvr-control", VendorID: usbrole.VendorID, ProductID: usbrole.ProductID, Interface: 5},
	}
	enumerator := hidtransport.NewMockEnumerator(infos, nil)

	devices, err := discover.AllWithIDs(enumerator, 0x1234, 0x5678)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Len(t, devices[0].Interfaces, 2)

	control, ok := devices[0].Interface(usbrole.HidControl)
	require.True(t, ok)
	assert.Equal(t, "control", control.Path)
}
