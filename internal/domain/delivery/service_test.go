// internal/domain/delivery/service_test.go
package delivery

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopping-assistant/internal/config"
	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// fakeWarehouseStore serves a fixed warehouse snapshot
type fakeWarehouseStore struct {
	warehouses []Warehouse
	err        error
}

func (f *fakeWarehouseStore) ActiveWarehouses(ctx context.Context) ([]Warehouse, error) {
	return f.warehouses, f.err
}

func testWarehouses() []Warehouse {
	dallas := GeocodeZip("75201")
	fortWorth := GeocodeZip("76102")

	return []Warehouse{
		{
			ID: 1, Name: "Dallas Central", City: "Dallas", State: "TX",
			Lat: dallas.Lat, Lng: dallas.Lng, DeliveryRadiusKm: 25, IsActive: true,
			Options: []OptionTemplate{
				{WarehouseID: 1, Type: OptionExpress, BaseCost: 999, BaseEtaMinutes: 45, PerKmMinutes: 2},
				{WarehouseID: 1, Type: OptionStandard, BaseCost: 499, BaseEtaMinutes: 120, PerKmMinutes: 3},
				{WarehouseID: 1, Type: OptionScheduled, BaseCost: 299, BaseEtaMinutes: 240, PerKmMinutes: 1},
			},
		},
		{
			ID: 2, Name: "Fort Worth Hub", City: "Fort Worth", State: "TX",
			Lat: fortWorth.Lat, Lng: fortWorth.Lng, DeliveryRadiusKm: 30, IsActive: true,
			Options: []OptionTemplate{
				{WarehouseID: 2, Type: OptionStandard, BaseCost: 499, BaseEtaMinutes: 120, PerKmMinutes: 3},
			},
		},
	}
}

func newTestService(store WarehouseStore) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(store, config.DeliveryConfig{DefaultMaxWaitMinutes: 120}, log)
}

func dallasAddress() Address {
	return Address{Street: "500 Main St", City: "Dallas", State: "TX", ZipCode: "75204"}
}

func someProducts() []catalog.Product {
	return []catalog.Product{{ID: 1, Name: "Whole Milk", Slug: "whole-milk", Price: 349}}
}

func TestNearbyWarehousesWithinRadiusAndOrdered(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	nearby, err := svc.NearbyWarehouses(context.Background(), dallasAddress())
	require.NoError(t, err)
	require.NotEmpty(t, nearby)

	for i, n := range nearby {
		assert.LessOrEqual(t, n.DistanceKm, n.Warehouse.DeliveryRadiusKm)
		if i > 0 {
			assert.LessOrEqual(t, nearby[i-1].DistanceKm, n.DistanceKm)
		}
	}

	// A downtown Dallas address is served by the Dallas warehouse first.
	assert.Equal(t, uint(1), nearby[0].Warehouse.ID)
}

func TestProcessDeliveryFlowOutOfAreaZip(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	address := Address{Street: "1 Far Away Rd", City: "Mumbai", State: "MH", ZipCode: "400001"}
	_, err := svc.ProcessDeliveryFlow(context.Background(), someProducts(), address, nil)
	require.Error(t, err)
	assert.True(t, errs.IsServiceArea(err))
}

func TestProcessDeliveryFlowValidation(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})
	ctx := context.Background()

	_, err := svc.ProcessDeliveryFlow(ctx, nil, dallasAddress(), nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	missingZip := dallasAddress()
	missingZip.ZipCode = ""
	_, err = svc.ProcessDeliveryFlow(ctx, someProducts(), missingZip, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	missingStreet := dallasAddress()
	missingStreet.Street = ""
	_, err = svc.ProcessDeliveryFlow(ctx, someProducts(), missingStreet, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestProcessDeliveryFlowRecommendsCheapestWithinWait(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	result, err := svc.ProcessDeliveryFlow(context.Background(), someProducts(), dallasAddress(), nil)
	require.NoError(t, err)
	require.NotNil(t, result.RecommendedDelivery)
	require.NotEmpty(t, result.DeliveryOptions)

	rec := result.RecommendedDelivery
	assert.LessOrEqual(t, rec.EtaMinutes, 120)
	for _, opt := range result.DeliveryOptions {
		if opt.EtaMinutes <= 120 {
			assert.LessOrEqual(t, rec.Cost, opt.Cost)
		}
	}
}

func TestProcessDeliveryFlowTightWaitPicksFastest(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	// One minute fits no option, so the fastest wins regardless of cost.
	result, err := svc.ProcessDeliveryFlow(context.Background(), someProducts(), dallasAddress(), &Preferences{MaxWaitMinutes: 1})
	require.NoError(t, err)
	require.NotNil(t, result.RecommendedDelivery)

	for _, opt := range result.DeliveryOptions {
		assert.LessOrEqual(t, result.RecommendedDelivery.EtaMinutes, opt.EtaMinutes)
	}
}

func TestRecommendTieBreaksOnEta(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{})

	options := []Option{
		{ID: "wh1-standard", Cost: 499, EtaMinutes: 120},
		{ID: "wh1-scheduled", Cost: 499, EtaMinutes: 90},
	}
	rec := svc.recommend(options, &Preferences{MaxWaitMinutes: 180})
	require.NotNil(t, rec)
	assert.Equal(t, "wh1-scheduled", rec.ID)
}

func TestOptionsEtaGrowsWithDistance(t *testing.T) {
	warehouse := testWarehouses()[0]

	near := optionsAtDistance(warehouse, 2)
	far := optionsAtDistance(warehouse, 20)
	require.Len(t, near, 3)
	require.Len(t, far, 3)

	for i := range near {
		assert.Less(t, near[i].EtaMinutes, far[i].EtaMinutes, near[i].ID)
		assert.Equal(t, near[i].Cost, far[i].Cost, "cost does not vary with distance")
	}
}

func TestOptionsSortedByCostThenEta(t *testing.T) {
	options := optionsAtDistance(testWarehouses()[0], 5)
	for i := 1; i < len(options); i++ {
		prev, cur := options[i-1], options[i]
		if prev.Cost == cur.Cost {
			assert.LessOrEqual(t, prev.EtaMinutes, cur.EtaMinutes)
		} else {
			assert.Less(t, prev.Cost, cur.Cost)
		}
	}
}

func TestServiceAreaCoveredZip(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	info, err := svc.ServiceArea(context.Background(), "75201", "Dallas", "TX")
	require.NoError(t, err)
	assert.Equal(t, 1, info.AvailableWarehouses)
	assert.NotEmpty(t, info.DeliveryOptions)
	assert.Equal(t, float64(25), info.ServiceAreaKm)
}

func TestServiceAreaUncoveredZipIsNotAnError(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	info, err := svc.ServiceArea(context.Background(), "400001", "Mumbai", "MH")
	require.NoError(t, err)
	assert.Zero(t, info.AvailableWarehouses)
	assert.Empty(t, info.DeliveryOptions)
	assert.Zero(t, info.ServiceAreaKm)
}

func TestServiceAreaValidation(t *testing.T) {
	svc := newTestService(&fakeWarehouseStore{warehouses: testWarehouses()})

	_, err := svc.ServiceArea(context.Background(), "75201", "", "TX")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestDistanceKm(t *testing.T) {
	dallas := GeocodeZip("75201")
	assert.Zero(t, DistanceKm(dallas, dallas))

	houston := GeocodeZip("77002")
	d := DistanceKm(dallas, houston)
	// Dallas to Houston is roughly 360km by air.
	assert.InDelta(t, 360, d, 40)
	assert.InDelta(t, d, DistanceKm(houston, dallas), 0.001)
}

func TestGeocodeZipPrefixFallback(t *testing.T) {
	exact := GeocodeZip("75201")
	fallback := GeocodeZip("75299")
	assert.Less(t, DistanceKm(exact, fallback), 50.0)
}
