// internal/domain/delivery/service.go
package delivery

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/config"
	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// WarehouseStore provides the read-only warehouse snapshot for one request
type WarehouseStore interface {
	ActiveWarehouses(ctx context.Context) ([]Warehouse, error)
}

// Service is the delivery optimizer. It is computation-only: warehouse data
// comes from the injected store and nothing is mutated.
type Service struct {
	store WarehouseStore
	cfg   config.DeliveryConfig
	log   *logrus.Logger
}

// NewService creates a new delivery service
func NewService(store WarehouseStore, cfg config.DeliveryConfig, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// NearbyWarehouses returns warehouses able to serve the address, ordered by
// ascending distance. Every returned warehouse satisfies
// distance <= DeliveryRadiusKm. An empty result is not an error.
func (s *Service) NearbyWarehouses(ctx context.Context, address Address) ([]NearbyWarehouse, error) {
	warehouses, err := s.store.ActiveWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load warehouses: %w", err)
	}

	location := GeocodeZip(address.ZipCode)

	nearby := []NearbyWarehouse{}
	for _, w := range warehouses {
		distance := DistanceKm(location, Coordinate{Lat: w.Lat, Lng: w.Lng})
		if distance <= w.DeliveryRadiusKm {
			nearby = append(nearby, NearbyWarehouse{Warehouse: w, DistanceKm: distance})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].Warehouse.ID < nearby[j].Warehouse.ID
	})

	return nearby, nil
}

// OptionsFor computes the warehouse's option set for an address. It is a
// deterministic function of warehouse and address: cost is the configured
// base, ETA grows with distance, so closer warehouses offer tighter ETAs.
func (s *Service) OptionsFor(warehouse Warehouse, address Address) []Option {
	distance := DistanceKm(GeocodeZip(address.ZipCode), Coordinate{Lat: warehouse.Lat, Lng: warehouse.Lng})
	return optionsAtDistance(warehouse, distance)
}

func optionsAtDistance(warehouse Warehouse, distanceKm float64) []Option {
	options := make([]Option, 0, len(warehouse.Options))
	for _, tmpl := range warehouse.Options {
		eta := tmpl.BaseEtaMinutes + int(math.Ceil(distanceKm*tmpl.PerKmMinutes))
		options = append(options, Option{
			ID:          fmt.Sprintf("wh%d-%s", warehouse.ID, tmpl.Type),
			WarehouseID: warehouse.ID,
			Type:        tmpl.Type,
			Cost:        tmpl.BaseCost,
			EtaMinutes:  eta,
			DistanceKm:  distanceKm,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].Cost != options[j].Cost {
			return options[i].Cost < options[j].Cost
		}
		return options[i].EtaMinutes < options[j].EtaMinutes
	})

	return options
}

// ProcessDeliveryFlow resolves the warehouses that can serve the address,
// computes the primary warehouse's options and recommends one. No qualifying
// warehouse is a ServiceAreaError, distinct from a generic failure.
func (s *Service) ProcessDeliveryFlow(ctx context.Context, products []catalog.Product, address Address, prefs *Preferences) (*FlowResult, error) {
	if len(products) == 0 {
		return nil, errs.NewValidation("selectedProducts", "must not be empty")
	}
	if address.Street == "" {
		return nil, errs.NewValidation("deliveryAddress.street", "is required")
	}
	if address.City == "" {
		return nil, errs.NewValidation("deliveryAddress.city", "is required")
	}
	if address.ZipCode == "" {
		return nil, errs.NewValidation("deliveryAddress.zipCode", "is required")
	}

	nearby, err := s.NearbyWarehouses(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		s.log.WithField("zip_code", address.ZipCode).Info("Address outside every service area")
		return nil, errs.NewServiceArea(address.ZipCode)
	}

	// Nearest qualifying warehouse is the primary.
	primary := nearby[0]
	options := optionsAtDistance(primary.Warehouse, primary.DistanceKm)
	recommended := s.recommend(options, prefs)

	s.log.WithFields(logrus.Fields{
		"warehouse":   primary.Warehouse.ID,
		"distance_km": primary.DistanceKm,
		"options":     len(options),
	}).Debug("Delivery flow completed")

	return &FlowResult{
		WarehousesConsidered: nearby,
		DeliveryOptions:      options,
		RecommendedDelivery:  recommended,
	}, nil
}

// recommend picks the cheapest option whose ETA fits the caller's maximum
// wait; when nothing fits, the fastest option wins regardless of cost.
func (s *Service) recommend(options []Option, prefs *Preferences) *Option {
	if len(options) == 0 {
		return nil
	}

	maxWait := s.cfg.DefaultMaxWaitMinutes
	if prefs != nil && prefs.MaxWaitMinutes > 0 {
		maxWait = prefs.MaxWaitMinutes
	}

	var cheapest *Option
	for i := range options {
		opt := &options[i]
		if opt.EtaMinutes > maxWait {
			continue
		}
		if cheapest == nil || opt.Cost < cheapest.Cost ||
			(opt.Cost == cheapest.Cost && opt.EtaMinutes < cheapest.EtaMinutes) {
			cheapest = opt
		}
	}
	if cheapest != nil {
		picked := *cheapest
		return &picked
	}

	fastest := options[0]
	for _, opt := range options[1:] {
		if opt.EtaMinutes < fastest.EtaMinutes {
			fastest = opt
		}
	}
	return &fastest
}

// ServiceArea summarizes coverage for the delivery options query endpoint.
// Zero qualifying warehouses yields zeroed counts, not an error; the caller
// decides how to present missing coverage.
func (s *Service) ServiceArea(ctx context.Context, zipCode, city, state string) (*ServiceAreaInfo, error) {
	if zipCode == "" {
		return nil, errs.NewValidation("zipCode", "is required")
	}
	if city == "" {
		return nil, errs.NewValidation("city", "is required")
	}
	if state == "" {
		return nil, errs.NewValidation("state", "is required")
	}

	address := Address{City: city, State: state, ZipCode: zipCode}
	nearby, err := s.NearbyWarehouses(ctx, address)
	if err != nil {
		return nil, err
	}

	info := &ServiceAreaInfo{
		AvailableWarehouses: len(nearby),
		DeliveryOptions:     []Option{},
	}
	if len(nearby) > 0 {
		primary := nearby[0]
		info.DeliveryOptions = optionsAtDistance(primary.Warehouse, primary.DistanceKm)
		info.ServiceAreaKm = primary.Warehouse.DeliveryRadiusKm
	}

	return info, nil
}
