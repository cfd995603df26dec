// internal/domain/delivery/entity.go
package delivery

import (
	"time"

	"gorm.io/gorm"
)

// Address is the delivery destination. Street, City and ZipCode are required
// for optimization calls.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OptionType enumerates fulfillment choices
type OptionType string

const (
	OptionStandard  OptionType = "standard"
	OptionExpress   OptionType = "express"
	OptionScheduled OptionType = "scheduled"
)

// Warehouse is a fulfillment node. A warehouse is only eligible for an
// address when the distance between them is within DeliveryRadiusKm.
type Warehouse struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"not null;size:255" json:"name"`
	City             string         `gorm:"size:255" json:"city"`
	State            string         `gorm:"size:100" json:"state"`
	ZipCode          string         `gorm:"index;size:20" json:"zip_code"`
	Lat              float64        `json:"lat"`
	Lng              float64        `json:"lng"`
	DeliveryRadiusKm float64        `gorm:"not null" json:"delivery_radius_km"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Options []OptionTemplate `gorm:"foreignKey:WarehouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options,omitempty"`
}

// OptionTemplate is a warehouse's configured fulfillment offering before
// distance adjustment.
type OptionTemplate struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	WarehouseID    uint       `gorm:"not null;index" json:"warehouse_id"`
	Type           OptionType `gorm:"not null;size:20" json:"type"`
	BaseCost       int64      `gorm:"not null" json:"base_cost"` // Cents
	BaseEtaMinutes int        `gorm:"not null" json:"base_eta_minutes"`
	PerKmMinutes   float64    `json:"per_km_minutes"`
}

// TableName overrides
func (Warehouse) TableName() string      { return "warehouses" }
func (OptionTemplate) TableName() string { return "warehouse_options" }

// Option is a concrete fulfillment choice computed for one warehouse and one
// address.
type Option struct {
	ID          string     `json:"id"`
	WarehouseID uint       `json:"warehouse_id"`
	Type        OptionType `json:"type"`
	Cost        int64      `json:"cost"` // Cents
	EtaMinutes  int        `json:"etaMinutes"`
	DistanceKm  float64    `json:"distance_km"`
}

// NearbyWarehouse pairs a qualifying warehouse with its computed distance
type NearbyWarehouse struct {
	Warehouse  Warehouse `json:"warehouse"`
	DistanceKm float64   `json:"distance_km"`
}

// Preferences are the recognized delivery preference keys. Unknown keys in
// the inbound preference bag are ignored upstream.
type Preferences struct {
	MaxWaitMinutes int `json:"maxWaitMinutes"`
}

// FlowResult is the output of the delivery optimization flow
type FlowResult struct {
	WarehousesConsidered []NearbyWarehouse `json:"warehousesConsidered"`
	DeliveryOptions      []Option          `json:"deliveryOptions"`
	RecommendedDelivery  *Option           `json:"recommendedDelivery"`
}

// ServiceAreaInfo summarizes warehouse coverage for an address, used by the
// delivery options query endpoint.
type ServiceAreaInfo struct {
	AvailableWarehouses int      `json:"availableWarehouses"`
	DeliveryOptions     []Option `json:"deliveryOptions"`
	ServiceAreaKm       float64  `json:"serviceArea"`
}
