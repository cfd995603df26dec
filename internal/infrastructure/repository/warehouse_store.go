// internal/infrastructure/repository/warehouse_store.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/domain/delivery"
)

// PostgresWarehouseStore loads the warehouse snapshot for delivery
// optimization from the database.
type PostgresWarehouseStore struct {
	db *gorm.DB
}

// NewPostgresWarehouseStore creates a database-backed warehouse store
func NewPostgresWarehouseStore(db *gorm.DB) *PostgresWarehouseStore {
	return &PostgresWarehouseStore{db: db}
}

// ActiveWarehouses returns all active warehouses with their option sets
func (s *PostgresWarehouseStore) ActiveWarehouses(ctx context.Context) ([]delivery.Warehouse, error) {
	var warehouses []delivery.Warehouse
	err := s.db.WithContext(ctx).
		Preload("Options").
		Where("is_active = ?", true).
		Find(&warehouses).Error
	if err != nil {
		return nil, fmt.Errorf("warehouse query failed: %w", err)
	}
	return warehouses, nil
}
