// internal/infrastructure/repository/offer_store.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/domain/optimizer"
)

// PostgresOfferStore loads the active offer snapshot for cart optimization
// from the database. The snapshot is read-only for the duration of one
// request.
type PostgresOfferStore struct {
	db *gorm.DB
}

// NewPostgresOfferStore creates a database-backed offer store
func NewPostgresOfferStore(db *gorm.DB) *PostgresOfferStore {
	return &PostgresOfferStore{db: db}
}

// ActiveOffers returns all active rollback, substitution and bundle offers
func (s *PostgresOfferStore) ActiveOffers(ctx context.Context) (*optimizer.OfferSet, error) {
	offers := &optimizer.OfferSet{}

	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&offers.Rollbacks).Error; err != nil {
		return nil, fmt.Errorf("rollback offer query failed: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&offers.Substitutions).Error; err != nil {
		return nil, fmt.Errorf("substitution offer query failed: %w", err)
	}
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("priority ASC").Find(&offers.Bundles).Error; err != nil {
		return nil, fmt.Errorf("bundle offer query failed: %w", err)
	}

	return offers, nil
}
