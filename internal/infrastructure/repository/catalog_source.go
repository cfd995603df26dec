// internal/infrastructure/repository/catalog_source.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/domain/intent"
)

// PostgresCatalogSource serves product search from the catalog database. It
// is one of the external sources the search engine fans out to; a failure
// here degrades the search instead of failing it.
type PostgresCatalogSource struct {
	db *gorm.DB
}

// NewPostgresCatalogSource creates a catalog-backed product source
func NewPostgresCatalogSource(db *gorm.DB) *PostgresCatalogSource {
	return &PostgresCatalogSource{db: db}
}

// Name identifies the source in diagnostics
func (s *PostgresCatalogSource) Name() string {
	return "postgres-catalog"
}

// Search queries active products matching the intent's category or keywords
func (s *PostgresCatalogSource) Search(ctx context.Context, in *intent.Intent) ([]catalog.Product, error) {
	query := s.db.WithContext(ctx).Model(&catalog.Product{}).Where("is_active = ?", true)

	var conditions []string
	var args []interface{}

	if in.Category != "" {
		conditions = append(conditions, "category_slug = ?")
		args = append(args, strings.ToLower(in.Category))
	}
	for _, keyword := range in.Keywords {
		pattern := "%" + strings.ToLower(keyword) + "%"
		conditions = append(conditions, "(LOWER(name) LIKE ? OR LOWER(tags) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if len(conditions) == 0 {
		return []catalog.Product{}, nil
	}
	query = query.Where(strings.Join(conditions, " OR "), args...)

	if in.Constraints.MaxBudget > 0 {
		query = query.Where("price <= ?", in.Constraints.MaxBudget)
	}

	var products []catalog.Product
	if err := query.Limit(100).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("catalog query failed: %w", err)
	}

	return products, nil
}
