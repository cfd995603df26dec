// internal/domain/catalog/entity.go
package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/domain/intent"
)

// Product represents a catalog item. Catalog data is owned by external
// pricing/catalog services and treated as a read-only snapshot per request.
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	SKU           string         `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Slug          string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"`          // Price in cents
	OriginalPrice int64          `json:"original_price,omitempty"`       // Pre-markdown price, 0 when absent
	Brand         string         `gorm:"size:255" json:"brand"`
	CategoryID    uint           `gorm:"index" json:"category_id"`
	CategorySlug  string         `gorm:"index;size:255" json:"category"`
	Quantity      int            `gorm:"default:0" json:"stock"`
	Images        string         `gorm:"size:1000" json:"images"` // Comma-separated URLs
	Tags          string         `gorm:"size:500" json:"tags"`    // Comma-separated tags
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Category represents a product category
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// IsInStock reports whether the product can currently be sold
func (p *Product) IsInStock() bool {
	return p.Quantity > 0
}

// HasMarkdown reports whether the product carries a pre-markdown price
func (p *Product) HasMarkdown() bool {
	return p.OriginalPrice > 0 && p.Price < p.OriginalPrice
}

// Source is an external product provider queried by the search engine.
// Implementations must honor context cancellation; the engine treats any
// returned error as a degraded source, never as a request failure.
type Source interface {
	Name() string
	Search(ctx context.Context, in *intent.Intent) ([]Product, error)
}
