// internal/domain/optimizer/entity.go
package optimizer

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// CartItem is a line in the shopping cart as handed in by the caller
type CartItem struct {
	ProductID uint   `json:"productId" binding:"required"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	UnitPrice int64  `json:"unitPrice" binding:"required,min=1"` // Cents
	Category  string `json:"category"`
	Brand     string `json:"brand"`
}

// LineTotal returns the undiscounted total for the line in cents
func (i *CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// RollbackOffer is a temporary markdown on a specific catalog item
type RollbackOffer struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ProductID     uint           `gorm:"not null;index" json:"product_id"`
	OriginalPrice int64          `gorm:"not null" json:"original_price"` // Cents
	RollbackPrice int64          `gorm:"not null" json:"rollback_price"` // Cents, < OriginalPrice
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnitSavings returns the per-unit markdown in cents
func (o *RollbackOffer) UnitSavings() int64 {
	return o.OriginalPrice - o.RollbackPrice
}

// SubstitutionOffer is a cheaper brand-equivalent swap for a catalog item
type SubstitutionOffer struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ProductID      uint           `gorm:"not null;index" json:"product_id"`
	SubstituteName string         `gorm:"not null;size:255" json:"substitute_name"`
	Price          int64          `gorm:"not null" json:"price"`       // Cents
	BrandPrice     int64          `gorm:"not null" json:"brand_price"` // Cents, > Price
	Category       string         `gorm:"size:255" json:"category"`
	Tier           string         `gorm:"size:50" json:"tier"` // e.g. "value", "premium"
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnitSavings returns the per-unit saving of taking the substitute
func (o *SubstitutionOffer) UnitSavings() int64 {
	return o.BrandPrice - o.Price
}

// BundleOffer is a discount applied once when items from all member
// categories co-occur in the cart.
type BundleOffer struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"not null;size:255" json:"name"`
	DiscountPercent  float64        `gorm:"not null" json:"discount_percent"` // (0, 100]
	MemberCategories string         `gorm:"not null;size:500" json:"member_categories"` // Comma-separated, >= 2
	Priority         int            `gorm:"default:0;index" json:"priority"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// Categories returns the member category slugs
func (o *BundleOffer) Categories() []string {
	parts := strings.Split(o.MemberCategories, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

// TableName overrides
func (RollbackOffer) TableName() string     { return "rollback_offers" }
func (SubstitutionOffer) TableName() string { return "substitution_offers" }
func (BundleOffer) TableName() string       { return "bundle_offers" }

// OfferSet is the read-only offer snapshot used for one optimization call
type OfferSet struct {
	Rollbacks     []RollbackOffer
	Substitutions []SubstitutionOffer
	Bundles       []BundleOffer
}

// Preferences are the recognized cart optimization preference keys
type Preferences struct {
	ExcludedCategories []string `json:"excludedCategories"`
	BrandTier          string   `json:"brandTier"`
}

// AppliedRollback records a rollback applied to a cart line
type AppliedRollback struct {
	ProductID     uint   `json:"productId"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	OriginalPrice int64  `json:"originalPrice"`
	RollbackPrice int64  `json:"rollbackPrice"`
	Savings       int64  `json:"savings"` // Cents, unit saving x quantity
}

// AppliedSubstitution records a brand-equivalent swap applied to a cart line
type AppliedSubstitution struct {
	ProductID      uint   `json:"productId"`
	Name           string `json:"name"`
	SubstituteName string `json:"brandEquivalentName"`
	Quantity       int    `json:"quantity"`
	Price          int64  `json:"price"`
	BrandPrice     int64  `json:"brandPrice"`
	Category       string `json:"category"`
	Savings        int64  `json:"savings"` // Cents
}

// AppliedBundle records a bundle discount applied to a category group
type AppliedBundle struct {
	BundleID        uint     `json:"bundleId"`
	Name            string   `json:"name"`
	Categories      []string `json:"categories"`
	DiscountPercent float64  `json:"discountPercent"`
	Subtotal        int64    `json:"subtotal"` // Cents, member lines after item-level offers
	Savings         int64    `json:"savings"`  // Cents
}

// Result is the output of one cart optimization. TotalSavings is the literal
// sum of the three slices' savings; no item contributes to both a rollback
// and a substitution.
type Result struct {
	Rollbacks     []AppliedRollback     `json:"rollbacks"`
	Substitutions []AppliedSubstitution `json:"substitutions"`
	Bundles       []AppliedBundle       `json:"bundles"`
	TotalSavings  int64                 `json:"totalSavings"` // Cents
}
