// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/domain/delivery"
	"github.com/your-org/shopping-assistant/internal/domain/optimizer"
)

// Migration handles database migrations for the reference data the pipeline
// reads: catalog, warehouses and offers.
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},

		&delivery.Warehouse{},
		&delivery.OptionTemplate{},

		&optimizer.RollbackOffer{},
		&optimizer.SubstitutionOffer{},
		&optimizer.BundleOffer{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_slug, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug)",

		"CREATE INDEX IF NOT EXISTS idx_warehouses_active ON warehouses(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_warehouse_options_warehouse ON warehouse_options(warehouse_id)",

		"CREATE INDEX IF NOT EXISTS idx_rollback_offers_product_active ON rollback_offers(product_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_substitution_offers_product_active ON substitution_offers(product_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_bundle_offers_priority ON bundle_offers(priority)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Additional indexes created successfully")
	return nil
}

// SeedInitialData seeds development reference data
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	if err := m.seedWarehouses(); err != nil {
		return fmt.Errorf("failed to seed warehouses: %w", err)
	}

	if err := m.seedOffers(); err != nil {
		return fmt.Errorf("failed to seed offers: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCategories creates the product categories the classifier recognizes
func (m *Migration) seedCategories() error {
	categories := []catalog.Category{
		{Name: "Dairy", Slug: "dairy", Description: "Milk, cheese, yogurt and eggs", SortOrder: 1, IsActive: true},
		{Name: "Bakery", Slug: "bakery", Description: "Bread, bagels and baked goods", SortOrder: 2, IsActive: true},
		{Name: "Produce", Slug: "produce", Description: "Fresh fruits and vegetables", SortOrder: 3, IsActive: true},
		{Name: "Meat", Slug: "meat", Description: "Fresh and packaged meats", SortOrder: 4, IsActive: true},
		{Name: "Seafood", Slug: "seafood", Description: "Fresh and frozen seafood", SortOrder: 5, IsActive: true},
		{Name: "Pantry", Slug: "pantry", Description: "Shelf-stable staples", SortOrder: 6, IsActive: true},
		{Name: "Frozen", Slug: "frozen", Description: "Frozen meals and ingredients", SortOrder: 7, IsActive: true},
		{Name: "Beverages", Slug: "beverages", Description: "Drinks, juice and coffee", SortOrder: 8, IsActive: true},
		{Name: "Snacks", Slug: "snacks", Description: "Chips, cookies and candy", SortOrder: 9, IsActive: true},
		{Name: "Household", Slug: "household", Description: "Cleaning and paper goods", SortOrder: 10, IsActive: true},
		{Name: "Personal Care", Slug: "personal-care", Description: "Health and beauty", SortOrder: 11, IsActive: true},
	}

	for _, category := range categories {
		var existing catalog.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		}
	}

	return nil
}

// seedProducts loads the bundled sample catalog into the primary source so
// development search works without an external catalog service.
func (m *Migration) seedProducts() error {
	var categories []catalog.Category
	if err := m.db.Find(&categories).Error; err != nil {
		return err
	}
	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		categoryIDs[c.Slug] = c.ID
	}

	for _, product := range catalog.FallbackProducts() {
		var existing catalog.Product
		result := m.db.Where("slug = ?", product.Slug).First(&existing)
		if result.Error != nil {
			product.ID = 0 // Let the database assign IDs
			product.CategoryID = categoryIDs[product.CategorySlug]
			product.IsActive = true
			if err := m.db.Create(&product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// seedWarehouses creates fulfillment nodes with their option sets
func (m *Migration) seedWarehouses() error {
	warehouses := []delivery.Warehouse{
		{
			Name: "Dallas Central Fulfillment", City: "Dallas", State: "TX", ZipCode: "75201",
			Lat: 32.7876, Lng: -96.7994, DeliveryRadiusKm: 25, IsActive: true,
			Options: []delivery.OptionTemplate{
				{Type: delivery.OptionScheduled, BaseCost: 0, BaseEtaMinutes: 240, PerKmMinutes: 3},
				{Type: delivery.OptionStandard, BaseCost: 499, BaseEtaMinutes: 120, PerKmMinutes: 2},
				{Type: delivery.OptionExpress, BaseCost: 999, BaseEtaMinutes: 45, PerKmMinutes: 1.5},
			},
		},
		{
			Name: "Fort Worth Hub", City: "Fort Worth", State: "TX", ZipCode: "76102",
			Lat: 32.7555, Lng: -97.3308, DeliveryRadiusKm: 30, IsActive: true,
			Options: []delivery.OptionTemplate{
				{Type: delivery.OptionScheduled, BaseCost: 0, BaseEtaMinutes: 300, PerKmMinutes: 3},
				{Type: delivery.OptionStandard, BaseCost: 599, BaseEtaMinutes: 150, PerKmMinutes: 2},
				{Type: delivery.OptionExpress, BaseCost: 1099, BaseEtaMinutes: 60, PerKmMinutes: 1.5},
			},
		},
		{
			Name: "Austin Fulfillment Center", City: "Austin", State: "TX", ZipCode: "78701",
			Lat: 30.2711, Lng: -97.7437, DeliveryRadiusKm: 25, IsActive: true,
			Options: []delivery.OptionTemplate{
				{Type: delivery.OptionScheduled, BaseCost: 0, BaseEtaMinutes: 240, PerKmMinutes: 3},
				{Type: delivery.OptionStandard, BaseCost: 499, BaseEtaMinutes: 120, PerKmMinutes: 2},
				{Type: delivery.OptionExpress, BaseCost: 999, BaseEtaMinutes: 45, PerKmMinutes: 1.5},
			},
		},
		{
			Name: "Houston Galleria Hub", City: "Houston", State: "TX", ZipCode: "77056",
			Lat: 29.7483, Lng: -95.4613, DeliveryRadiusKm: 35, IsActive: true,
			Options: []delivery.OptionTemplate{
				{Type: delivery.OptionStandard, BaseCost: 549, BaseEtaMinutes: 135, PerKmMinutes: 2},
				{Type: delivery.OptionExpress, BaseCost: 1049, BaseEtaMinutes: 50, PerKmMinutes: 1.5},
			},
		},
	}

	for _, warehouse := range warehouses {
		var existing delivery.Warehouse
		result := m.db.Where("name = ?", warehouse.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&warehouse).Error; err != nil {
				return err
			}
			log.Printf("✅ Created warehouse: %s", warehouse.Name)
		}
	}

	return nil
}

// seedOffers creates development rollback, substitution and bundle offers
// against the seeded catalog.
func (m *Migration) seedOffers() error {
	productIDs := map[string]uint{}
	var products []catalog.Product
	if err := m.db.Find(&products).Error; err != nil {
		return err
	}
	for _, p := range products {
		productIDs[p.Slug] = p.ID
	}

	if id, ok := productIDs["great-value-pasta-sauce"]; ok {
		m.createRollbackIfMissing(optimizer.RollbackOffer{
			ProductID: id, OriginalPrice: 298, RollbackPrice: 198, IsActive: true,
		})
	}
	if id, ok := productIDs["pepperoni-pizza-frozen"]; ok {
		m.createRollbackIfMissing(optimizer.RollbackOffer{
			ProductID: id, OriginalPrice: 697, RollbackPrice: 598, IsActive: true,
		})
	}

	if id, ok := productIDs["spaghetti-16oz"]; ok {
		m.createSubstitutionIfMissing(optimizer.SubstitutionOffer{
			ProductID: id, SubstituteName: "Great Value Spaghetti 16oz",
			Price: 92, BrandPrice: 124, Category: "pantry", Tier: "value", IsActive: true,
		})
	}
	if id, ok := productIDs["greek-yogurt-4-pack"]; ok {
		m.createSubstitutionIfMissing(optimizer.SubstitutionOffer{
			ProductID: id, SubstituteName: "Great Value Greek Yogurt 4-Pack",
			Price: 298, BrandPrice: 399, Category: "dairy", Tier: "value", IsActive: true,
		})
	}

	bundles := []optimizer.BundleOffer{
		{Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1, IsActive: true},
		{Name: "Breakfast Bundle", DiscountPercent: 5, MemberCategories: "bakery,beverages", Priority: 2, IsActive: true},
	}
	for _, bundle := range bundles {
		var existing optimizer.BundleOffer
		result := m.db.Where("name = ?", bundle.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&bundle).Error; err != nil {
				return err
			}
			log.Printf("✅ Created bundle offer: %s", bundle.Name)
		}
	}

	return nil
}

func (m *Migration) createRollbackIfMissing(offer optimizer.RollbackOffer) {
	var existing optimizer.RollbackOffer
	if err := m.db.Where("product_id = ?", offer.ProductID).First(&existing).Error; err != nil {
		m.db.Create(&offer)
	}
}

func (m *Migration) createSubstitutionIfMissing(offer optimizer.SubstitutionOffer) {
	var existing optimizer.SubstitutionOffer
	if err := m.db.Where("product_id = ?", offer.ProductID).First(&existing).Error; err != nil {
		m.db.Create(&offer)
	}
}

// GetTableInfo logs row counts for the seeded tables
func (m *Migration) GetTableInfo() error {
	tables := []string{"categories", "products", "warehouses", "warehouse_options",
		"rollback_offers", "substitution_offers", "bundle_offers"}

	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			return err
		}
		log.Printf("📊 Table %s: %d rows", table, count)
	}

	return nil
}
