// internal/domain/catalog/fallback.go
package catalog

// FallbackProducts returns the bundled sample catalog served when every
// external product source is unavailable. It spans all recognized categories
// so a degraded search can still answer any intent.
func FallbackProducts() []Product {
	return []Product{
		{ID: 9001, SKU: "FB-DAIRY-001", Name: "Whole Milk 1 Gallon", Slug: "whole-milk-1-gallon", Description: "Vitamin D whole milk", Price: 349, Brand: "Great Value", CategorySlug: "dairy", Quantity: 120, Tags: "milk,dairy,gallon"},
		{ID: 9002, SKU: "FB-DAIRY-002", Name: "Sharp Cheddar Cheese Block", Slug: "sharp-cheddar-cheese-block", Description: "8oz sharp cheddar block", Price: 248, Brand: "Great Value", CategorySlug: "dairy", Quantity: 80, Tags: "cheese,cheddar,dairy"},
		{ID: 9003, SKU: "FB-DAIRY-003", Name: "Greek Yogurt 4-Pack", Slug: "greek-yogurt-4-pack", Description: "Plain nonfat Greek yogurt", Price: 399, OriginalPrice: 449, Brand: "Chobani", CategorySlug: "dairy", Quantity: 60, Tags: "yogurt,greek,dairy"},
		{ID: 9010, SKU: "FB-BAKE-001", Name: "White Sandwich Bread", Slug: "white-sandwich-bread", Description: "20oz sliced loaf", Price: 188, Brand: "Wonder", CategorySlug: "bakery", Quantity: 90, Tags: "bread,loaf,bakery"},
		{ID: 9011, SKU: "FB-BAKE-002", Name: "Plain Bagels 6-Count", Slug: "plain-bagels-6-count", Description: "Pre-sliced plain bagels", Price: 229, Brand: "Great Value", CategorySlug: "bakery", Quantity: 45, Tags: "bagel,bakery"},
		{ID: 9020, SKU: "FB-PROD-001", Name: "Bananas per Pound", Slug: "bananas-per-pound", Description: "Fresh bananas", Price: 58, Brand: "Fresh", CategorySlug: "produce", Quantity: 500, Tags: "banana,fruit,produce"},
		{ID: 9021, SKU: "FB-PROD-002", Name: "Gala Apples 3lb Bag", Slug: "gala-apples-3lb-bag", Description: "Crisp gala apples", Price: 347, Brand: "Fresh", CategorySlug: "produce", Quantity: 150, Tags: "apple,fruit,produce"},
		{ID: 9030, SKU: "FB-MEAT-001", Name: "Boneless Chicken Breast 1lb", Slug: "boneless-chicken-breast-1lb", Description: "Fresh boneless skinless chicken breast", Price: 449, Brand: "Tyson", CategorySlug: "meat", Quantity: 70, Tags: "chicken,meat,protein"},
		{ID: 9031, SKU: "FB-MEAT-002", Name: "Ground Beef 80/20 1lb", Slug: "ground-beef-80-20-1lb", Description: "Fresh ground beef", Price: 528, Brand: "Great Value", CategorySlug: "meat", Quantity: 55, Tags: "beef,ground,meat"},
		{ID: 9035, SKU: "FB-SEAF-001", Name: "Frozen Raw Shrimp 1lb", Slug: "frozen-raw-shrimp-1lb", Description: "Peeled and deveined raw shrimp", Price: 797, Brand: "Great Value", CategorySlug: "seafood", Quantity: 30, Tags: "shrimp,seafood,frozen"},
		{ID: 9040, SKU: "FB-PANT-001", Name: "Great Value Pasta Sauce", Slug: "great-value-pasta-sauce", Description: "Traditional pasta sauce 24oz", Price: 298, Brand: "Great Value", CategorySlug: "pantry", Quantity: 200, Tags: "pasta,sauce,pantry"},
		{ID: 9041, SKU: "FB-PANT-002", Name: "Spaghetti 16oz", Slug: "spaghetti-16oz", Description: "Enriched spaghetti pasta", Price: 124, Brand: "Barilla", CategorySlug: "pantry", Quantity: 180, Tags: "pasta,spaghetti,pantry"},
		{ID: 9042, SKU: "FB-PANT-003", Name: "Long Grain Rice 5lb", Slug: "long-grain-rice-5lb", Description: "Enriched long grain white rice", Price: 397, Brand: "Great Value", CategorySlug: "pantry", Quantity: 110, Tags: "rice,grain,pantry"},
		{ID: 9050, SKU: "FB-FROZ-001", Name: "Pepperoni Pizza Frozen", Slug: "pepperoni-pizza-frozen", Description: "Rising crust pepperoni pizza", Price: 598, OriginalPrice: 697, Brand: "DiGiorno", CategorySlug: "frozen", Quantity: 40, Tags: "pizza,frozen"},
		{ID: 9060, SKU: "FB-BEV-001", Name: "Orange Juice 52oz", Slug: "orange-juice-52oz", Description: "100% orange juice, no pulp", Price: 379, Brand: "Tropicana", CategorySlug: "beverages", Quantity: 85, Tags: "juice,orange,beverages"},
		{ID: 9061, SKU: "FB-BEV-002", Name: "Ground Coffee 30oz", Slug: "ground-coffee-30oz", Description: "Medium roast ground coffee", Price: 998, Brand: "Folgers", CategorySlug: "beverages", Quantity: 65, Tags: "coffee,beverages"},
		{ID: 9070, SKU: "FB-SNCK-001", Name: "Potato Chips Party Size", Slug: "potato-chips-party-size", Description: "Classic salted potato chips", Price: 448, Brand: "Lay's", CategorySlug: "snacks", Quantity: 95, Tags: "chips,snacks"},
		{ID: 9071, SKU: "FB-SNCK-002", Name: "Chocolate Chip Cookies", Slug: "chocolate-chip-cookies", Description: "Family size chocolate chip cookies", Price: 356, Brand: "Chips Ahoy", CategorySlug: "snacks", Quantity: 75, Tags: "cookies,snacks"},
		{ID: 9080, SKU: "FB-HOUS-001", Name: "Paper Towels 6 Rolls", Slug: "paper-towels-6-rolls", Description: "2-ply absorbent paper towels", Price: 697, Brand: "Bounty", CategorySlug: "household", Quantity: 50, Tags: "paper,towels,household"},
		{ID: 9081, SKU: "FB-HOUS-002", Name: "Laundry Detergent 96oz", Slug: "laundry-detergent-96oz", Description: "Liquid laundry detergent, original scent", Price: 1247, Brand: "Tide", CategorySlug: "household", Quantity: 35, Tags: "detergent,laundry,household"},
		{ID: 9090, SKU: "FB-CARE-001", Name: "Toothpaste Twin Pack", Slug: "toothpaste-twin-pack", Description: "Cavity protection toothpaste", Price: 498, Brand: "Colgate", CategorySlug: "personal-care", Quantity: 88, Tags: "toothpaste,personal-care"},
	}
}
