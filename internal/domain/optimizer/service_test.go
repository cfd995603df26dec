// internal/domain/optimizer/service_test.go
package optimizer

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// fakeOfferStore serves a fixed offer snapshot
type fakeOfferStore struct {
	offers *OfferSet
	err    error
}

func (f *fakeOfferStore) ActiveOffers(ctx context.Context) (*OfferSet, error) {
	return f.offers, f.err
}

func newTestService(offers *OfferSet) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(&fakeOfferStore{offers: offers}, log)
}

func emptyOffers() *OfferSet {
	return &OfferSet{}
}

func TestOptimizeCartRejectsEmptyCart(t *testing.T) {
	svc := newTestService(emptyOffers())

	_, err := svc.OptimizeCart(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestOptimizeCartRejectsInvalidLines(t *testing.T) {
	svc := newTestService(emptyOffers())
	ctx := context.Background()

	_, err := svc.OptimizeCart(ctx, []CartItem{{ProductID: 1, Quantity: 0, UnitPrice: 100}}, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = svc.OptimizeCart(ctx, []CartItem{{ProductID: 1, Quantity: 1, UnitPrice: 0}}, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestOptimizeCartAppliesRollback(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{
			{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Great Value Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	require.Len(t, result.Rollbacks, 1)
	assert.Empty(t, result.Substitutions)
	assert.Empty(t, result.Bundles)

	applied := result.Rollbacks[0]
	assert.Equal(t, int64(298), applied.OriginalPrice)
	assert.Equal(t, int64(198), applied.RollbackPrice)
	assert.Equal(t, int64(100), applied.Savings)
	assert.Equal(t, int64(100), result.TotalSavings)
}

func TestOptimizeCartRollbackScalesWithQuantity(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
	}
	svc := newTestService(offers)

	items := []CartItem{{ProductID: 40, Name: "Pasta Sauce", Quantity: 3, UnitPrice: 298, Category: "pantry"}}
	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	require.Len(t, result.Rollbacks, 1)
	assert.Equal(t, int64(300), result.Rollbacks[0].Savings)
	assert.Equal(t, int64(300), result.TotalSavings)
}

func TestOptimizeCartRollbackWinsOverSubstitution(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
		Substitutions: []SubstitutionOffer{
			{ID: 1, ProductID: 40, SubstituteName: "Store Brand Sauce", Price: 150, BrandPrice: 298, Category: "pantry", Tier: "value"},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"}}
	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Len(t, result.Rollbacks, 1)
	assert.Empty(t, result.Substitutions, "an item never receives both offer kinds")
	assert.Equal(t, int64(100), result.TotalSavings)
}

func TestOptimizeCartAppliesSubstitution(t *testing.T) {
	offers := &OfferSet{
		Substitutions: []SubstitutionOffer{
			{ID: 1, ProductID: 7, SubstituteName: "Great Value Cereal", Price: 249, BrandPrice: 449, Category: "pantry", Tier: "value"},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{{ProductID: 7, Name: "Brand Cereal", Quantity: 2, UnitPrice: 449, Category: "pantry"}}
	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	require.Len(t, result.Substitutions, 1)

	sub := result.Substitutions[0]
	assert.Equal(t, "Great Value Cereal", sub.SubstituteName)
	assert.Equal(t, int64(400), sub.Savings)
	assert.Equal(t, int64(400), result.TotalSavings)
}

func TestOptimizeCartHonorsBrandTier(t *testing.T) {
	offers := &OfferSet{
		Substitutions: []SubstitutionOffer{
			{ID: 1, ProductID: 7, SubstituteName: "Value Cereal", Price: 249, BrandPrice: 449, Category: "pantry", Tier: "value"},
		},
	}
	svc := newTestService(offers)
	items := []CartItem{{ProductID: 7, Name: "Brand Cereal", Quantity: 1, UnitPrice: 449, Category: "pantry"}}

	result, err := svc.OptimizeCart(context.Background(), items, &Preferences{BrandTier: "premium"})
	require.NoError(t, err)
	assert.Empty(t, result.Substitutions, "tier mismatch skips the substitution")

	result, err = svc.OptimizeCart(context.Background(), items, &Preferences{BrandTier: "value"})
	require.NoError(t, err)
	assert.Len(t, result.Substitutions, 1)
}

func TestOptimizeCartExcludedCategoriesSkipAllOffers(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
		Bundles: []BundleOffer{
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, &Preferences{ExcludedCategories: []string{"Pantry"}})
	require.NoError(t, err)
	assert.Empty(t, result.Rollbacks)
	assert.Empty(t, result.Bundles, "excluded category breaks the bundle group")
	assert.Zero(t, result.TotalSavings)
}

func TestOptimizeCartAppliesBundleOnEffectivePrices(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
		Bundles: []BundleOffer{
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	require.Len(t, result.Rollbacks, 1)
	require.Len(t, result.Bundles, 1)

	bundle := result.Bundles[0]
	// Bundle subtotal uses the post-rollback sauce price: 198 + 349 = 547.
	assert.Equal(t, int64(547), bundle.Subtotal)
	// 10% of 547 rounds to 55.
	assert.Equal(t, int64(55), bundle.Savings)
	assert.Equal(t, int64(155), result.TotalSavings)
}

func TestOptimizeCartBundleRequiresAllCategories(t *testing.T) {
	offers := &OfferSet{
		Bundles: []BundleOffer{
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"}}
	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Bundles)
}

func TestOptimizeCartOverlappingBundlesConsumeCategories(t *testing.T) {
	offers := &OfferSet{
		Bundles: []BundleOffer{
			{ID: 2, Name: "Breakfast Bundle", DiscountPercent: 5, MemberCategories: "dairy,bakery", Priority: 2},
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
		{ProductID: 3, Name: "Bread", Quantity: 1, UnitPrice: 259, Category: "bakery"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1, "dairy is consumed by the higher-priority bundle")
	assert.Equal(t, "Pasta Night", result.Bundles[0].Name)
}

func TestOptimizeCartRejectsMalformedBundles(t *testing.T) {
	offers := &OfferSet{
		Bundles: []BundleOffer{
			{ID: 1, Name: "Single", DiscountPercent: 10, MemberCategories: "pantry"},
			{ID: 2, Name: "Overdrawn", DiscountPercent: 150, MemberCategories: "pantry,dairy"},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Bundles)
}

func TestOptimizeCartTotalSavingsIsLiteralSum(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
		Substitutions: []SubstitutionOffer{
			{ID: 1, ProductID: 7, SubstituteName: "Value Cereal", Price: 249, BrandPrice: 449, Category: "pantry", Tier: "value"},
		},
		Bundles: []BundleOffer{
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 2, UnitPrice: 298, Category: "pantry"},
		{ProductID: 7, Name: "Brand Cereal", Quantity: 1, UnitPrice: 449, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
	}

	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)

	var sum int64
	for _, r := range result.Rollbacks {
		sum += r.Savings
	}
	for _, s := range result.Substitutions {
		sum += s.Savings
	}
	for _, b := range result.Bundles {
		sum += b.Savings
	}
	assert.Equal(t, sum, result.TotalSavings)
}

func TestOptimizeCartIsIdempotent(t *testing.T) {
	offers := &OfferSet{
		Rollbacks: []RollbackOffer{{ID: 1, ProductID: 40, OriginalPrice: 298, RollbackPrice: 198}},
		Bundles: []BundleOffer{
			{ID: 1, Name: "Pasta Night", DiscountPercent: 10, MemberCategories: "pantry,dairy", Priority: 1},
		},
	}
	svc := newTestService(offers)

	items := []CartItem{
		{ProductID: 40, Name: "Pasta Sauce", Quantity: 1, UnitPrice: 298, Category: "pantry"},
		{ProductID: 2, Name: "Whole Milk", Quantity: 1, UnitPrice: 349, Category: "dairy"},
	}

	first, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	second, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOptimizeCartNoMatchingOffers(t *testing.T) {
	svc := newTestService(emptyOffers())

	items := []CartItem{{ProductID: 99, Name: "Obscure Item", Quantity: 1, UnitPrice: 500, Category: "household"}}
	result, err := svc.OptimizeCart(context.Background(), items, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Rollbacks)
	assert.Empty(t, result.Substitutions)
	assert.Empty(t, result.Bundles)
	assert.Zero(t, result.TotalSavings)
}
