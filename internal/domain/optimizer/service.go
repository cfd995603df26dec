// internal/domain/optimizer/service.go
package optimizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// OfferStore provides the read-only offer snapshot for one request
type OfferStore interface {
	ActiveOffers(ctx context.Context) (*OfferSet, error)
}

// Service is the cart optimizer. Optimization is a pure function of the cart
// and the offer snapshot: identical inputs produce identical results and no
// shared offer data is mutated.
type Service struct {
	store OfferStore
	log   *logrus.Logger
}

// NewService creates a new cart optimization service
func NewService(store OfferStore, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// OptimizeCart finds rollbacks, brand-equivalent substitutions and bundle
// discounts for the cart. Per item, a rollback wins over a substitution and
// an item never receives both; the bundle pass is additive on top.
func (s *Service) OptimizeCart(ctx context.Context, items []CartItem, prefs *Preferences) (*Result, error) {
	if len(items) == 0 {
		return nil, errs.NewValidation("cartItems", "must not be empty")
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, errs.NewValidation(fmt.Sprintf("cartItems[%d].quantity", i), "must be positive")
		}
		if item.UnitPrice <= 0 {
			return nil, errs.NewValidation(fmt.Sprintf("cartItems[%d].unitPrice", i), "must be positive")
		}
	}

	offers, err := s.store.ActiveOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	excluded := toSet(prefsExcluded(prefs))

	result := &Result{
		Rollbacks:     []AppliedRollback{},
		Substitutions: []AppliedSubstitution{},
		Bundles:       []AppliedBundle{},
	}

	// Effective per-category subtotals after item-level offers feed the
	// bundle pass.
	categorySubtotals := map[string]int64{}

	for _, item := range items {
		category := strings.ToLower(item.Category)
		effectiveUnit := item.UnitPrice

		if !excluded[category] {
			if rollback := findRollback(offers.Rollbacks, item.ProductID); rollback != nil {
				savings := rollback.UnitSavings() * int64(item.Quantity)
				result.Rollbacks = append(result.Rollbacks, AppliedRollback{
					ProductID:     item.ProductID,
					Name:          item.Name,
					Quantity:      item.Quantity,
					OriginalPrice: rollback.OriginalPrice,
					RollbackPrice: rollback.RollbackPrice,
					Savings:       savings,
				})
				result.TotalSavings += savings
				effectiveUnit = rollback.RollbackPrice
			} else if sub := findSubstitution(offers.Substitutions, item.ProductID, prefs); sub != nil {
				savings := sub.UnitSavings() * int64(item.Quantity)
				result.Substitutions = append(result.Substitutions, AppliedSubstitution{
					ProductID:      item.ProductID,
					Name:           item.Name,
					SubstituteName: sub.SubstituteName,
					Quantity:       item.Quantity,
					Price:          sub.Price,
					BrandPrice:     sub.BrandPrice,
					Category:       sub.Category,
					Savings:        savings,
				})
				result.TotalSavings += savings
				effectiveUnit = sub.Price
			}
		}

		if category != "" && !excluded[category] {
			categorySubtotals[category] += effectiveUnit * int64(item.Quantity)
		}
	}

	s.applyBundles(offers.Bundles, categorySubtotals, result)

	s.log.WithFields(logrus.Fields{
		"items":         len(items),
		"rollbacks":     len(result.Rollbacks),
		"substitutions": len(result.Substitutions),
		"bundles":       len(result.Bundles),
		"total_savings": result.TotalSavings,
	}).Debug("Cart optimization completed")

	return result, nil
}

// applyBundles runs the additive bundle pass: offers in priority order, each
// qualifying bundle applied once per group, and a category never discounted
// by two bundles in the same call.
func (s *Service) applyBundles(bundles []BundleOffer, categorySubtotals map[string]int64, result *Result) {
	ordered := make([]BundleOffer, len(bundles))
	copy(ordered, bundles)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].ID < ordered[j].ID
	})

	consumed := map[string]bool{}

	for _, bundle := range ordered {
		categories := bundle.Categories()
		if len(categories) < 2 || bundle.DiscountPercent <= 0 || bundle.DiscountPercent > 100 {
			continue
		}

		var subtotal int64
		qualifies := true
		for _, category := range categories {
			key := strings.ToLower(category)
			if consumed[key] || categorySubtotals[key] <= 0 {
				qualifies = false
				break
			}
			subtotal += categorySubtotals[key]
		}
		if !qualifies {
			continue
		}

		savings := int64(math.Round(float64(subtotal) * bundle.DiscountPercent / 100))
		if savings <= 0 {
			continue
		}

		for _, category := range categories {
			consumed[strings.ToLower(category)] = true
		}

		result.Bundles = append(result.Bundles, AppliedBundle{
			BundleID:        bundle.ID,
			Name:            bundle.Name,
			Categories:      categories,
			DiscountPercent: bundle.DiscountPercent,
			Subtotal:        subtotal,
			Savings:         savings,
		})
		result.TotalSavings += savings
	}
}

// findRollback returns the first active rollback with positive savings for
// the product.
func findRollback(rollbacks []RollbackOffer, productID uint) *RollbackOffer {
	for i := range rollbacks {
		offer := &rollbacks[i]
		if offer.ProductID == productID && offer.UnitSavings() > 0 {
			return offer
		}
	}
	return nil
}

// findSubstitution returns the first substitution with positive savings for
// the product, honoring the preferred brand tier. Only one substitution is
// considered per item.
func findSubstitution(subs []SubstitutionOffer, productID uint, prefs *Preferences) *SubstitutionOffer {
	tier := ""
	if prefs != nil {
		tier = strings.ToLower(prefs.BrandTier)
	}
	for i := range subs {
		offer := &subs[i]
		if offer.ProductID != productID || offer.UnitSavings() <= 0 {
			continue
		}
		if tier != "" && !strings.EqualFold(offer.Tier, tier) {
			continue
		}
		return offer
	}
	return nil
}

func prefsExcluded(prefs *Preferences) []string {
	if prefs == nil {
		return nil
	}
	return prefs.ExcludedCategories
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}
