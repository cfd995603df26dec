// internal/domain/search/service.go
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/your-org/shopping-assistant/internal/config"
	"github.com/your-org/shopping-assistant/internal/domain/catalog"
	"github.com/your-org/shopping-assistant/internal/domain/intent"
	"github.com/your-org/shopping-assistant/internal/pkg/errs"
)

// ResultCache is an optional read-through cache for ranked results. A failed
// cache lookup is treated as a miss, never as a request failure.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]catalog.Product, bool)
	Set(ctx context.Context, key string, products []catalog.Product)
}

// Service is the product search engine. It fans out to external product
// sources, merges and ranks what comes back, and falls back to the bundled
// sample catalog when every source is unavailable.
type Service struct {
	sources []catalog.Source
	cache   ResultCache
	cfg     config.SearchConfig
	log     *logrus.Logger
}

// NewService creates a new search service. cache may be nil.
func NewService(sources []catalog.Source, cache ResultCache, cfg config.SearchConfig, log *logrus.Logger) *Service {
	return &Service{
		sources: sources,
		cache:   cache,
		cfg:     cfg,
		log:     log,
	}
}

// Result is the outcome of one search flow
type Result struct {
	Products   []catalog.Product `json:"products"`
	SearchTime time.Duration     `json:"-"`
	Degraded   bool              `json:"-"`
}

// SearchTimeMillis returns the wall-clock search duration in milliseconds
func (r *Result) SearchTimeMillis() int64 {
	return r.SearchTime.Milliseconds()
}

// ProcessProductFlow runs the full search flow for an intent: concurrent
// source fan-out, merge, dedupe by slug, relevance ranking, truncation.
// Upstream failure never fails the request; the fallback catalog guarantees
// a non-empty response on full degradation.
func (s *Service) ProcessProductFlow(ctx context.Context, in *intent.Intent) (*Result, error) {
	start := time.Now()

	if !in.HasSearchTerms() {
		return nil, errs.NewValidation("intent", "must carry a category or at least one keyword")
	}

	cacheKey := intentCacheKey(in)
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx, cacheKey); ok {
			return &Result{Products: products, SearchTime: time.Since(start)}, nil
		}
	}

	products, failures := s.queryAllSources(ctx, in)

	ranked := rankProducts(dedupeBySlug(products), in)
	if len(ranked) > s.cfg.MaxResults {
		ranked = ranked[:s.cfg.MaxResults]
	}

	degraded := false
	if len(ranked) == 0 && (len(s.sources) == 0 || len(failures) == len(s.sources)) {
		// Designed degradation path: every source failed or timed out, so the
		// user still gets the bundled sample catalog.
		degraded = true
		ranked = s.fallbackResults(in)
		s.log.WithField("failed_sources", failures).
			Warn(fmt.Sprintf("%v", &errs.UpstreamDegradedError{Sources: failures}))
	}

	if s.cache != nil && !degraded && len(ranked) > 0 {
		s.cache.Set(ctx, cacheKey, ranked)
	}

	result := &Result{
		Products:   ranked,
		SearchTime: time.Since(start),
		Degraded:   degraded,
	}

	s.log.WithFields(logrus.Fields{
		"products":    len(result.Products),
		"degraded":    degraded,
		"search_time": result.SearchTime,
	}).Debug("Search flow completed")

	return result, nil
}

// queryAllSources fans out to every configured source with a bounded number
// of concurrent queries and a per-source timeout. It returns everything that
// arrived plus the names of sources that failed.
func (s *Service) queryAllSources(ctx context.Context, in *intent.Intent) ([]catalog.Product, []string) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		products []catalog.Product
		failures []string
	)

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.MaxConcurrentSources)

	for _, source := range s.sources {
		source := source
		g.Go(func() error {
			srcCtx, srcCancel := context.WithTimeout(ctx, s.cfg.SourceTimeout)
			defer srcCancel()

			found, err := source.Search(srcCtx, in)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, source.Name())
				s.log.WithError(err).WithField("source", source.Name()).
					Warn("Product source failed")
				return nil
			}
			products = append(products, found...)
			return nil
		})
	}

	// Source errors are absorbed above, so Wait only reflects completion.
	_ = g.Wait()

	return products, failures
}

// fallbackResults ranks the bundled catalog against the intent. If the
// intent matches nothing in it, the head of the catalog is returned so the
// degraded response is never empty.
func (s *Service) fallbackResults(in *intent.Intent) []catalog.Product {
	ranked := rankProducts(catalog.FallbackProducts(), in)
	if len(ranked) == 0 {
		ranked = catalog.FallbackProducts()
	}
	if len(ranked) > s.cfg.MaxResults {
		ranked = ranked[:s.cfg.MaxResults]
	}
	return ranked
}

// dedupeBySlug keeps the first occurrence of each slug
func dedupeBySlug(products []catalog.Product) []catalog.Product {
	seen := make(map[string]bool, len(products))
	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		result = append(result, p)
	}
	return result
}

// rankProducts filters out irrelevant products and orders the rest by
// relevance. A category match always outranks a keyword-only match.
func rankProducts(products []catalog.Product, in *intent.Intent) []catalog.Product {
	type scored struct {
		product catalog.Product
		score   int
	}

	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		score := relevanceScore(&p, in)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, scored{product: p, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].product.Slug < ranked[j].product.Slug
	})

	result := make([]catalog.Product, len(ranked))
	for i, r := range ranked {
		result[i] = r.product
	}
	return result
}

// relevanceScore weighs a product against the intent. Category match is
// worth more than any realistic number of keyword hits.
func relevanceScore(p *catalog.Product, in *intent.Intent) int {
	score := 0

	if in.Category != "" && strings.EqualFold(p.CategorySlug, in.Category) {
		score += 100
	}

	haystack := strings.ToLower(p.Name + " " + p.Tags + " " + p.Description)
	for _, keyword := range in.Keywords {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			score += 10
		}
	}

	if score == 0 {
		return 0
	}

	if in.Constraints.MaxBudget > 0 && in.Constraints.MatchesBudget(p.Price) {
		score += 5
	}
	if p.IsInStock() {
		score++
	}
	return score
}

// intentCacheKey builds a stable cache key from the search-relevant parts of
// an intent.
func intentCacheKey(in *intent.Intent) string {
	return fmt.Sprintf("search:%s:%s:%d",
		in.Category,
		strings.Join(in.Keywords, ","),
		in.Constraints.MaxBudget,
	)
}
