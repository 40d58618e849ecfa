package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopping-agent/core/reconcile"
	"shopping-agent/core/source"
	"shopping-agent/core/source/catalog"
	"shopping-agent/core/source/registry"

	"go.uber.org/zap"
)

var (
	// ErrMissingQuery is returned when a search has no query text.
	ErrMissingQuery = errors.New("no query provided")
	// ErrMissingProduct is returned when a product lookup lacks its id or platform.
	ErrMissingProduct = errors.New("product id and platform are required")
	// ErrMissingName is returned when a best deal lookup has no product name.
	ErrMissingName = errors.New("product name is required")
	// ErrNoResults is returned when no platform produced a listing.
	ErrNoResults = errors.New("no results found")
)

// NoResultsMessage is reported to clients when nothing was found.
const NoResultsMessage = "No results found"

// DefaultPerPlatform is the best deal listing count per platform.
const DefaultPerPlatform = 3

// Results is the response of a search.
type Results struct {
	Results  []source.Product         `json:"results"`
	Sources  []reconcile.SourceStatus `json:"sources"`
	Fallback bool                     `json:"fallback,omitempty"`
	Message  string                   `json:"message,omitempty"`
}

// Comparison puts a best deal in context of every listing found.
type Comparison struct {
	AveragePrice      float64  `json:"average_price"`
	Savings           float64  `json:"savings"`
	SavingsPercentage float64  `json:"savings_percentage"`
	TotalResults      int      `json:"total_results"`
	PlatformsSearched []string `json:"platforms_searched"`
}

// Deal is the cheapest listing across platforms.
type Deal struct {
	source.Product
	Comparison Comparison               `json:"comparison"`
	Sources    []reconcile.SourceStatus `json:"sources"`
}

// Service searches shopping platforms and reconciles their listings.
type Service struct {
	registry *registry.Registry
	logger   *zap.Logger
}

// NewService creates a new search service.
func NewService(reg *registry.Registry, logger *zap.Logger) *Service {
	return &Service{registry: reg, logger: logger}
}

// DefaultLimit returns the configured result count.
func (s *Service) DefaultLimit() int {
	return s.registry.Settings().MaxResults
}

func (s *Service) gather(ctx context.Context, searchers []source.Searcher, q source.Query) []reconcile.Outcome[source.Product] {
	tasks := make([]reconcile.Task[source.Product], 0, len(searchers))
	for _, searcher := range searchers {
		tasks = append(tasks, reconcile.Task[source.Product]{
			Source: searcher.Platform(),
			Fetch: func(ctx context.Context) ([]source.Product, error) {
				return searcher.Search(ctx, q)
			},
		})
	}
	return reconcile.Gather(ctx, s.registry.Settings().Timeout, tasks)
}

func (s *Service) spec(limit int) reconcile.Spec {
	return reconcile.Spec{
		Score:      reconcile.ScoreRelevance,
		Key:        source.ProductKey,
		MaxResults: limit,
		Logger:     s.logger,
	}
}

// Search queries every configured platform in parallel and ranks the
// listings by relevance. When no platform returns anything and a fallback
// generator is configured, its listings are used instead.
func (s *Service) Search(ctx context.Context, q source.Query) (*Results, error) {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return nil, ErrMissingQuery
	}

	outcomes := s.gather(ctx, s.registry.Searchers(), q)

	found := 0
	for _, o := range outcomes {
		found += len(o.Items)
	}

	fallback := false
	if found == 0 && s.registry.Fallback() != nil {
		s.logger.Info("No platform listings, using fallback generator", zap.String("query", q.Text))
		outcomes = append(outcomes, s.gather(ctx, []source.Searcher{s.registry.Fallback()}, q)...)
		fallback = true
	}

	result := reconcile.Reconcile(s.spec(q.Limit), outcomes)

	res := &Results{
		Results:  result.Items,
		Sources:  result.Sources,
		Fallback: fallback,
	}
	if res.Results == nil {
		res.Results = []source.Product{}
	}
	if len(res.Results) == 0 {
		res.Message = NoResultsMessage
	}
	return res, nil
}

// SimilarName derives a product name from its id. Ids of the form
// "<id>:<name>" carry the name, anything else becomes "Product <id>".
func SimilarName(productID string) string {
	if _, name, ok := strings.Cut(productID, ":"); ok {
		return name
	}
	return "Product " + productID
}

// Similar finds listings similar to a product on its own platform.
func (s *Service) Similar(ctx context.Context, productID, platform string, limit int) ([]source.Product, error) {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(platform) == "" {
		return nil, ErrMissingProduct
	}

	searcher, err := s.registry.Searcher(platform)
	if err != nil {
		return nil, err
	}

	q := source.Query{Text: SimilarName(productID), Limit: limit}
	result := reconcile.Reconcile(s.spec(limit), s.gather(ctx, []source.Searcher{searcher}, q))

	s.logger.Info("Found similar products",
		zap.String("product_id", productID),
		zap.String("platform", searcher.Platform()),
		zap.Int("count", len(result.Items)))

	if result.Items == nil {
		return []source.Product{}, nil
	}
	return result.Items, nil
}

// BestDeal searches every deal platform for a product and returns the
// cheapest listing along with a price comparison over all listings.
func (s *Service) BestDeal(ctx context.Context, productName string, perPlatform int) (*Deal, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, ErrMissingName
	}
	if perPlatform <= 0 {
		perPlatform = DefaultPerPlatform
	}

	searchers := s.registry.DealSearchers()
	platforms := make([]string, 0, len(searchers))
	for _, searcher := range searchers {
		platforms = append(platforms, catalog.DisplayName(searcher.Platform()))
	}

	outcomes := s.gather(ctx, searchers, source.Query{Text: productName, Limit: perPlatform})

	total := 0
	for _, o := range outcomes {
		total += len(o.Items)
	}
	// Keep every listing: the comparison averages over all of them
	result := reconcile.Reconcile(s.spec(total), outcomes)
	if len(result.Items) == 0 {
		s.logger.Warn("No deal listings found", zap.String("product", productName))
		return nil, ErrNoResults
	}

	best := result.Items[0]
	sum := 0.0
	for _, p := range result.Items {
		sum += p.Price
		if p.Price < best.Price {
			best = p
		}
	}
	average := sum / float64(len(result.Items))

	comparison := Comparison{
		AveragePrice:      average,
		Savings:           average - best.Price,
		TotalResults:      len(result.Items),
		PlatformsSearched: platforms,
	}
	if average > 0 {
		comparison.SavingsPercentage = (average - best.Price) / average * 100
	}

	s.logger.Info("Found best deal",
		zap.String("product", productName),
		zap.String("platform", best.Platform),
		zap.Float64("price", best.Price))

	return &Deal{Product: best, Comparison: comparison, Sources: result.Sources}, nil
}

// ParsePriceRange reads a price range given as [min, max] or {"min", "max"}.
func ParsePriceRange(raw any) (*source.PriceRange, error) {
	var lo, hi any
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		if len(v) != 2 {
			return nil, fmt.Errorf("price range needs two values, got %d", len(v))
		}
		lo, hi = v[0], v[1]
	case map[string]any:
		lo, hi = v["min"], v["max"]
	default:
		return nil, fmt.Errorf("unsupported price range %v", raw)
	}
	return priceRange(lo, hi)
}
