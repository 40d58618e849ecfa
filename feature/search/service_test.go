package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"
	"shopping-agent/core/source/catalog"
	"shopping-agent/core/source/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearcher struct {
	platform string
	products []source.Product
	err      error
}

func (f *fakeSearcher) Platform() string { return f.platform }

func (f *fakeSearcher) Search(context.Context, source.Query) ([]source.Product, error) {
	return f.products, f.err
}

func newRegistry(t *testing.T, platforms ...string) *registry.Registry {
	t.Helper()
	reg, err := registry.New(context.Background(), source.Config{
		ConfidenceThreshold: 0.7,
		MaxResults:          5,
		Timeout:             time.Second,
		Platforms:           platforms,
	}, llm.OpenAIConfig{}, llm.GeminiConfig{}, zap.NewNop())
	require.NoError(t, err)
	return reg
}

type listing struct{ platform, name string }

func listings(products []source.Product) []listing {
	out := make([]listing, 0, len(products))
	for _, p := range products {
		out = append(out, listing{p.Platform, p.Name})
	}
	return out
}

func TestSearch_RanksAcrossPlatforms(t *testing.T) {
	svc := NewService(newRegistry(t, "amazon", "walmart"), zap.NewNop())

	res, err := svc.Search(context.Background(), source.Query{Text: "desk lamp", Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, []listing{
		{"Amazon", "Desk Lamp A"},
		{"Walmart", "Desk Lamp A"},
		{"Amazon", "Desk Lamp B"},
	}, listings(res.Results))
	assert.False(t, res.Fallback)
	assert.Empty(t, res.Message)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, 3, res.Sources[1].Count)
}

func TestSearch_MissingQuery(t *testing.T) {
	svc := NewService(newRegistry(t, "amazon"), zap.NewNop())
	_, err := svc.Search(context.Background(), source.Query{Text: "   ", Limit: 3})
	assert.ErrorIs(t, err, ErrMissingQuery)
}

func TestSearch_FailedPlatformDegrades(t *testing.T) {
	reg := newRegistry(t, "amazon", "walmart")
	reg.Register(&fakeSearcher{platform: "amazon", err: errors.New("throttled")})
	svc := NewService(reg, zap.NewNop())

	res, err := svc.Search(context.Background(), source.Query{Text: "mug", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []listing{{"Walmart", "Mug A"}, {"Walmart", "Mug B"}}, listings(res.Results))
	assert.Equal(t, "error", res.Sources[0].Status)
}

func TestSearch_Fallback(t *testing.T) {
	reg := newRegistry(t, "amazon")
	reg.Register(&fakeSearcher{platform: "amazon", products: []source.Product{}})

	t.Run("Disabled", func(t *testing.T) {
		res, err := NewService(reg, zap.NewNop()).Search(context.Background(), source.Query{Text: "mug", Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, res.Results)
		assert.Equal(t, NoResultsMessage, res.Message)
		assert.False(t, res.Fallback)
	})

	t.Run("Enabled", func(t *testing.T) {
		various, err := catalog.NewPlatform(catalog.Various, catalog.Static{})
		require.NoError(t, err)
		reg.SetFallback(various)

		res, err := NewService(reg, zap.NewNop()).Search(context.Background(), source.Query{Text: "mug", Limit: 2})
		require.NoError(t, err)
		assert.True(t, res.Fallback)
		assert.Equal(t, []listing{{"Various", "Mug A"}, {"Various", "Mug B"}}, listings(res.Results))
		require.Len(t, res.Sources, 2)
		assert.Equal(t, "various", res.Sources[1].Source)
	})
}

func TestSimilar(t *testing.T) {
	svc := NewService(newRegistry(t, "amazon"), zap.NewNop())

	products, err := svc.Similar(context.Background(), "B0001:noise cancelling headphones", "amazon", 2)
	require.NoError(t, err)
	assert.Equal(t, []listing{
		{"Amazon", "Noise Cancelling Headphones A"},
		{"Amazon", "Noise Cancelling Headphones B"},
	}, listings(products))

	products, err = svc.Similar(context.Background(), "42", "Target", 1)
	require.NoError(t, err)
	assert.Equal(t, []listing{{"Target", "Product 42 A"}}, listings(products))

	_, err = svc.Similar(context.Background(), "", "amazon", 2)
	assert.ErrorIs(t, err, ErrMissingProduct)

	_, err = svc.Similar(context.Background(), "42", "craigslist", 2)
	assert.ErrorIs(t, err, catalog.ErrUnknownPlatform)
}

func TestSimilarName(t *testing.T) {
	assert.Equal(t, "Product 123", SimilarName("123"))
	assert.Equal(t, "red chair", SimilarName("x:red chair"))
	assert.Equal(t, "a:b", SimilarName("id:a:b"))
}

func TestBestDeal(t *testing.T) {
	svc := NewService(newRegistry(t, "amazon", "walmart"), zap.NewNop())

	deal, err := svc.BestDeal(context.Background(), "kettle", 2)
	require.NoError(t, err)

	assert.Equal(t, "Amazon", deal.Platform)
	assert.Equal(t, 19.99, deal.Price)
	assert.InDelta(t, 24.99, deal.Comparison.AveragePrice, 1e-9)
	assert.InDelta(t, 5.0, deal.Comparison.Savings, 1e-9)
	assert.InDelta(t, 5.0/24.99*100, deal.Comparison.SavingsPercentage, 1e-9)
	assert.Equal(t, 4, deal.Comparison.TotalResults)
	assert.Equal(t, []string{"Amazon", "Walmart"}, deal.Comparison.PlatformsSearched)
}

func TestBestDeal_AllPlatformsWhenNoneConfigured(t *testing.T) {
	svc := NewService(newRegistry(t), zap.NewNop())

	deal, err := svc.BestDeal(context.Background(), "kettle", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amazon", "Walmart", "eBay", "Target", "BestBuy"}, deal.Comparison.PlatformsSearched)
	assert.Equal(t, 15, deal.Comparison.TotalResults)
}

func TestBestDeal_PicksCheapest(t *testing.T) {
	reg := newRegistry(t, "amazon", "ebay")
	reg.Register(&fakeSearcher{platform: "amazon", products: []source.Product{
		{Name: "Kettle", Price: 40, Relevance: 0.9, Platform: "Amazon"},
	}})
	reg.Register(&fakeSearcher{platform: "ebay", products: []source.Product{
		{Name: "Kettle", Price: 20, Relevance: 0.5, Platform: "eBay"},
		{Name: "Kettle Pro", Price: 60, Relevance: 0.7, Platform: "eBay"},
	}})

	deal, err := NewService(reg, zap.NewNop()).BestDeal(context.Background(), "kettle", 3)
	require.NoError(t, err)
	assert.Equal(t, "eBay", deal.Platform)
	assert.Equal(t, 20.0, deal.Price)
	assert.InDelta(t, 40.0, deal.Comparison.AveragePrice, 1e-9)
	assert.InDelta(t, 50.0, deal.Comparison.SavingsPercentage, 1e-9)
}

func TestBestDeal_Errors(t *testing.T) {
	reg := newRegistry(t, "amazon")
	reg.Register(&fakeSearcher{platform: "amazon", err: errors.New("down")})
	svc := NewService(reg, zap.NewNop())

	_, err := svc.BestDeal(context.Background(), "kettle", 3)
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = svc.BestDeal(context.Background(), " ", 3)
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestParsePriceRange(t *testing.T) {
	pr, err := ParsePriceRange([]any{10.0, "20"})
	require.NoError(t, err)
	assert.Equal(t, &source.PriceRange{Min: 10, Max: 20}, pr)

	pr, err = ParsePriceRange(map[string]any{"min": 5.0, "max": 15.0})
	require.NoError(t, err)
	assert.Equal(t, &source.PriceRange{Min: 5, Max: 15}, pr)

	pr, err = ParsePriceRange(nil)
	require.NoError(t, err)
	assert.Nil(t, pr)

	_, err = ParsePriceRange([]any{1.0})
	assert.Error(t, err)
	_, err = ParsePriceRange([]any{30.0, 20.0})
	assert.Error(t, err)
}
