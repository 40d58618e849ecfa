package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatic_Generate(t *testing.T) {
	products, err := Static{}.Generate(context.Background(), "Amazon", source.Query{Text: "running shoes", Limit: 3})
	require.NoError(t, err)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, "mock-amazon-0", first.ID)
	assert.Equal(t, "Running Shoes A", first.Name)
	assert.Equal(t, 19.99, first.Price)
	assert.Equal(t, "USD", first.Currency)
	assert.Equal(t, "https://example.com/amazon/running-shoes-0", first.URL)
	assert.Equal(t, "Amazon", first.Platform)
	assert.Equal(t, 4.0, first.Rating)
	assert.Equal(t, 0.9, first.Relevance)
	assert.Equal(t, "General", first.Category)
	assert.Equal(t, "Brand A", first.Brand)

	assert.Equal(t, "Running Shoes C", products[2].Name)
	assert.Equal(t, 39.99, products[2].Price)
	assert.Equal(t, 0.7, products[2].Relevance)
	assert.Equal(t, 20, products[2].ReviewsCount)
}

func TestStatic_PriceRangeClamp(t *testing.T) {
	q := source.Query{Text: "mug", Limit: 3, PriceRange: &source.PriceRange{Min: 25, Max: 30}}
	products, err := Static{}.Generate(context.Background(), "Walmart", q)
	require.NoError(t, err)

	// 19.99 < min -> min; 29.99 in range; 39.99 > max -> max - 10
	assert.Equal(t, 25.0, products[0].Price)
	assert.Equal(t, 29.99, products[1].Price)
	assert.Equal(t, 20.0, products[2].Price)
}

func TestNewPlatform(t *testing.T) {
	p, err := NewPlatform("Amazon_API", Static{})
	require.NoError(t, err)
	assert.Equal(t, Amazon, p.Platform())

	p, err = NewPlatform("amazon_product_api", Static{})
	require.NoError(t, err)
	assert.Equal(t, Amazon, p.Platform())

	_, err = NewPlatform("aliexpress", Static{})
	assert.ErrorIs(t, err, ErrUnknownPlatform)

	assert.Equal(t, "eBay", DisplayName("EBAY"))
	assert.Equal(t, "", DisplayName("nope"))
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string, source.Query) ([]source.Product, error) {
	return nil, errors.New("platform down")
}

func TestPlatform_Search(t *testing.T) {
	p, _ := NewPlatform(EBay, Static{})

	products, err := p.Search(context.Background(), source.Query{Text: "lamp", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "eBay", products[0].Platform)

	products, err = p.Search(context.Background(), source.Query{Text: "lamp", Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, products)

	broken, _ := NewPlatform(Target, failingGenerator{})
	_, err = broken.Search(context.Background(), source.Query{Text: "lamp", Limit: 2})
	assert.Error(t, err)
}

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"id": "chatcmpl-test", "object": "chat.completion", "created": 0, "model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0, "finish_reason": "stop",
				"message": map[string]any{"role": "assistant", "content": content},
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, string(body))
	}))
}

func TestLLM_Generate(t *testing.T) {
	srv := completionServer(t, `[{"name":"Trail Runner X","price":89.5,"relevance":0.95,"rating":4.6},{"name":"Road Racer","price":120,"relevance":0.8,"currency":"EUR","platform":"Amazon"}]`)
	defer srv.Close()

	gen := NewLLM(llm.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/", TextModel: "gpt-4o-mini"}, zap.NewNop())
	products, err := gen.Generate(context.Background(), "Walmart", source.Query{Text: "running shoes", Limit: 2})
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Trail Runner X", products[0].Name)
	assert.Equal(t, "Walmart", products[0].Platform)
	assert.Equal(t, "USD", products[0].Currency)
	assert.Equal(t, "walmart-0", products[0].ID)
	assert.Equal(t, "EUR", products[1].Currency)
	assert.Equal(t, "Amazon", products[1].Platform)
}

func TestLLM_Generate_FallsBackOnGarbage(t *testing.T) {
	srv := completionServer(t, "I am unable to browse shopping sites.")
	defer srv.Close()

	gen := NewLLM(llm.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/", TextModel: "gpt-4o-mini"}, zap.NewNop())
	products, err := gen.Generate(context.Background(), "Target", source.Query{Text: "desk", Limit: 2})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "mock-target-0", products[0].ID)
}

func TestListingPrompt(t *testing.T) {
	prompt := listingPrompt("eBay", source.Query{
		Text:       "camera",
		Category:   "electronics",
		PriceRange: &source.PriceRange{Min: 100, Max: 300},
		Limit:      4,
	})
	assert.Contains(t, prompt, `Generate 4 realistic product search results for "camera" on eBay.`)
	assert.Contains(t, prompt, "Category: electronics")
	assert.Contains(t, prompt, "Price range: $100.00 - $300.00")
	assert.Contains(t, prompt, `"platform": "eBay"`)
}
