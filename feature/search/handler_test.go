package search

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, platforms ...string) *fiber.App {
	t.Helper()
	app := fiber.New()
	require.NoError(t, NewFeature(newRegistry(t, platforms...), zap.NewNop()).Load(app))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleSearchQuery(t *testing.T) {
	app := setupTestApp(t, "amazon")

	status, body := doJSON(t, app, "GET", "/search?query=desk+lamp&max_results=2&min_price=25&max_price=30", "")
	assert.Equal(t, 200, status)

	results := body["results"].([]any)
	require.Len(t, results, 2)
	first := results[0].(map[string]any)
	assert.Equal(t, "Desk Lamp A", first["name"])
	assert.Equal(t, 25.0, first["price"])

	status, body = doJSON(t, app, "GET", "/search", "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "no query provided", body["error"])

	status, _ = doJSON(t, app, "GET", "/search?query=lamp&min_price=50&max_price=10", "")
	assert.Equal(t, 400, status)
}

func TestHandleSearchBody(t *testing.T) {
	app := setupTestApp(t, "amazon", "ebay")

	status, body := doJSON(t, app, "POST", "/search", `{"query":"mug","options":{"max_results":4,"category":"kitchen","price_range":[10,50]}}`)
	assert.Equal(t, 200, status)
	results := body["results"].([]any)
	require.Len(t, results, 4)
	assert.Equal(t, "kitchen", results[0].(map[string]any)["category"])
	assert.Len(t, body["sources"].([]any), 2)

	status, _ = doJSON(t, app, "POST", "/search", `{"options":{}}`)
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "POST", "/search", `not json`)
	assert.Equal(t, 400, status)
}

func TestHandleSimilar(t *testing.T) {
	app := setupTestApp(t, "amazon")

	status, body := doJSON(t, app, "GET", "/similar?product_id=9:garden+hose&platform=amazon&max_results=2", "")
	assert.Equal(t, 200, status)
	similar := body["similar_products"].([]any)
	require.Len(t, similar, 2)
	assert.Equal(t, "Garden Hose A", similar[0].(map[string]any)["name"])

	status, _ = doJSON(t, app, "GET", "/similar?product_id=9", "")
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "GET", "/similar?product_id=9&platform=etsy", "")
	assert.Equal(t, 400, status)
}

func TestHandleBestDeal(t *testing.T) {
	app := setupTestApp(t, "walmart", "target")

	status, body := doJSON(t, app, "GET", "/best-deal?product_name=toaster", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Walmart", body["platform"])
	assert.Equal(t, 19.99, body["price"])
	comparison := body["comparison"].(map[string]any)
	assert.Equal(t, 6.0, comparison["total_results"])
	assert.Equal(t, []any{"Walmart", "Target"}, comparison["platforms_searched"])

	status, body = doJSON(t, app, "GET", "/best-deal", "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "product name is required", body["error"])
}

func TestHandleBestDeal_NotFound(t *testing.T) {
	reg := newRegistry(t, "amazon")
	reg.Register(&fakeSearcher{platform: "amazon"})
	app := fiber.New()
	require.NoError(t, NewFeature(reg, zap.NewNop()).Load(app))

	status, body := doJSON(t, app, "GET", "/best-deal?product_name=toaster", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "No results found", body["error"])
}
