package pricing

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

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(setupSQLite(t, "handlers"), zap.NewNop())
	feature.service.random = func() float64 { return 0.5 }
	require.NoError(t, feature.Load(app))
	return app
}

func call(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
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

func TestHandleTrack(t *testing.T) {
	app := setupTestApp(t)

	status, body := call(t, app, "POST", "/track", `{"product_id":"B0C1","platform":"amazon","options":{"target_price":25.5,"notify_phone":"+15550100"}}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "B0C1", body["product_id"])
	assert.Equal(t, 25.5, body["target_price"])
	assert.Equal(t, "+15550100", body["notify_phone"])
	assert.Nil(t, body["notify_email"])
	assert.Equal(t, "active", body["status"])

	id := body["tracking_id"].(string)
	status, body = call(t, app, "GET", "/track/"+id, "")
	assert.Equal(t, 200, status)
	assert.Equal(t, id, body["tracking_id"])

	status, _ = call(t, app, "GET", "/track/track-unknown", "")
	assert.Equal(t, 404, status)

	status, body = call(t, app, "POST", "/track", `{"platform":"amazon"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "product id and platform are required", body["error"])
}

func TestHandleHistory(t *testing.T) {
	app := setupTestApp(t)

	status, body := call(t, app, "GET", "/history?product_id=42&platform=walmart&days=10", "")
	assert.Equal(t, 200, status)
	assert.Len(t, body["price_history"].([]any), 10)
	assert.Equal(t, 66.24, body["current_price"])

	status, body = call(t, app, "GET", "/history?product_id=42&platform=walmart", "")
	assert.Equal(t, 200, status)
	assert.Len(t, body["price_history"].([]any), DefaultHistoryDays)

	status, _ = call(t, app, "GET", "/history?product_id=42", "")
	assert.Equal(t, 400, status)

	status, _ = call(t, app, "GET", "/history?product_id=42&platform=walmart&days=0", "")
	assert.Equal(t, 400, status)
}

func TestHandleBuyingOptions(t *testing.T) {
	app := setupTestApp(t)

	status, body := call(t, app, "GET", "/buying-options?product_name=Laptop", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "refurbished", body["best_value"])
	options := body["options"].(map[string]any)
	assert.Equal(t, 100.0, options["new"].(map[string]any)["price"])

	status, body = call(t, app, "GET", "/buying-options", "")
	assert.Equal(t, 400, status)
	assert.Equal(t, "product name is required", body["error"])
}
