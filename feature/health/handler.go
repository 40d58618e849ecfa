package health

import (
	"github.com/gofiber/fiber/v2"
)

// Status is the health response.
type Status struct {
	Status string   `json:"status"`
	APIs   []string `json:"apis"`
}

// Handler reports liveness and the configured sources.
type Handler struct {
	available func() []string
}

// NewHandler creates a new HTTP handler. available lists the configured source names.
func NewHandler(available func() []string) *Handler {
	return &Handler{available: available}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports the service status.
// @Summary Health Check
// @Description Reports liveness and the names of every configured source.
// @Tags health
// @Produce json
// @Success 200 {object} Status
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	apis := h.available()
	if apis == nil {
		apis = []string{}
	}
	return c.JSON(Status{Status: "ok", APIs: apis})
}
