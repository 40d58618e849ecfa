package pricing

import (
	"encoding/json"
	"errors"

	"shopping-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for price tracking and history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pricing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/track", h.HandleTrack)
	app.Get("/track/:tracking_id", h.HandleGetWatch)
	app.Get("/history", h.HandleHistory)
	app.Get("/buying-options", h.HandleBuyingOptions)
}

type trackRequest struct {
	ProductID string       `json:"product_id"`
	Platform  string       `json:"platform"`
	Options   TrackOptions `json:"options"`
}

func badRequest(err error) bool {
	return errors.Is(err, ErrMissingProduct) ||
		errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrInvalidTarget)
}

// HandleTrack registers a price watch.
// @Summary Track Price
// @Description Registers price tracking for a product. The registration is stored in the database when one is configured.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body trackRequest true "Tracking request"
// @Success 200 {object} Watch
// @Failure 400 {object} map[string]string "Product ID and platform are required"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /track [post]
func (h *Handler) HandleTrack(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req trackRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrMissingProduct.Error()})
	}

	w, err := h.service.Track(c.UserContext(), req.ProductID, req.Platform, req.Options)
	if err != nil {
		if badRequest(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to register price watch", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(w)
}

// HandleGetWatch returns a price watch registration.
// @Summary Get Price Watch
// @Tags pricing
// @Produce json
// @Param tracking_id path string true "Tracking ID"
// @Success 200 {object} Watch
// @Failure 404 {object} map[string]string "Not Found"
// @Router /track/{tracking_id} [get]
func (h *Handler) HandleGetWatch(c *fiber.Ctx) error {
	w, err := h.service.Watch(c.UserContext(), c.Params("tracking_id"))
	if errors.Is(err, ErrWatchNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to load price watch", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(w)
}

// HandleHistory returns the price history of a product.
// @Summary Price History
// @Description Returns a simulated daily price history with lowest, highest, average and current price.
// @Tags pricing
// @Produce json
// @Param product_id query string true "Product ID"
// @Param platform query string true "Platform"
// @Param days query integer false "Number of days" default(30)
// @Success 200 {object} History
// @Failure 400 {object} map[string]string "Product ID and platform are required"
// @Router /history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	history, err := h.service.History(c.Query("product_id"), c.Query("platform"), c.QueryInt("days", DefaultHistoryDays))
	if err != nil {
		if badRequest(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(history)
}

// HandleBuyingOptions returns new, used and refurbished offers.
// @Summary Buying Options
// @Tags pricing
// @Produce json
// @Param product_name query string true "Product name"
// @Success 200 {object} BuyingOptions
// @Failure 400 {object} map[string]string "Product name is required"
// @Router /buying-options [get]
func (h *Handler) HandleBuyingOptions(c *fiber.Ctx) error {
	opts, err := h.service.BuyingOptions(c.Query("product_name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(opts)
}
