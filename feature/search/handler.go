package search

import (
	"encoding/json"
	"errors"
	"fmt"

	"shopping-agent/core/logger"
	"shopping-agent/core/source"
	"shopping-agent/core/source/catalog"
	"shopping-agent/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/search", h.HandleSearchQuery)
	app.Post("/search", h.HandleSearchBody)
	app.Get("/similar", h.HandleSimilar)
	app.Get("/best-deal", h.HandleBestDeal)
}

type searchOptions struct {
	Category   string `json:"category"`
	MaxResults *int   `json:"max_results"`
	PriceRange any    `json:"price_range"`
}

type searchRequest struct {
	Query   string        `json:"query"`
	Options searchOptions `json:"options"`
}

// HandleSearchQuery searches shopping platforms.
// @Summary Search Products
// @Description Searches every configured shopping platform in parallel and returns listings ranked by relevance.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Param category query string false "Category"
// @Param min_price query number false "Minimum price (requires max_price)"
// @Param max_price query number false "Maximum price (requires min_price)"
// @Param max_results query integer false "Maximum number of results"
// @Success 200 {object} Results
// @Failure 400 {object} map[string]string "No query provided"
// @Router /search [get]
func (h *Handler) HandleSearchQuery(c *fiber.Ctx) error {
	q := source.Query{
		Text:     c.Query("query"),
		Category: c.Query("category"),
		Limit:    c.QueryInt("max_results", h.service.DefaultLimit()),
	}
	if c.Query("min_price") != "" && c.Query("max_price") != "" {
		pr, err := priceRange(c.Query("min_price"), c.Query("max_price"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		q.PriceRange = pr
	}
	return h.search(c, q)
}

// HandleSearchBody searches shopping platforms with a JSON request.
// @Summary Search Products (JSON)
// @Description Same as GET /search with a JSON body {"query", "options": {"category", "max_results", "price_range": [min, max]}}.
// @Tags search
// @Accept json
// @Produce json
// @Param request body searchRequest true "Search request"
// @Success 200 {object} Results
// @Failure 400 {object} map[string]string "No query provided"
// @Router /search [post]
func (h *Handler) HandleSearchBody(c *fiber.Ctx) error {
	var req searchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrMissingQuery.Error()})
	}

	q := source.Query{
		Text:     req.Query,
		Category: req.Options.Category,
		Limit:    h.service.DefaultLimit(),
	}
	if req.Options.MaxResults != nil {
		q.Limit = *req.Options.MaxResults
	}
	pr, err := ParsePriceRange(req.Options.PriceRange)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	q.PriceRange = pr

	return h.search(c, q)
}

func (h *Handler) search(c *fiber.Ctx, q source.Query) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Search(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, ErrMissingQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Search completed",
		zap.String("query", q.Text),
		zap.Int("results", len(res.Results)),
		zap.Bool("fallback", res.Fallback))
	return c.JSON(res)
}

// HandleSimilar finds products similar to a given one.
// @Summary Similar Products
// @Description Finds listings similar to a product on the product's platform.
// @Tags search
// @Produce json
// @Param product_id query string true "Product ID, optionally \"<id>:<name>\""
// @Param platform query string true "Platform"
// @Param max_results query integer false "Maximum number of results"
// @Success 200 {object} map[string]interface{} "similar_products"
// @Failure 400 {object} map[string]string "Product ID and platform are required"
// @Router /similar [get]
func (h *Handler) HandleSimilar(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	products, err := h.service.Similar(c.UserContext(), c.Query("product_id"), c.Query("platform"),
		c.QueryInt("max_results", h.service.DefaultLimit()))
	if err != nil {
		if errors.Is(err, ErrMissingProduct) || errors.Is(err, catalog.ErrUnknownPlatform) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Similar products lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"similar_products": products})
}

// HandleBestDeal finds the cheapest listing across platforms.
// @Summary Best Deal
// @Description Searches every deal platform and returns the cheapest listing with a price comparison.
// @Tags search
// @Produce json
// @Param product_name query string true "Product name"
// @Param max_results_per_platform query integer false "Listings per platform" default(3)
// @Success 200 {object} Deal
// @Failure 400 {object} map[string]string "Product name is required"
// @Failure 404 {object} map[string]string "No results found"
// @Router /best-deal [get]
func (h *Handler) HandleBestDeal(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	deal, err := h.service.BestDeal(c.UserContext(), c.Query("product_name"),
		c.QueryInt("max_results_per_platform", DefaultPerPlatform))
	switch {
	case errors.Is(err, ErrMissingName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNoResults):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": NoResultsMessage})
	case err != nil:
		l.Error("Best deal lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(deal)
}

func priceRange(lo, hi any) (*source.PriceRange, error) {
	lower, okLower := utils.ToFloat(lo)
	upper, okUpper := utils.ToFloat(hi)
	if !okLower || !okUpper {
		return nil, fmt.Errorf("invalid price range %v - %v", lo, hi)
	}
	if lower > upper {
		return nil, fmt.Errorf("invalid price range: min %.2f exceeds max %.2f", lower, upper)
	}
	return &source.PriceRange{Min: lower, Max: upper}, nil
}
