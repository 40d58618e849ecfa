package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopping-agent/core/source"
)

// ErrUnknownPlatform is returned for platform identifiers with no adapter.
var ErrUnknownPlatform = errors.New("unknown platform")

// Supported platform identifiers.
const (
	Amazon  = "amazon"
	Walmart = "walmart"
	EBay    = "ebay"
	Target  = "target"
	BestBuy = "bestbuy"
	// Various labels listings not tied to a specific platform.
	Various = "various"
)

// displayNames maps platform identifiers to the names shown in listings.
var displayNames = map[string]string{
	Amazon:  "Amazon",
	Walmart: "Walmart",
	EBay:    "eBay",
	Target:  "Target",
	BestBuy: "BestBuy",
	Various: "Various",
}

// KnownPlatforms lists every shopping platform with an adapter, in the
// order they are searched when comparing deals.
func KnownPlatforms() []string {
	return []string{Amazon, Walmart, EBay, Target, BestBuy}
}

// NormalizeID lowercases a platform identifier and strips the legacy
// "_api" suffix ("amazon_product_api" style names are accepted too).
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimSuffix(id, "_api")
	id = strings.TrimSuffix(id, "_product")
	return strings.ReplaceAll(id, " ", "")
}

// DisplayName returns the listing name of a platform, or "" if unknown.
func DisplayName(id string) string {
	return displayNames[NormalizeID(id)]
}

// Generator produces listings for a platform.
type Generator interface {
	Generate(ctx context.Context, platform string, q source.Query) ([]source.Product, error)
}

// Platform is the source.Searcher of one shopping platform.
type Platform struct {
	id      string
	display string
	gen     Generator
}

// NewPlatform binds a generator to a platform identifier.
func NewPlatform(id string, gen Generator) (*Platform, error) {
	id = NormalizeID(id)
	display, ok := displayNames[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, id)
	}
	return &Platform{id: id, display: display, gen: gen}, nil
}

// Platform implements source.Searcher.
func (p *Platform) Platform() string {
	return p.id
}

// Search implements source.Searcher.
func (p *Platform) Search(ctx context.Context, q source.Query) ([]source.Product, error) {
	if q.Limit <= 0 {
		return []source.Product{}, nil
	}
	products, err := p.gen.Generate(ctx, p.display, q)
	if err != nil {
		return nil, err
	}
	if len(products) > q.Limit {
		products = products[:q.Limit]
	}
	return products, nil
}
