package source

import (
	"strings"

	"shopping-agent/core/reconcile"
)

// Vertex is one corner of a bounding polygon.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Detection kinds.
const (
	KindObject  = "object"
	KindBrand   = "brand"
	KindLabel   = "label"
	KindProduct = "product"
)

// Detection is a product found in an image by a vision source.
type Detection struct {
	Name        string         `json:"name"`
	Confidence  float64        `json:"confidence"`
	Type        string         `json:"type"`
	BoundingBox []Vertex       `json:"bounding_box"`
	Attributes  map[string]any `json:"attributes"`
	Source      string         `json:"source,omitempty"`
}

// CandidateName implements reconcile.Candidate.
func (d Detection) CandidateName() string { return d.Name }

// Score implements reconcile.Candidate.
func (d Detection) Score(field reconcile.ScoreField) float64 {
	if field == reconcile.ScoreConfidence {
		return d.Confidence
	}
	return 0
}

// Shipping describes delivery terms of a listing.
type Shipping struct {
	Price             float64 `json:"price"`
	IsFree            bool    `json:"is_free"`
	EstimatedDelivery string  `json:"estimated_delivery"`
}

// Product is a listing returned by a shopping platform.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	URL          string   `json:"url,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Platform     string   `json:"platform"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	Relevance    float64  `json:"relevance"`
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Availability string   `json:"availability"`
	Shipping     Shipping `json:"shipping"`
}

// CandidateName implements reconcile.Candidate.
func (p Product) CandidateName() string { return p.Name }

// Score implements reconcile.Candidate.
func (p Product) Score(field reconcile.ScoreField) float64 {
	if field == reconcile.ScoreRelevance {
		return p.Relevance
	}
	return 0
}

// ProductKey deduplicates listings per platform, so the same product name
// offered by two platforms is kept once for each.
func ProductKey(c reconcile.Candidate) string {
	if p, ok := c.(Product); ok {
		return strings.ToLower(p.Platform) + "|" + reconcile.DefaultKey(p)
	}
	return reconcile.DefaultKey(c)
}

// PriceRange bounds a search by price, inclusive.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Query is a shopping platform search request.
type Query struct {
	Text       string      `json:"query"`
	Category   string      `json:"category,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Limit      int         `json:"max_results"`
}
