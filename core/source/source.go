package source

import (
	"context"
	"time"
)

// Detector finds products in an image.
type Detector interface {
	// Name identifies the vision source (e.g. "openai", "gemini").
	Name() string

	// Detect returns candidate products found in the image.
	Detect(ctx context.Context, img Image) ([]Detection, error)
}

// Searcher finds listings on one shopping platform.
type Searcher interface {
	// Platform returns the platform identifier (e.g. "amazon").
	Platform() string

	// Search returns listings matching the query, at most q.Limit of them.
	Search(ctx context.Context, q Query) ([]Product, error)
}

// Config holds the tunables shared by all sources.
type Config struct {
	// ConfidenceThreshold drops detections scoring below it.
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" default:"0.7"`
	// MaxResults is the default size of merged result lists.
	MaxResults int `mapstructure:"max_results" default:"5"`
	// Timeout bounds every individual adapter call.
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
	// Platforms lists the shopping platforms to query, in priority order.
	Platforms []string `mapstructure:"platforms" default:"amazon,walmart,ebay"`
}
