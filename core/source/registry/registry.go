package registry

import (
	"context"
	"fmt"

	"shopping-agent/core/llm"
	"shopping-agent/core/source"
	"shopping-agent/core/source/catalog"
	"shopping-agent/core/source/vision"

	"go.uber.org/zap"
)

// Registry holds the source adapters configured for this process.
// It is built once at startup and read concurrently afterwards.
type Registry struct {
	settings  source.Config
	detectors []source.Detector
	platforms map[string]source.Searcher
	order     []string
	fallback  source.Searcher
	generator catalog.Generator
}

// New builds the registry from configuration.
//
// Vision sources are enabled by their API keys. Every configured platform
// gets a catalog adapter, backed by the OpenAI generator when OpenAI is
// configured and by static listings otherwise.
func New(ctx context.Context, settings source.Config, openaiCfg llm.OpenAIConfig, geminiCfg llm.GeminiConfig, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		settings:  settings,
		platforms: make(map[string]source.Searcher),
		generator: catalog.Static{},
	}

	if openaiCfg.Enabled() {
		r.detectors = append(r.detectors, vision.NewOpenAI(openaiCfg))
		r.generator = catalog.NewLLM(openaiCfg, logger)
		logger.Info("OpenAI sources initialized",
			zap.String("vision_model", openaiCfg.VisionModel),
			zap.String("text_model", openaiCfg.TextModel))
	}

	if geminiCfg.Enabled() {
		g, err := vision.NewGemini(ctx, geminiCfg)
		if err != nil {
			// A broken optional source must not prevent startup
			logger.Warn("Failed to initialize Gemini vision source", zap.Error(err))
		} else {
			r.detectors = append(r.detectors, g)
			logger.Info("Gemini vision source initialized", zap.String("model", geminiCfg.Model))
		}
	}

	for _, id := range settings.Platforms {
		if id == "" {
			continue
		}
		p, err := catalog.NewPlatform(id, r.generator)
		if err != nil {
			return nil, fmt.Errorf("invalid platform configuration: %w", err)
		}
		if _, dup := r.platforms[p.Platform()]; dup {
			continue
		}
		r.Register(p)
	}

	if openaiCfg.Enabled() {
		r.fallback, _ = catalog.NewPlatform(catalog.Various, r.generator)
	}

	if len(r.Available()) == 0 {
		logger.Warn("No sources were configured. Functionality will be limited.")
	}

	return r, nil
}

// Register adds or replaces the searcher for its platform.
func (r *Registry) Register(s source.Searcher) {
	id := s.Platform()
	if _, exists := r.platforms[id]; !exists {
		r.order = append(r.order, id)
	}
	r.platforms[id] = s
}

// AddDetector appends a vision source with the lowest priority so far.
func (r *Registry) AddDetector(d source.Detector) {
	r.detectors = append(r.detectors, d)
}

// SetFallback sets the searcher used when every platform comes back empty.
func (r *Registry) SetFallback(s source.Searcher) {
	r.fallback = s
}

// Settings returns the shared source tunables.
func (r *Registry) Settings() source.Config {
	return r.settings
}

// Detectors returns the vision sources in priority order.
func (r *Registry) Detectors() []source.Detector {
	return r.detectors
}

// Searchers returns the configured platform searchers in priority order.
func (r *Registry) Searchers() []source.Searcher {
	out := make([]source.Searcher, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.platforms[id])
	}
	return out
}

// Fallback returns the searcher used when all platforms return nothing,
// or nil when none is configured.
func (r *Registry) Fallback() source.Searcher {
	return r.fallback
}

// Searcher returns the adapter for a platform identifier.
// Known platforms that were not configured are served by the default
// generator, so lookups by product platform keep working.
func (r *Registry) Searcher(platform string) (source.Searcher, error) {
	id := catalog.NormalizeID(platform)
	if s, ok := r.platforms[id]; ok {
		return s, nil
	}
	return catalog.NewPlatform(id, r.generator)
}

// DealSearchers returns the searchers compared when looking for the best
// deal: the configured platforms, or every known platform if none are.
func (r *Registry) DealSearchers() []source.Searcher {
	if len(r.order) > 0 {
		return r.Searchers()
	}
	out := make([]source.Searcher, 0, len(catalog.KnownPlatforms()))
	for _, id := range catalog.KnownPlatforms() {
		p, _ := catalog.NewPlatform(id, r.generator)
		out = append(out, p)
	}
	return out
}

// Available lists the names of every configured source.
func (r *Registry) Available() []string {
	out := make([]string, 0, len(r.detectors)+len(r.order))
	for _, d := range r.detectors {
		out = append(out, d.Name())
	}
	out = append(out, r.order...)
	return out
}
