// Package registry wires source adapters together from configuration.
//
// The registry is a fixed mapping from platform identifier to Searcher plus
// an ordered list of Detectors. Features look adapters up here instead of
// dispatching on source names themselves.
//
// # Usage
//
//	reg, err := registry.New(ctx, cfg.Sources, cfg.OpenAI, cfg.Gemini, logger)
//	for _, s := range reg.Searchers() {
//	    products, err := s.Search(ctx, q)
//	}
package registry
