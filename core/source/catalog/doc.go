// Package catalog implements source.Searcher for shopping platforms.
//
// None of the platforms expose a usable public search API, so every
// Platform is backed by a Generator: Static produces deterministic
// placeholder listings, LLM asks an OpenAI model for realistic ones and
// falls back to Static when the answer cannot be decoded.
package catalog
