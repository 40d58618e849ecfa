// Package source defines the collaborators the service aggregates over.
//
// A source adapter is either a Detector (vision API: image in, detections
// out) or a Searcher (shopping platform: query in, listings out). Adapters
// are opaque: they either return an ordered list of candidates or fail, and
// the reconcile package decides what to do with either result.
//
// # Types
//
//   - Detection: a product seen in an image (name, confidence, bounding box).
//   - Product: a listing on a shopping platform (price, rating, relevance).
//   - Image: decoded image bytes, built from uploads, data URLs or base64.
//
// Both Detection and Product implement reconcile.Candidate.
//
// Concrete adapters live in the vision and catalog subpackages; the registry
// subpackage wires them together from configuration.
package source
