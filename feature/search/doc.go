// Package search implements platform search, similar products and best deals.
//
// Platforms are queried in parallel through the registry and reconciled by
// relevance. Listings are deduplicated per platform, so identical product
// names offered by two platforms both survive.
package search
