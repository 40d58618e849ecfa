// Package pricing implements price tracking, price history and buying options.
//
// Tracking registrations go to a Store: GormStore when a database is
// configured, MemoryStore otherwise. Price history and buying options are
// simulated; no price is ever stored.
//
// # Endpoints
//
//   - POST /track
//   - GET /track/:tracking_id
//   - GET /history?product_id=&platform=&days=
//   - GET /buying-options?product_name=
package pricing
