// Package health exposes GET /health.
package health
