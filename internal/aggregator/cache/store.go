// Package cache holds the aggregation result cache. The payload for a
// key is always the full unfiltered union of adapter results for one
// (query, location) pair; type and tag filtering happen after the cache.
package cache

import (
	"context"

	"worklink-aggregator/pkg/models"
)

// Store is the cache backend contract. Implementations never surface
// errors to the aggregator: a failed read is a miss and a failed write
// is dropped, since stale-or-missing cache only costs an extra upstream
// fetch.
type Store interface {
	// Get returns the cached listings for key, or ok=false when the key
	// is absent or past its TTL.
	Get(ctx context.Context, key string) (listings []models.Listing, ok bool)

	// Set replaces the entry for key wholesale.
	Set(ctx context.Context, key string, listings []models.Listing)

	// Close releases backend resources.
	Close() error
}
