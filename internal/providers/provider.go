// Package providers defines the source adapter contract and the
// registry of configured adapters.
package providers

import (
	"context"

	"worklink-aggregator/internal/config"
	"worklink-aggregator/internal/providers/jsearch"
	"worklink-aggregator/internal/providers/serpapi"
	"worklink-aggregator/pkg/models"
)

// Adapter wraps one external job search provider
type Adapter interface {
	// Name returns the source identifier stamped on normalized listings
	Name() string

	// Enabled reports whether the adapter's credential is configured.
	// Disabled adapters contribute zero results without a network call.
	Enabled() bool

	// Search performs one provider request and returns normalized
	// listings. Query and location may be empty; the adapter substitutes
	// provider-specific defaults. Errors are informational for the
	// aggregator, which collapses them to an empty result set.
	Search(ctx context.Context, query, location string) ([]models.Listing, error)
}

// BuildAdapters constructs every known adapter in registration order.
// The order is fixed because aggregation concatenates results without
// cross-source ranking.
func BuildAdapters(cfg *config.Config) []Adapter {
	return []Adapter{
		jsearch.New(cfg),
		serpapi.New(cfg),
	}
}
