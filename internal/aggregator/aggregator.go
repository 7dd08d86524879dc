// Package aggregator fans job searches out to every configured source
// adapter, caches the combined result and applies post-cache filtering.
package aggregator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"worklink-aggregator/internal/aggregator/cache"
	"worklink-aggregator/internal/filter"
	"worklink-aggregator/internal/logging"
	"worklink-aggregator/internal/providers"
	"worklink-aggregator/pkg/models"
)

// TypeAll is the sentinel meaning "no type constraint"
const TypeAll = "all"

// Aggregator orchestrates the source adapters and the result cache.
// Nothing in its search path returns an error to the caller: provider
// failures degrade to fewer results and a fully degraded fan-out falls
// back to the static seed list.
type Aggregator struct {
	adapters []providers.Adapter
	store    cache.Store
	group    singleflight.Group
	logger   logging.Logger
	now      func() time.Time
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithClock overrides the aggregator's time source for tests
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// New creates an aggregator over the given adapters and cache store.
// Adapter order is preserved in aggregated output.
func New(adapters []providers.Adapter, store cache.Store, opts ...Option) *Aggregator {
	a := &Aggregator{
		adapters: adapters,
		store:    store,
		logger:   logging.GetGlobalLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adapters returns the configured adapters in registration order
func (a *Aggregator) Adapters() []providers.Adapter {
	return a.adapters
}

// Search returns the aggregated listings for the given parameters.
//
// The cache is keyed on (query, location) only; jobType and tagFilters
// are applied after the cache so every filter combination over the same
// search reuses one upstream fetch. Concurrent misses for the same key
// are coalesced into a single fan-out.
func (a *Aggregator) Search(ctx context.Context, query, location, jobType string, tagFilters []string) []models.Listing {
	key := CacheKey(query, location)

	base, ok := a.store.Get(ctx, key)
	if !ok {
		fetched, _, shared := a.group.Do(key, func() (interface{}, error) {
			return a.fetchAll(ctx, query, location, key), nil
		})
		base = fetched.([]models.Listing)
		if shared {
			a.logger.Debug("Coalesced concurrent cache miss", map[string]interface{}{"cache_key": key})
		}
	}

	return applyFilters(base, jobType, tagFilters)
}

// fetchAll fans out to every adapter concurrently, joins all results in
// registration order, applies the seed fallback and stores the union.
func (a *Aggregator) fetchAll(ctx context.Context, query, location, key string) []models.Listing {
	results := make([][]models.Listing, len(a.adapters))

	var wg sync.WaitGroup
	for i, adapter := range a.adapters {
		if !adapter.Enabled() {
			a.logger.Debug("Skipping disabled provider", map[string]interface{}{"provider": adapter.Name()})
			continue
		}

		wg.Add(1)
		go func(i int, adapter providers.Adapter) {
			defer wg.Done()

			listings, err := adapter.Search(ctx, query, location)
			if err != nil {
				// Collapse to zero results; a provider outage degrades the
				// aggregate, it does not fail the request.
				a.logger.Warn("Provider search failed", map[string]interface{}{
					"provider": adapter.Name(),
					"error":    err.Error(),
				})
				return
			}
			results[i] = listings
		}(i, adapter)
	}
	wg.Wait()

	var combined []models.Listing
	for _, r := range results {
		combined = append(combined, r...)
	}

	if len(combined) == 0 {
		a.logger.Info("All providers returned nothing, using seed listings", map[string]interface{}{
			"query":    query,
			"location": location,
		})
		combined = seedListings(query, location, a.now())
	}

	a.store.Set(ctx, key, combined)

	a.logger.Info("Aggregation fan-out completed", map[string]interface{}{
		"cache_key": key,
		"listings":  len(combined),
	})
	return combined
}

// applyFilters narrows the base set by job type, then by the
// conjunctive accessibility filter predicate
func applyFilters(base []models.Listing, jobType string, tagFilters []string) []models.Listing {
	out := make([]models.Listing, 0, len(base))
	for _, listing := range base {
		if jobType != "" && jobType != TypeAll && listing.Type != jobType {
			continue
		}
		if !filter.Matches(listing, tagFilters) {
			continue
		}
		out = append(out, listing)
	}
	return out
}

// CacheKey builds the cache key for a (query, location) pair. Both
// parts are normalized so equivalent requests share an entry, with a
// literal "all" standing in for absent values.
func CacheKey(query, location string) string {
	return fmt.Sprintf("search:%s:%s", normalizeKeyPart(query), normalizeKeyPart(location))
}

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "all"
	}
	return s
}
