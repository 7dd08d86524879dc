package cache

import (
	"context"
	"sync"
	"time"

	"worklink-aggregator/pkg/models"
)

// entry is one cached result set with its storage timestamp
type entry struct {
	payload  []models.Listing
	storedAt time.Time
}

// MemoryStore is an in-process TTL cache. Entries are replaced
// wholesale on write and expire lazily on read; there is no eviction
// beyond TTL, so the map grows with the number of distinct keys seen
// over the process lifetime. Key cardinality is bounded by real user
// query diversity, which keeps this acceptable for now.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// MemoryOption configures a MemoryStore
type MemoryOption func(*MemoryStore)

// WithClock overrides the store's time source. Tests use this to pin
// entries exactly at or around the TTL boundary.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an in-memory store with the given TTL
func NewMemoryStore(ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached listings for key if the entry is younger than
// the TTL. An entry aged exactly TTL is already stale.
func (s *MemoryStore) Get(_ context.Context, key string) ([]models.Listing, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		return nil, false
	}
	return e.payload, true
}

// Set replaces the entry for key with a fresh timestamp
func (s *MemoryStore) Set(_ context.Context, key string, listings []models.Listing) {
	s.mu.Lock()
	s.entries[key] = entry{payload: listings, storedAt: s.now()}
	s.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
