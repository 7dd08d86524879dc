package cache

import (
	"context"
	"testing"
	"time"

	"worklink-aggregator/pkg/models"
)

func listings(ids ...string) []models.Listing {
	out := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Listing{ID: id, AccessibilityTags: []string{}})
	}
	return out
}

func TestMemoryStoreHitAndMiss(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Minute)

	if _, ok := store.Get(ctx, "search:all:all"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set(ctx, "search:all:all", listings("a", "b"))

	got, ok := store.Get(ctx, "search:all:all")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("unexpected payload: %+v", got)
	}

	if _, ok := store.Get(ctx, "search:other:all"); ok {
		t.Error("expected miss for different key")
	}
}

func TestMemoryStoreTTLBoundary(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute
	base := time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)

	now := base
	store := NewMemoryStore(ttl, WithClock(func() time.Time { return now }))

	store.Set(ctx, "k", listings("a"))

	// One millisecond before expiry the entry is served
	now = base.Add(ttl - time.Millisecond)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Error("expected hit at storedAt + TTL - 1ms")
	}

	// One millisecond past expiry it is gone
	now = base.Add(ttl + time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("expected miss at storedAt + TTL + 1ms")
	}
}

func TestMemoryStoreWholesaleReplacement(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	store.Set(ctx, "k", listings("a", "b"))
	store.Set(ctx, "k", listings("c"))

	got, ok := store.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Errorf("Set must replace, not merge: %+v", got)
	}
}

func TestMemoryStoreSetRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	ttl := 10 * time.Minute
	base := time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC)

	now := base
	store := NewMemoryStore(ttl, WithClock(func() time.Time { return now }))

	store.Set(ctx, "k", listings("a"))

	// Rewriting near expiry starts a fresh epoch
	now = base.Add(9 * time.Minute)
	store.Set(ctx, "k", listings("b"))

	now = base.Add(18 * time.Minute)
	got, ok := store.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit inside the refreshed TTL window")
	}
	if got[0].ID != "b" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestMemoryStoreLen(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	store.Set(ctx, "a", listings("1"))
	store.Set(ctx, "b", listings("2"))
	store.Set(ctx, "a", listings("3"))

	if got := store.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}
