package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"worklink-aggregator/internal/config"
	"worklink-aggregator/internal/logging"
	"worklink-aggregator/pkg/models"
)

// keyPrefix namespaces aggregation entries in a shared Redis instance
const keyPrefix = "worklink:aggregated:"

// RedisStore caches aggregation results in Redis with a server-side
// TTL, letting multiple instances share one cache. Failure semantics
// match the Store contract: read errors are misses, write errors are
// logged and dropped.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewRedisStore creates a Redis-backed store from the application config
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    cfg.Aggregator.CacheTTL,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Get fetches and decodes the cached listings for key. Redis enforces
// the TTL itself, so any present entry is fresh.
func (s *RedisStore) Get(ctx context.Context, key string) ([]models.Listing, bool) {
	data, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Redis cache read failed, treating as miss", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var listings []models.Listing
	if err := json.Unmarshal([]byte(data), &listings); err != nil {
		s.logger.Warn("Redis cache entry is corrupt, treating as miss", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil, false
	}
	return listings, true
}

// Set stores the listings under key with the configured TTL
func (s *RedisStore) Set(ctx context.Context, key string, listings []models.Listing) {
	data, err := json.Marshal(listings)
	if err != nil {
		s.logger.Error("Failed to marshal cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("Redis cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// BuildStore selects the cache backend from configuration, falling back
// to memory when an unknown backend is configured.
func BuildStore(cfg *config.Config) (Store, error) {
	switch cfg.Aggregator.CacheBackend {
	case "redis":
		store := NewRedisStore(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis cache backend unreachable: %w", err)
		}
		return store, nil
	case "", "memory":
		return NewMemoryStore(cfg.Aggregator.CacheTTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Aggregator.CacheBackend)
	}
}
