// Package cache is a TTL cache for feed payloads backed by redis. Entries
// carry their fetch time, so freshness is decided on read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// DefaultTTL matches the dashboard's five-minute feed cache.
const DefaultTTL = 5 * time.Minute

type store interface {
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Cache wraps the redis client with a stamped JSON envelope per key.
type Cache struct {
	store    store
	ttl      time.Duration
	strategy retry.Strategy
}

func New(store store, ttl time.Duration, strategy retry.Strategy) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{store: store, ttl: ttl, strategy: strategy}
}

// Get unmarshals a fresh cached payload into out and reports whether it was
// a hit. Stale, missing or undecodable entries are misses.
func (c *Cache) Get(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.store.GetWithRetry(ctx, c.strategy, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return false
	}
	if time.Since(env.FetchedAt) >= c.ttl {
		return false
	}

	return json.Unmarshal(env.Data, out) == nil
}

// Set stores a payload stamped with the current time. Failures are logged
// and swallowed; the cache is best effort.
func (c *Cache) Set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}

	raw, err := json.Marshal(envelope{Data: data, FetchedAt: time.Now()})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}

	if err := c.store.SetWithRetry(ctx, c.strategy, key, string(raw)); err != nil {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
