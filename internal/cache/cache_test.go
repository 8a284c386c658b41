package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

type memStore map[string]string

func (m memStore) GetWithRetry(_ context.Context, _ retry.Strategy, key string) (string, error) {
	value, ok := m[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (m memStore) SetWithRetry(_ context.Context, _ retry.Strategy, key string, value interface{}) error {
	m[key] = value.(string)
	return nil
}

type payload struct {
	Name string `json:"name"`
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New(memStore{}, time.Minute, strategy)

	c.Set(ctx, "feeds:test", payload{Name: "hello"})

	var out payload
	require.True(t, c.Get(ctx, "feeds:test", &out))
	assert.Equal(t, "hello", out.Name)
}

func TestCache_Miss(t *testing.T) {
	c := New(memStore{}, time.Minute, strategy)

	var out payload
	assert.False(t, c.Get(context.Background(), "feeds:test", &out))
}

func TestCache_StaleEntryIsMiss(t *testing.T) {
	backing := memStore{}
	c := New(backing, time.Minute, strategy)

	data, err := json.Marshal(payload{Name: "old"})
	require.NoError(t, err)
	raw, err := json.Marshal(envelope{Data: data, FetchedAt: time.Now().Add(-2 * time.Minute)})
	require.NoError(t, err)
	backing["feeds:test"] = string(raw)

	var out payload
	assert.False(t, c.Get(context.Background(), "feeds:test", &out))
}

func TestCache_UndecodableEntryIsMiss(t *testing.T) {
	backing := memStore{"feeds:test": "{broken"}
	c := New(backing, time.Minute, strategy)

	var out payload
	assert.False(t, c.Get(context.Background(), "feeds:test", &out))
}

func TestNew_DefaultTTL(t *testing.T) {
	c := New(memStore{}, 0, strategy)

	assert.Equal(t, DefaultTTL, c.ttl)
}
