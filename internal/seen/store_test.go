package seen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morningbutler/butler/internal/repository/kv"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	value, ok := m[key]
	if !ok {
		return "", kv.ErrKeyNotFound
	}
	return value, nil
}

func (m memKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func TestStore_AllEmpty(t *testing.T) {
	store := NewStore(memKV{})

	ledger := store.All(context.Background())

	assert.Empty(t, ledger)
	assert.False(t, ledger.IsSeen("CS_101_Midterm_Info"))
}

func TestStore_AllCorrupted(t *testing.T) {
	store := NewStore(memKV{ledgerKey: "{not json"})

	assert.Empty(t, store.All(context.Background()))
}

func TestStore_MarkSeen(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memKV{})

	require.NoError(t, store.MarkSeen(ctx, "CS_101_Midterm_Info", "2026-08-30T09:15:00Z"))

	assert.True(t, store.IsSeen(ctx, "CS_101_Midterm_Info"))
	assert.False(t, store.IsSeen(ctx, "CS_101_Final_Info"))
}

func TestStore_MarkSeenIdempotent(t *testing.T) {
	ctx := context.Background()
	backing := memKV{}
	store := NewStore(backing)

	require.NoError(t, store.MarkSeen(ctx, "CS_101_Midterm_Info", "2026-08-30T09:15:00Z"))
	require.NoError(t, store.MarkSeen(ctx, "CS_101_Midterm_Info", "2026-08-30T09:15:00Z"))

	ledger := store.All(ctx)
	assert.Len(t, ledger, 1)
	assert.Equal(t, "2026-08-30T09:15:00Z", ledger["CS_101_Midterm_Info"])
}

func TestStore_MarkSeenAccumulates(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memKV{})

	require.NoError(t, store.MarkSeen(ctx, "a", "1"))
	require.NoError(t, store.MarkSeen(ctx, "b", "2"))

	ledger := store.All(ctx)
	assert.True(t, ledger.IsSeen("a"))
	assert.True(t, ledger.IsSeen("b"))
}
