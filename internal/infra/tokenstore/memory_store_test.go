package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "abc", time.Minute))
	require.NoError(t, store.Revoke(ctx, "ignored", 0))

	revoked, err = store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "ignored")
	require.NoError(t, err)
	require.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryStorePrunesExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "old", time.Second))
	now = now.Add(time.Minute)
	require.NoError(t, store.Revoke(ctx, "new", time.Hour))

	require.Len(t, store.entries, 1)
	require.Contains(t, store.entries, "new")
}

func TestValkeyStoreKey(t *testing.T) {
	s := NewValkeyStore(nil, "")
	require.Equal(t, "smartnotes:revoked:jti-1", s.revokedKey("jti-1"))
}
