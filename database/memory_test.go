package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		store := NewMemoryStore()
		val, ok, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("set overwrites", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "k", "one", 0))
		require.NoError(t, store.Set(ctx, "k", "two", 0))

		val, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "two", val)
	})

	t.Run("ttl expires", func(t *testing.T) {
		store := NewMemoryStore()
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return now }

		require.NoError(t, store.Set(ctx, "k", "v", time.Minute))
		_, ok, _ := store.Get(ctx, "k")
		assert.True(t, ok)

		now = now.Add(time.Minute)
		_, ok, _ = store.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("delete many", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "a", "1", 0))
		require.NoError(t, store.Set(ctx, "b", "2", 0))
		require.NoError(t, store.Delete(ctx, "a", "b", "c"))

		_, okA, _ := store.Get(ctx, "a")
		_, okB, _ := store.Get(ctx, "b")
		assert.False(t, okA)
		assert.False(t, okB)
	})

	t.Run("incr restarts after window", func(t *testing.T) {
		store := NewMemoryStore()
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return now }

		for want := int64(1); want <= 3; want++ {
			got, err := store.Incr(ctx, "counter", time.Minute)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		now = now.Add(2 * time.Minute)
		got, err := store.Incr(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})
}
