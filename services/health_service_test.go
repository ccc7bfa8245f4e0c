package services

import (
	"context"
	"testing"

	"labisco_server/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreHealthStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("memory store has no pool", func(t *testing.T) {
		hs := NewHealthService(testLogger(), database.NewMemoryStore(), "memory")

		status, err := hs.GetStoreHealthStatus(ctx)
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Equal(t, "memory", status.Driver)
		assert.Nil(t, status.Pool)
	})

	t.Run("redis reports pool stats", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store := database.NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		t.Cleanup(func() { store.Close() })

		hs := NewHealthService(testLogger(), store, "redis")
		status, err := hs.GetStoreHealthStatus(ctx)
		require.NoError(t, err)
		assert.True(t, status.Connected)
		require.NotNil(t, status.Pool)
		assert.Contains(t, status.Pool, "total_conns")
	})

	t.Run("unreachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store := database.NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
		t.Cleanup(func() { store.Close() })
		mr.Close()

		hs := NewHealthService(testLogger(), store, "redis")
		status, err := hs.GetStoreHealthStatus(ctx)
		assert.Error(t, err)
		assert.False(t, status.Connected)
	})
}
