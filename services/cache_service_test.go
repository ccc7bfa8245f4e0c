package services

import (
	"context"
	"testing"
	"time"

	"labisco_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheJSONHelpers(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheService(testLogger(), newMemoryStore())

	missing, err := getJSON[structs.User](ctx, cache, "session:x:user")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, setJSON(ctx, cache, "session:x:user", structs.User{ID: "admin1"}, time.Minute))
	user, err := getJSON[structs.User](ctx, cache, "session:x:user")
	require.NoError(t, err)
	assert.Equal(t, "admin1", user.ID)

	ok, err := cache.Exists(ctx, "session:x:user")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, cache.Set(ctx, "session:y:user", "{broken", 0))
	_, err = getJSON[structs.User](ctx, cache, "session:y:user")
	assert.ErrorContains(t, err, "session:y:user")
}
