package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"labisco_server/database"

	"github.com/MonkyMars/gecho"
)

// CacheService is the typed access layer over the key-value store shared by
// sessions, themes, drafts and rate-limit counters.
type CacheService struct {
	logger *gecho.Logger
	store  database.KVStore
}

func NewCacheService(logger *gecho.Logger, store database.KVStore) *CacheService {
	return &CacheService{
		logger: logger,
		store:  store,
	}
}

func (cs *CacheService) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return cs.store.Set(ctx, key, value, ttl)
}

// Get returns "" when the key does not exist.
func (cs *CacheService) Get(ctx context.Context, key string) (string, error) {
	val, _, err := cs.store.Get(ctx, key)
	return val, err
}

func (cs *CacheService) Delete(ctx context.Context, keys ...string) error {
	return cs.store.Delete(ctx, keys...)
}

// Exists reports whether the key is present and not expired.
func (cs *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := cs.store.Get(ctx, key)
	return ok, err
}

func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.store.Ping(ctx)
}

// ============================================================================
// Rate limiting
// ============================================================================

func rateLimitKey(ip, endpoint string) string {
	return fmt.Sprintf("ratelimit:%s:%s", ip, strings.TrimSuffix(endpoint, "/"))
}

// IncrementRateLimit atomically increments the counter for an IP/endpoint pair.
// The window starts at the first hit.
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, endpoint string, window time.Duration) (int, error) {
	n, err := cs.store.Incr(ctx, rateLimitKey(ip, endpoint), window)
	return int(n), err
}

// ============================================================================
// Helper Methods
// ============================================================================

func setJSON[T any](ctx context.Context, cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(ctx, key, string(data), ttl)
}

// getJSON returns nil, nil when the key is missing.
func getJSON[T any](ctx context.Context, cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil
	}

	var result T
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		cs.logger.Warn("Failed to decode cached value", gecho.Field("key", key), gecho.Field("error", err))
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return &result, nil
}
