package database

import (
	"context"
	"fmt"
	"labisco_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// KVStore is a string-keyed, string-valued store. It plays the part browser storage
// plays for a single-page dashboard, shared by every request of the server.
type KVStore interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the value unconditionally. A zero ttl never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr atomically increments a counter, starting the ttl on the first increment.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open connects the store selected by cfg.Driver.
func Open(ctx context.Context, cfg *structs.StoreConfig, logger *gecho.Logger) (KVStore, error) {
	switch cfg.Driver {
	case "redis", "":
		store := NewRedisStore(cfg.Redis)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("Connected to redis store", gecho.Field("address", cfg.Redis.Address))
		return store, nil

	case "postgres":
		store, err := NewPostgresStore(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to postgres store", gecho.Field("host", cfg.Postgres.Host), gecho.Field("database", cfg.Postgres.Name))
		return store, nil

	case "memory":
		logger.Warn("Using in-memory store, data is lost on restart")
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.Driver)
	}
}
