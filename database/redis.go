package database

import (
	"context"
	"errors"
	"labisco_server/structs"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every key in one redis database with connection pooling and retries.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *structs.RedisConfig) *RedisStore {
	return NewRedisStoreFromClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,

		// Retry settings
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
	}))
}

func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value  string
		exists bool
	)
	err := WithRetry(ctx, func() error {
		val, err := rs.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			value, exists = "", false
			return nil
		}
		if err != nil {
			return err
		}
		value, exists = val, true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return value, exists, nil
}

func (rs *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return WithRetry(ctx, func() error {
		return rs.client.Set(ctx, key, value, ttl).Err()
	})
}

func (rs *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return WithRetry(ctx, func() error {
		return rs.client.Del(ctx, keys...).Err()
	})
}

// Incr runs INCR and EXPIRE NX in one MULTI block, so a retried attempt never
// counts twice and the key always ends up with a ttl.
func (rs *RedisStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var result int64
	err := WithRetry(ctx, func() error {
		var incr *redis.IntCmd
		_, err := rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			if ttl > 0 {
				pipe.ExpireNX(ctx, key, ttl)
			}
			return nil
		})
		if err != nil {
			return err
		}
		result = incr.Val()
		return nil
	})
	return result, err
}

func (rs *RedisStore) Ping(ctx context.Context) error {
	return WithRetry(ctx, func() error {
		return rs.client.Ping(ctx).Err()
	})
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// Stats returns connection pool statistics
func (rs *RedisStore) Stats() map[string]any {
	stats := rs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
