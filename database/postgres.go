package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"labisco_server/structs"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type kvEntry struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kv"`

	Key       string     `bun:"key,pk"`
	Value     string     `bun:"value,notnull"`
	ExpiresAt *time.Time `bun:"expires_at,nullzero"`
	UpdatedAt time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}

// PostgresStore keeps keys in a single kv_entries table.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(ctx context.Context, cfg *structs.PostgresConfig) (*PostgresStore, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Name),
		pgdriver.WithInsecure(!cfg.SSLMode),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(cfg.MaxConns)
	sqldb.SetConnMaxIdleTime(cfg.MaxIdleTime)

	store := &PostgresStore{db: bun.NewDB(sqldb, pgdialect.New())}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := store.migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.NewCreateTable().
		Model((*kvEntry)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}
	return nil
}

func (ps *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := WithRetry(ctx, func() error {
		return ps.db.NewSelect().
			Model(&entry).
			Where("key = ?", key).
			Where("(expires_at IS NULL OR expires_at > now())").
			Limit(1).
			Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (ps *PostgresStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	entry := &kvEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: expiry(ttl),
		UpdatedAt: time.Now(),
	}
	err := WithRetry(ctx, func() error {
		_, err := ps.db.NewInsert().
			Model(entry).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("expires_at = EXCLUDED.expires_at").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (ps *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return WithRetry(ctx, func() error {
		_, err := ps.db.NewDelete().
			Model((*kvEntry)(nil)).
			Where("key IN (?)", bun.In(keys)).
			Exec(ctx)
		return err
	})
}

const incrQuery = `
INSERT INTO kv_entries (key, value, expires_at, updated_at)
VALUES (?, '1', ?, now())
ON CONFLICT (key) DO UPDATE SET
	value = CASE
		WHEN kv_entries.expires_at IS NOT NULL AND kv_entries.expires_at <= now() THEN '1'
		ELSE (kv_entries.value::bigint + 1)::text
	END,
	expires_at = CASE
		WHEN kv_entries.expires_at IS NOT NULL AND kv_entries.expires_at <= now() THEN EXCLUDED.expires_at
		ELSE kv_entries.expires_at
	END,
	updated_at = now()
RETURNING value`

func (ps *PostgresStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var raw string
	err := WithRetry(ctx, func() error {
		return ps.db.QueryRowContext(ctx, incrQuery, key, expiry(ttl)).Scan(&raw)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment key %q: %w", key, err)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (ps *PostgresStore) Ping(ctx context.Context) error {
	return WithRetry(ctx, func() error {
		return ps.db.PingContext(ctx)
	})
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

func expiry(ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := time.Now().Add(ttl)
	return &t
}
