package database

import (
	"context"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore is a process-local KVStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (ms *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[key]
	if !ok {
		return "", false, nil
	}
	if entry.expired(ms.now()) {
		delete(ms.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (ms *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = ms.now().Add(ttl)
	}
	ms.entries[key] = entry
	return nil
}

func (ms *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, key := range keys {
		delete(ms.entries, key)
	}
	return nil
}

func (ms *MemoryStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	entry, ok := ms.entries[key]
	if !ok || entry.expired(now) {
		entry = memoryEntry{value: "0"}
		if ttl > 0 {
			entry.expiresAt = now.Add(ttl)
		}
	}

	count, err := strconv.ParseInt(entry.value, 10, 64)
	if err != nil {
		return 0, err
	}
	count++
	entry.value = strconv.FormatInt(count, 10)
	ms.entries[key] = entry
	return count, nil
}

func (ms *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (ms *MemoryStore) Close() error {
	return nil
}
