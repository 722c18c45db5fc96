package cache

import (
	"context"
	"encoding/json"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// Entry is one cached rendering of a page.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store keeps rendered pages for a fixed window. There is no
// write-triggered invalidation: a page stays served as-is until its
// TTL runs out, even if the underlying data changed.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore is the default in-process store.
type MemoryStore struct {
	entries cmap.ConcurrentMap[string, memoryEntry]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: cmap.New[memoryEntry]()}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool) {
	e, ok := s.entries.Get(key)
	if !ok {
		return Entry{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.entries.Remove(key)
		return Entry{}, false
	}
	return e.entry, true
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	s.entries.Set(key, memoryEntry{entry: entry, expiresAt: time.Now().Add(ttl)})
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.entries.Clear()
	return nil
}

// RedisStore shares the cache between processes.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return Entry{}, false
	}
	var entry Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}
