package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs session state with redis so conversations survive
// process restarts
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed store and verifies connectivity
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// Set stores a key-value pair with expiration
func (rs *RedisStore) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return rs.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}

// Close releases the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// MemoryBackend adapts the in-process MemoryStore to the context-aware
// backend shape, for running without redis
type MemoryBackend struct {
	store *MemoryStore
}

// NewMemoryBackend wraps a MemoryStore
func NewMemoryBackend(store *MemoryStore) *MemoryBackend {
	return &MemoryBackend{store: store}
}

// Set stores a key-value pair with expiration
func (mb *MemoryBackend) Set(_ context.Context, key, value string, expiration time.Duration) error {
	mb.store.Set(key, value, expiration)
	return nil
}

// Get retrieves a value by key
func (mb *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := mb.store.Get(key)
	return value, ok, nil
}

// Delete removes a key
func (mb *MemoryBackend) Delete(_ context.Context, key string) error {
	mb.store.Delete(key)
	return nil
}
