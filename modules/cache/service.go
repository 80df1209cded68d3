// Package cache provides the list cache used by the task service.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService defines the caching operations used by consumers.
type CacheService interface {
	// Get retrieves a value and unmarshals it into dest. Returns true
	// on a cache hit, false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores a JSON-marshaled value under key.
	Set(ctx context.Context, key string, value any) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connection.
	Close() error
}

// redisCache implements CacheService on a Redis client.
type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a CacheService backed by the given Redis client.
func New(client *redis.Client, prefix string, ttl time.Duration) CacheService {
	return &redisCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // cache miss
		}
		return false, fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal error: %w", err)
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// noopCache is used when no Redis address is configured; every Get is
// a miss and writes are discarded.
type noopCache struct{}

// NewNoop returns a CacheService that caches nothing.
func NewNoop() CacheService {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, any) error         { return nil }
func (noopCache) Delete(context.Context, string) error           { return nil }
func (noopCache) Close() error                                   { return nil }
