package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const rollupKeyPrefix = "rollup:"

// RollupCache stores serialized analytics rollups with a short TTL.
// It fails safe: a missing key, a down Redis, or any other error all look
// like a cache miss, so analytics degrade to recomputation, never to a
// request failure.
type RollupCache struct {
	client *redis.Client
}

// NewRollupCache creates a RollupCache wrapping the given Redis client.
// A nil client yields a cache that always misses.
func NewRollupCache(client *redis.Client) *RollupCache {
	return &RollupCache{client: client}
}

// Get returns the cached payload or (nil, nil) on miss or error.
func (c *RollupCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, rollupKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}
	return raw, nil
}

// Set stores the payload with the given TTL, ignoring Redis errors.
func (c *RollupCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, rollupKeyPrefix+key, value, ttl).Err()
	return nil
}
