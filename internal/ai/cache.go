// README: Redis-backed cache for the supplementary lookups (exchange rate, events).
package ai

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores best-effort lookup results so repeated wizard sessions for
// the same destination do not burn generation quota. Misses and storage
// failures are indistinguishable from "not cached".
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// RedisCache implements Cache on a shared Redis client.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	// Best effort; the lookup result is still returned to the caller.
	_ = c.client.Set(ctx, key, value, ttl).Err()
}
