package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisCache stores responses in Redis with a TTL.
type RedisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a Redis-backed cache.
func NewRedisCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, treating as miss")
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.rdb.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
