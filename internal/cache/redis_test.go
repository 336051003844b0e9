package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewRedisCache(rdb, time.Hour, zerolog.Nop())
	ctx := context.Background()

	_, ok := c.Get(ctx, "classify:abc")
	assert.False(t, ok)

	c.Set(ctx, "classify:abc", `{"EQUIPMENT_TYPE": "ONT"}`)
	got, ok := c.Get(ctx, "classify:abc")
	require.True(t, ok)
	assert.Equal(t, `{"EQUIPMENT_TYPE": "ONT"}`, got)
	assert.Equal(t, time.Hour, srv.TTL("classify:abc"))

	srv.FastForward(2 * time.Hour)
	_, ok = c.Get(ctx, "classify:abc")
	assert.False(t, ok)
}

func TestRedisCacheFailureIsAMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewRedisCache(rdb, time.Hour, zerolog.Nop())

	srv.Close()
	_, ok := c.Get(context.Background(), "classify:abc")
	assert.False(t, ok)
}
