package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisRateLimiter_Allow_WithinLimit(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), Config{Limit: 5, Window: time.Minute})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "ip:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_Allow_KeysAreIndependent(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), Config{Limit: 1, Window: time.Minute})
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "ip:a")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "ip:b")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "ip:a")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisRateLimiter_Allow_WindowSlides(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), Config{Limit: 2, Window: time.Minute})
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "ip:c")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "ip:c")
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return base.Add(2 * time.Minute) }
	allowed, err = limiter.Allow(ctx, "ip:c")
	require.NoError(t, err)
	assert.True(t, allowed, "requests older than the window no longer count")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), Config{Limit: 1, Window: time.Minute})
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "ip:d")
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "ip:d"))

	allowed, err := limiter.Allow(ctx, "ip:d")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DisabledConfigAllowsEverything(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t), Config{})

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(context.Background(), "ip:e")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
