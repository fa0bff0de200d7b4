package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisRateLimiter keeps one sorted set of request timestamps per key, so
// every instance shares the same budget.
type RedisRateLimiter struct {
	client *redis.Client
	config Config
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, config Config) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// Allow records the request and reports whether the window had room for it.
// Rejected requests are recorded too, so a client hammering the endpoint
// stays blocked until it backs off for a full window.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !l.config.Enabled() {
		return true, nil
	}

	now := l.now()
	redisKey := keyPrefix + key
	windowStart := now.Add(-l.config.Window).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: uuid.NewString()})
	pipe.Expire(ctx, redisKey, l.config.Window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(l.config.Limit), nil
}

// Reset forgets every request recorded for key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}
