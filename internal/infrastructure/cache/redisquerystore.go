package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 200

// RedisQueryStore keeps query results in Redis so every instance shares one
// cache. Keys are stored as prefix + encoded query key.
type RedisQueryStore struct {
	client *redis.Client
	prefix string
}

func NewRedisQueryStore(client *redis.Client, prefix string) *RedisQueryStore {
	return &RedisQueryStore{client: client, prefix: prefix}
}

func (s *RedisQueryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get query result from redis: %w", err)
	}
	return data, true, nil
}

func (s *RedisQueryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.buildKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store query result in redis: %w", err)
	}
	return nil
}

// Delete removes the key itself and scans for its extensions. Encoded keys
// contain no glob metacharacters, so the match pattern needs no escaping.
func (s *RedisQueryStore) Delete(ctx context.Context, key string) error {
	full := s.buildKey(key)
	if err := s.client.Del(ctx, full).Err(); err != nil {
		return fmt.Errorf("failed to delete query result from redis: %w", err)
	}

	iter := s.client.Scan(ctx, 0, full+"/*", scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete query results from redis: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan query results in redis: %w", err)
	}
	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete query results from redis: %w", err)
		}
	}
	return nil
}

func (s *RedisQueryStore) buildKey(key string) string {
	return s.prefix + key
}
