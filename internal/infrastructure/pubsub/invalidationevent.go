package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// InvalidationEvent tells other instances which query keys went stale.
// Keys travel in their encoded form.
type InvalidationEvent struct {
	Keys       []string `json:"keys"`
	InstanceID string   `json:"instance_id"`
	Timestamp  int64    `json:"timestamp"`
}

type InvalidationHandler func(ctx context.Context, keys []query.Key)

// RedisInvalidationBus carries query invalidations between instances over
// Redis Pub/Sub. Events published by this instance are not delivered back.
type RedisInvalidationBus struct {
	client     *redis.Client
	channel    string
	instanceID string
	logger     logger.Interface
}

func NewRedisInvalidationBus(client *redis.Client, channel string, logger logger.Interface) *RedisInvalidationBus {
	return &RedisInvalidationBus{
		client:     client,
		channel:    channel,
		instanceID: uuid.NewString(),
		logger:     logger,
	}
}

func (b *RedisInvalidationBus) PublishInvalidation(ctx context.Context, keys []query.Key) error {
	event := InvalidationEvent{
		Keys:       make([]string, len(keys)),
		InstanceID: b.instanceID,
		Timestamp:  biztime.NowUTC().Unix(),
	}
	for i, k := range keys {
		event.Keys[i] = k.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal invalidation event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish invalidation event: %w", err)
	}
	b.logger.Debugw("query invalidation published", "keys", event.Keys)
	return nil
}

// Subscribe blocks, delivering remote invalidations to handler, until ctx is
// cancelled. Dropped connections are retried with exponential backoff.
func (b *RedisInvalidationBus) Subscribe(ctx context.Context, handler InvalidationHandler) error {
	backoff := time.Second
	const maxBackoff = 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.logger.Warnw("invalidation subscription disconnected, reconnecting",
			"channel", b.channel,
			"error", err,
			"backoff", backoff,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisInvalidationBus) subscribe(ctx context.Context, handler InvalidationHandler) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", b.channel, err)
	}
	b.logger.Infow("subscribed to query invalidation channel", "channel", b.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.dispatch(ctx, msg.Payload, handler)
		}
	}
}

func (b *RedisInvalidationBus) dispatch(ctx context.Context, payload string, handler InvalidationHandler) {
	var event InvalidationEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.logger.Warnw("failed to unmarshal invalidation event", "payload", payload, "error", err)
		return
	}
	if event.InstanceID == b.instanceID {
		return
	}

	keys := make([]query.Key, 0, len(event.Keys))
	for _, s := range event.Keys {
		k, err := query.ParseKey(s)
		if err != nil {
			b.logger.Warnw("skipping malformed invalidation key", "key", s, "error", err)
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) > 0 {
		handler(ctx, keys)
	}
}
