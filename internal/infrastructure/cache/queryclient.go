package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// InvalidationPublisher fans local invalidations out to other instances.
type InvalidationPublisher interface {
	PublishInvalidation(ctx context.Context, keys []query.Key) error
}

// QueryClient implements query.Client over a QueryStore.
type QueryClient struct {
	store     QueryStore
	group     singleflight.Group
	staleTime time.Duration
	publisher InvalidationPublisher
	logger    logger.Interface

	// epoch advances on every local invalidation. A fetch that started in an
	// older epoch returns its data without caching it.
	epochMu sync.RWMutex
	epoch   uint64
}

var _ query.Client = (*QueryClient)(nil)

// NewQueryClient creates a client whose entries expire after staleTime
// unless invalidated first. staleTime <= 0 disables expiry.
func NewQueryClient(store QueryStore, staleTime time.Duration, logger logger.Interface) *QueryClient {
	return &QueryClient{
		store:     store,
		staleTime: staleTime,
		logger:    logger,
	}
}

// SetPublisher enables cross-instance invalidation.
func (c *QueryClient) SetPublisher(p InvalidationPublisher) {
	c.publisher = p
}

// Publishers fans one invalidation out to several publishers. Every
// publisher is tried; the errors are joined.
type Publishers []InvalidationPublisher

func (ps Publishers) PublishInvalidation(ctx context.Context, keys []query.Key) error {
	var errs []error
	for _, p := range ps {
		if err := p.PublishInvalidation(ctx, keys); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *QueryClient) Fetch(ctx context.Context, key query.Key, fn query.FetchFunc) ([]byte, error) {
	encoded := key.String()

	if data, ok, err := c.store.Get(ctx, encoded); err != nil {
		// A broken cache degrades to direct reads.
		c.logger.Warnw("query cache read failed", "key", encoded, "error", err)
	} else if ok {
		return data, nil
	}

	v, err, shared := c.group.Do(encoded, func() (interface{}, error) {
		started := c.currentEpoch()
		data, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(ctx, encoded, data, started)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debugw("query fetch deduplicated", "key", encoded)
	}
	return v.([]byte), nil
}

func (c *QueryClient) currentEpoch() uint64 {
	c.epochMu.RLock()
	defer c.epochMu.RUnlock()
	return c.epoch
}

// storeIfCurrent caches data unless an invalidation happened since started.
// The read lock is held across Set so an invalidation either waits for the
// write and then deletes it, or bumps the epoch first and the write is
// skipped.
func (c *QueryClient) storeIfCurrent(ctx context.Context, encoded string, data []byte, started uint64) {
	c.epochMu.RLock()
	defer c.epochMu.RUnlock()
	if c.epoch != started {
		c.logger.Debugw("query result not cached, invalidated during fetch", "key", encoded)
		return
	}
	if err := c.store.Set(ctx, encoded, data, c.staleTime); err != nil {
		c.logger.Warnw("query cache write failed", "key", encoded, "error", err)
	}
}

// Invalidate drops each distinct key and its extensions, then tells other
// instances to do the same.
func (c *QueryClient) Invalidate(ctx context.Context, keys ...query.Key) error {
	keys = query.Unique(keys)
	if err := c.invalidateLocal(ctx, keys); err != nil {
		return err
	}
	if c.publisher != nil && len(keys) > 0 {
		if err := c.publisher.PublishInvalidation(ctx, keys); err != nil {
			c.logger.Warnw("failed to publish query invalidation", "error", err)
		}
	}
	return nil
}

// ApplyRemoteInvalidation handles an invalidation received from another
// instance without publishing it again.
func (c *QueryClient) ApplyRemoteInvalidation(ctx context.Context, keys []query.Key) {
	if err := c.invalidateLocal(ctx, query.Unique(keys)); err != nil {
		c.logger.Warnw("failed to apply remote invalidation", "error", err)
	}
}

func (c *QueryClient) invalidateLocal(ctx context.Context, keys []query.Key) error {
	if len(keys) == 0 {
		return nil
	}
	c.epochMu.Lock()
	c.epoch++
	c.epochMu.Unlock()

	var errs []error
	for _, k := range keys {
		encoded := k.String()
		c.group.Forget(encoded)
		if err := c.store.Delete(ctx, encoded); err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", encoded, err))
		}
	}
	return errors.Join(errs...)
}
