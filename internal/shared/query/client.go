package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// FetchFunc loads the encoded data for one key from the store of record.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Client serves reads from a cache and drops entries on invalidation.
// Concurrent Fetch calls for the same key share one FetchFunc call. A failed
// fetch is returned as is and not cached; there are no retries.
type Client interface {
	Fetch(ctx context.Context, key Key, fn FetchFunc) ([]byte, error)
	Invalidate(ctx context.Context, keys ...Key) error
}

// Get is the typed form of Client.Fetch. Values travel through the cache as
// JSON, so T must round-trip through encoding/json.
func Get[T any](ctx context.Context, c Client, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	data, err := c.Fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return out, nil
}

// InvalidateAfterWrite invalidates keys once a write has committed. The write
// stands either way, so a failure is logged rather than returned.
func InvalidateAfterWrite(ctx context.Context, c Client, log logger.Interface, keys ...Key) {
	if err := c.Invalidate(ctx, keys...); err != nil {
		log.Warnw("query invalidation failed", "keys", fmt.Sprint(keys), "error", err)
	}
}
