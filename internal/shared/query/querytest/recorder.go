// Package querytest provides a query.Client for use case tests.
package querytest

import (
	"context"
	"sync"

	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

// Recorder runs every fetch (nothing is cached) and records the keys it saw.
// InvalidateErr, when set, is returned from Invalidate after recording.
type Recorder struct {
	InvalidateErr error

	mu          sync.Mutex
	fetched     []query.Key
	invalidated [][]query.Key
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Fetch(ctx context.Context, key query.Key, fn query.FetchFunc) ([]byte, error) {
	r.mu.Lock()
	r.fetched = append(r.fetched, key)
	r.mu.Unlock()
	return fn(ctx)
}

func (r *Recorder) Invalidate(_ context.Context, keys ...query.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, append([]query.Key(nil), keys...))
	return r.InvalidateErr
}

// Fetched returns the fetched keys in call order.
func (r *Recorder) Fetched() []query.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]query.Key(nil), r.fetched...)
}

// Invalidations returns one entry per Invalidate call.
func (r *Recorder) Invalidations() [][]query.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]query.Key(nil), r.invalidated...)
}

// InvalidatedKeys flattens every Invalidate call, in order.
func (r *Recorder) InvalidatedKeys() []query.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []query.Key
	for _, call := range r.invalidated {
		out = append(out, call...)
	}
	return out
}
