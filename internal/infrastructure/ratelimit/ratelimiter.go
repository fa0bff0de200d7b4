// Package ratelimit counts requests per key over a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Limiter reports whether one more request for key fits in the window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Limit  int
	Window time.Duration
}

// Enabled is false when either bound is unset; such a limiter allows
// everything.
func (c Config) Enabled() bool {
	return c.Limit > 0 && c.Window > 0
}
