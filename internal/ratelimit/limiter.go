// Package ratelimit decides whether a client may make another request.
// Local keeps per-key token buckets in memory; FixedWindow shares counters
// between replicas through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed bool
	// RetryAfter is how long the caller should wait when not allowed.
	RetryAfter time.Duration
}

// Limiter admits or rejects one request for key.
type Limiter interface {
	Allow(ctx context.Context, key string) Decision
}

func normalizeKey(key string) string {
	if key == "" {
		return "unknown"
	}
	return key
}
