package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Local is an in-process limiter allowing limit requests per window per key,
// refilled continuously. Idle keys are swept lazily.
type Local struct {
	every time.Duration
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*localBucket
	lastSweep time.Time
}

type localBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewLocal creates an in-memory limiter.
func NewLocal(limit int, window time.Duration) (*Local, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	return &Local{
		every:   window / time.Duration(limit),
		burst:   limit,
		idle:    window,
		now:     time.Now,
		buckets: make(map[string]*localBucket),
	}, nil
}

// Allow takes one token from key's bucket.
func (l *Local) Allow(_ context.Context, key string) Decision {
	key = normalizeKey(key)
	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{lim: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	l.mu.Unlock()

	r := b.lim.ReserveN(now, 1)
	if !r.OK() {
		return Decision{RetryAfter: l.idle}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{RetryAfter: delay}
	}
	return Decision{Allowed: true}
}

// Len reports how many keys are tracked.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep drops buckets idle for a full window; a refilled bucket is
// indistinguishable from a new one. Caller holds mu.
func (l *Local) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.seen) >= l.idle {
			delete(l.buckets, k)
		}
	}
	l.lastSweep = now
}
