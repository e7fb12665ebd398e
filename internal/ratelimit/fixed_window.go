package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

const redisCallTimeout = 2 * time.Second

// FixedWindow limits requests per key in fixed windows counted in Redis, so
// every replica shares the same quota.
type FixedWindow struct {
	log    *slog.Logger
	rdb    redis.Scripter
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewFixedWindow creates a Redis-backed limiter.
func NewFixedWindow(log *slog.Logger, rdb redis.Scripter, prefix string, limit int, window time.Duration) (*FixedWindow, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	if rdb == nil {
		return nil, errors.New("rate limiter redis client is required")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &FixedWindow{
		log:    log,
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}, nil
}

// Allow counts one request for key in the current window.
// On Redis failures it fails closed.
func (l *FixedWindow) Allow(ctx context.Context, key string) Decision {
	key = normalizeKey(key)

	windowMs := l.window.Milliseconds()
	nowMs := l.now().UTC().UnixMilli()
	slot := nowMs / windowMs
	retry := time.Duration(windowMs-nowMs%windowMs) * time.Millisecond

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisCallTimeout)
	defer cancel()

	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)
	count, err := fixedWindowScript.Run(ctx, l.rdb, []string{redisKey}, windowMs).Int64()
	if err != nil {
		l.log.WarnContext(ctx, "rate limiter redis call failed", slog.String("error", err.Error()))
		return Decision{RetryAfter: retry}
	}
	if count > int64(l.limit) {
		return Decision{RetryAfter: retry}
	}
	return Decision{Allowed: true}
}
