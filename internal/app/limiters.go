package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/promptcraft-backend/internal/config"
	"github.com/heartmarshall/promptcraft-backend/internal/ratelimit"
)

type limiters struct {
	general ratelimit.Limiter
	rewrite ratelimit.Limiter
	close   func()
}

// newLimiters builds the general and rewrite limiters. Without a Redis
// address the limits are enforced per process.
func newLimiters(ctx context.Context, cfg config.RateLimitConfig, logger *slog.Logger) (limiters, error) {
	if !cfg.Enabled {
		logger.Warn("rate limiting disabled")
		return limiters{close: func() {}}, nil
	}

	if cfg.RedisAddr == "" {
		general, err := ratelimit.NewLocal(cfg.RequestsPerWindow, cfg.Window)
		if err != nil {
			return limiters{}, err
		}
		rewrite, err := ratelimit.NewLocal(cfg.RewritePerWindow, cfg.Window)
		if err != nil {
			return limiters{}, err
		}
		return limiters{general: general, rewrite: rewrite, close: func() {}}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close", slog.String("error", err.Error()))
		}
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		closeFn()
		return limiters{}, fmt.Errorf("ratelimit: ping redis: %w", err)
	}

	general, err := ratelimit.NewFixedWindow(logger, rdb, cfg.Prefix, cfg.RequestsPerWindow, cfg.Window)
	if err != nil {
		closeFn()
		return limiters{}, err
	}
	rewrite, err := ratelimit.NewFixedWindow(logger, rdb, cfg.Prefix, cfg.RewritePerWindow, cfg.Window)
	if err != nil {
		closeFn()
		return limiters{}, err
	}

	logger.Info("rate limiting via redis", slog.String("addr", cfg.RedisAddr))
	return limiters{general: general, rewrite: rewrite, close: closeFn}, nil
}
