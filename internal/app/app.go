package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/promptcraft-backend/internal/config"
	"github.com/heartmarshall/promptcraft-backend/internal/observability"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
	"github.com/heartmarshall/promptcraft-backend/internal/service/rewrite"
	"github.com/heartmarshall/promptcraft-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// store and the AI provider, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("ai_provider", cfg.AI.Provider),
	)

	handler, cleanup, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ln, err := listen(cfg.Server.Addr())
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, cfg.Server, logger)
}

// build wires the store, the rewriter, the services and the router.
// cleanup releases everything build opened, in reverse order.
func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, closeStore, err := openStore(connectCtx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeStore)

	gen, err := newGenerator(ctx, cfg.AI, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	metrics := observability.NewMetrics()

	ai := rewriter.NewClient(logger, gen, rewriter.Options{
		Provider:        cfg.AI.Provider,
		Timeout:         cfg.AI.Timeout,
		CancelOnTimeout: cfg.AI.CancelOnTimeout,
		Recorder:        metrics,
	})
	status := ai.Status()
	logger.Info("rewriter ready",
		slog.Bool("available", status.Available),
		slog.String("model", status.Model),
		slog.String("timeout", status.Timeout),
	)

	historyService := history.NewService(logger, store)
	rewriteService := rewrite.NewService(logger, ai, historyService, cfg.Storage.SaveTimeout)

	lim, err := newLimiters(connectCtx, cfg.RateLimit, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	closers = append(closers, lim.close)

	deps := rest.RouterDeps{
		Config:         *cfg,
		Logger:         logger,
		Rewrite:        rest.NewRewriteHandler(rewriteService, logger),
		History:        rest.NewHistoryHandler(historyService, logger),
		Info:           rest.NewInfoHandler(ai, historyService, Version, logger),
		Health:         rest.NewHealthHandler(store, Version),
		GeneralLimiter: lim.general,
		RewriteLimiter: lim.rewrite,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics
	}

	return rest.NewRouter(deps), cleanup, nil
}
