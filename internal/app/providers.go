package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/promptcraft-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/promptcraft-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/promptcraft-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/promptcraft-backend/internal/config"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
)

// newGenerator builds the configured provider. A missing or malformed key is
// not an error, and neither is a provider that fails to initialize: both
// return a nil Generator and the rewriter runs in mock mode for the life of
// the process.
func newGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (rewriter.Generator, error) {
	return startProvider(ctx, cfg, logger, buildProvider)
}

type providerBuilder func(ctx context.Context, cfg config.AIConfig) (rewriter.Generator, error)

func startProvider(ctx context.Context, cfg config.AIConfig, logger *slog.Logger, build providerBuilder) (rewriter.Generator, error) {
	var valid bool
	switch cfg.Provider {
	case config.ProviderGemini:
		valid = gemini.ValidKey(cfg.APIKey)
	case config.ProviderOpenAI:
		valid = openai.ValidKey(cfg.APIKey)
	case config.ProviderAnthropic:
		valid = anthropic.ValidKey(cfg.APIKey)
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}

	if !valid {
		logger.Warn("ai api key missing or malformed, using offline rewrites",
			slog.String("provider", cfg.Provider),
		)
		return nil, nil
	}

	gen, err := build(ctx, cfg)
	if err != nil {
		logger.Warn("ai provider initialization failed, using offline rewrites",
			slog.String("provider", cfg.Provider),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}
	return gen, nil
}

// buildProvider returns explicit interface values so a failed constructor
// never yields a typed nil.
func buildProvider(ctx context.Context, cfg config.AIConfig) (rewriter.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		g, err := gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderOpenAI:
		g, err := openai.New(openai.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		g, err := anthropic.New(anthropic.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
