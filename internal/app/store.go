package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/promptcraft-backend/internal/adapter/memory"
	mongoadapter "github.com/heartmarshall/promptcraft-backend/internal/adapter/mongo"
	mongoprompt "github.com/heartmarshall/promptcraft-backend/internal/adapter/mongo/prompt"
	"github.com/heartmarshall/promptcraft-backend/internal/adapter/postgres"
	pgprompt "github.com/heartmarshall/promptcraft-backend/internal/adapter/postgres/prompt"
	"github.com/heartmarshall/promptcraft-backend/internal/config"
	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

// promptStore is the persistence surface shared by every storage driver.
type promptStore interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, rec domain.PromptRecord) (domain.PromptRecord, error)
	List(ctx context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) ([]domain.PromptRecord, int64, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	ToggleFavorite(ctx context.Context, id, ownerID string) (domain.PromptRecord, error)
	UserStats(ctx context.Context, userID string) (domain.UserStats, error)
	Popularity(ctx context.Context) (domain.Popularity, error)
}

// openStore connects the configured storage driver. The returned close
// function releases its connections.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (promptStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := mongoadapter.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("mongo disconnect", slog.String("error", err.Error()))
			}
		}

		repo := mongoprompt.New(mongoadapter.Collection(client, cfg.Mongo))
		if err := repo.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}

		logger.Info("mongo connected",
			slog.String("database", cfg.Mongo.Database),
			slog.String("collection", cfg.Mongo.Collection),
		)
		return repo, closeFn, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, logger, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pgprompt.New(pool), pool.Close, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store, history is lost on restart")
		return memory.New(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}
}

// OpenHistory connects the configured store and returns a history service
// over it, for tools that run outside the HTTP server.
func OpenHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*history.Service, func(), error) {
	store, closeFn, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return history.NewService(logger, store), closeFn, nil
}
