package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

type promptStore interface {
	Create(ctx context.Context, rec domain.PromptRecord) (domain.PromptRecord, error)
	List(ctx context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) ([]domain.PromptRecord, int64, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	ToggleFavorite(ctx context.Context, id, ownerID string) (domain.PromptRecord, error)
	UserStats(ctx context.Context, userID string) (domain.UserStats, error)
	Popularity(ctx context.Context) (domain.Popularity, error)
}

// RecentActivityLimit is the number of records returned with user stats.
const RecentActivityLimit = 5

// Service manages the persisted rewrite history.
type Service struct {
	store promptStore
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new history service.
func NewService(log *slog.Logger, store promptStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "history"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}
