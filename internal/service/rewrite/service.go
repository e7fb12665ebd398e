package rewrite

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

type aiClient interface {
	Rewrite(ctx context.Context, prompt string, tone domain.Tone, typ domain.PromptType) rewriter.Result
}

type historySaver interface {
	Save(ctx context.Context, input history.SaveInput) (*domain.PromptRecord, error)
}

// DefaultSaveTimeout bounds the history write that follows a rewrite.
const DefaultSaveTimeout = 5 * time.Second

// Service validates rewrite requests, calls the AI client and records
// results in the user's history.
type Service struct {
	ai          aiClient
	history     historySaver
	saveTimeout time.Duration
	log         *slog.Logger
}

// NewService creates a new rewrite service. A non-positive saveTimeout
// selects DefaultSaveTimeout.
func NewService(log *slog.Logger, ai aiClient, history historySaver, saveTimeout time.Duration) *Service {
	if saveTimeout <= 0 {
		saveTimeout = DefaultSaveTimeout
	}
	return &Service{
		ai:          ai,
		history:     history,
		saveTimeout: saveTimeout,
		log:         log.With("service", "rewrite"),
	}
}
