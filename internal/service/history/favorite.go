package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// ToggleFavorite flips the favorite flag of a record and returns the result.
func (s *Service) ToggleFavorite(ctx context.Context, input RecordInput) (*domain.PromptRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)

	rec, err := s.store.ToggleFavorite(ctx, id, strings.TrimSpace(input.UserID))
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite toggled",
		slog.String("prompt_id", rec.ID),
		slog.Bool("is_favorite", rec.IsFavorite),
	)
	return &rec, nil
}
