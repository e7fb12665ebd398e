package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// Save persists a rewrite. Missing tone and type get their defaults.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.PromptRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalized()

	rec := domain.PromptRecord{
		UserID:          in.UserID,
		OriginalPrompt:  in.OriginalPrompt,
		RewrittenPrompt: in.RewrittenPrompt,
		Tone:            domain.DefaultTone,
		Type:            domain.DefaultPromptType,
		CreatedAt:       s.now(),
	}
	if in.Tone != "" {
		rec.Tone = domain.Tone(in.Tone)
	}
	if in.Type != "" {
		rec.Type = domain.PromptType(in.Type)
	}
	if in.Metadata != nil {
		rec.Metadata.ProcessingTime = in.Metadata.ProcessingTime
		rec.Metadata.Model = in.Metadata.Model
		rec.Metadata.APICost = in.Metadata.APICost
	}
	rec.RecountWords()

	created, err := s.store.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("create prompt record: %w", err)
	}

	s.log.InfoContext(ctx, "prompt saved",
		slog.String("user_id", created.UserID),
		slog.String("prompt_id", created.ID),
		slog.String("tone", string(created.Tone)),
		slog.String("type", string(created.Type)),
	)

	return &created, nil
}
