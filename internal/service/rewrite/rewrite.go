package rewrite

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

// RewriteOutput is the result of a successful rewrite.
// SavedToHistory is nil when no user id was given.
type RewriteOutput struct {
	OriginalPrompt  string
	RewrittenPrompt string
	Tone            domain.Tone
	Type            domain.PromptType
	Metadata        rewriter.Metadata
	HistoryID       string
	SavedToHistory  *bool
}

// Rewrite validates the input, rewrites the prompt and, when a user id is
// present, saves the result. A failed AI call returns an
// *domain.ExternalServiceError carrying the offline fallback. A failed save
// does not fail the rewrite.
func (s *Service) Rewrite(ctx context.Context, input RewriteInput) (*RewriteOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalized()
	tone, typ := in.tone(), in.promptType()

	res := s.ai.Rewrite(ctx, in.Prompt, tone, typ)
	if !res.Success {
		s.log.WarnContext(ctx, "rewrite failed",
			slog.String("error_type", res.ErrorType.String()),
			slog.String("details", res.Details),
		)
		return nil, res.Err()
	}

	out := &RewriteOutput{
		OriginalPrompt:  in.Prompt,
		RewrittenPrompt: res.RewrittenPrompt,
		Tone:            tone,
		Type:            typ,
		Metadata:        res.Metadata,
	}

	if in.UserID != "" {
		id, saved := s.save(ctx, in.UserID, out)
		out.HistoryID = id
		out.SavedToHistory = &saved
	}

	return out, nil
}

func (s *Service) save(ctx context.Context, userID string, out *RewriteOutput) (string, bool) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
	defer cancel()

	rec, err := s.history.Save(saveCtx, history.SaveInput{
		UserID:          userID,
		OriginalPrompt:  out.OriginalPrompt,
		RewrittenPrompt: out.RewrittenPrompt,
		Tone:            string(out.Tone),
		Type:            string(out.Type),
		Metadata: &history.MetadataInput{
			ProcessingTime: out.Metadata.ProcessingTime,
			Model:          out.Metadata.Model,
			APICost:        out.Metadata.APICost,
		},
	})
	if err != nil {
		s.log.ErrorContext(ctx, "save rewrite to history",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return "", false
	}
	return rec.ID, true
}
