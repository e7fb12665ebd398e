package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// Delete removes a record. With a non-empty UserID only the owner's record
// matches; a mismatch is reported as domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, input RecordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	id := strings.TrimSpace(input.ID)
	owner := strings.TrimSpace(input.UserID)

	deleted, err := s.store.Delete(ctx, id, owner)
	if err != nil {
		return fmt.Errorf("delete prompt record: %w", err)
	}
	if !deleted {
		return fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "prompt deleted", slog.String("prompt_id", id), slog.String("user_id", owner))
	return nil
}
