package history

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// StatsResult holds a user's aggregates and latest records.
type StatsResult struct {
	Stats          domain.UserStats
	RecentActivity []domain.PromptRecord
}

// Stats returns aggregates over all of the user's records together with the
// most recent ones.
func (s *Service) Stats(ctx context.Context, userID string) (*StatsResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.NewValidationError("userId", "required")
	}

	var (
		stats  domain.UserStats
		recent []domain.PromptRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.store.UserStats(gctx, userID)
		if err != nil {
			return fmt.Errorf("user stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, _, err = s.store.List(gctx, userID, domain.HistoryFilter{},
			domain.NewPage(1, RecentActivityLimit), domain.DefaultSort)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []domain.PromptRecord{}
	}
	return &StatsResult{Stats: stats, RecentActivity: recent}, nil
}

// Popularity returns global tone and type usage counts.
func (s *Service) Popularity(ctx context.Context) (domain.Popularity, error) {
	p, err := s.store.Popularity(ctx)
	if err != nil {
		return domain.Popularity{}, fmt.Errorf("popularity: %w", err)
	}
	if p.ToneStats == nil {
		p.ToneStats = []domain.CategoryCount{}
	}
	if p.TypeStats == nil {
		p.TypeStats = []domain.CategoryCount{}
	}
	return p, nil
}
