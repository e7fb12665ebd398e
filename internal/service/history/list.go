package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// ListResult is one page of records.
type ListResult struct {
	Records    []domain.PromptRecord
	Pagination domain.Pagination
}

// List returns a filtered, sorted page of the user's history.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.page(ctx, strings.TrimSpace(input.UserID), input.filter(),
		domain.NewPage(input.Page, input.Limit), domain.NewSort(input.SortBy, input.SortOrder))
}

// ListFavorites returns a sorted page of the user's favorite records.
func (s *Service) ListFavorites(ctx context.Context, input FavoritesInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.page(ctx, strings.TrimSpace(input.UserID), domain.HistoryFilter{FavoritesOnly: true},
		domain.NewPage(input.Page, input.Limit), domain.NewSort(input.SortBy, input.SortOrder))
}

func (s *Service) page(ctx context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) (*ListResult, error) {
	records, total, err := s.store.List(ctx, userID, filter, page, sort)
	if err != nil {
		return nil, fmt.Errorf("list prompt records: %w", err)
	}
	if records == nil {
		records = []domain.PromptRecord{}
	}

	return &ListResult{
		Records:    records,
		Pagination: domain.NewPagination(page, len(records), total),
	}, nil
}
