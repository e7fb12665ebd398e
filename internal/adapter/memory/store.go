// Package memory implements the prompt history store in process memory.
// It is used for local development and tests; data does not survive a restart.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// Store keeps prompt records in insertion order.
type Store struct {
	mu      sync.RWMutex
	records []domain.PromptRecord
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

func (s *Store) Ping(context.Context) error { return nil }

// Create assigns an id and stores a copy of rec.
func (s *Store) Create(_ context.Context, rec domain.PromptRecord) (domain.PromptRecord, error) {
	rec.ID = uuid.NewString()
	rec.RecountWords()

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	return rec, nil
}

// List returns the requested page of a user's matching records and the total
// number of matches.
func (s *Store) List(_ context.Context, userID string, filter domain.HistoryFilter, page domain.Page, sort domain.Sort) ([]domain.PromptRecord, int64, error) {
	s.mu.RLock()
	matched := make([]domain.PromptRecord, 0)
	for _, r := range s.records {
		if r.UserID == userID && matches(r, filter) {
			matched = append(matched, r)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(matched, func(a, b domain.PromptRecord) int {
		c := compare(a, b, sort.By)
		if sort.Descending {
			return -c
		}
		return c
	})

	total := int64(len(matched))
	start := min(page.Skip(), len(matched))
	end := min(start+page.Limit, len(matched))
	return matched[start:end], total, nil
}

// Delete removes the record with id, restricted to ownerID when it is set.
func (s *Store) Delete(_ context.Context, id, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id, ownerID)
	if i < 0 {
		return false, nil
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true, nil
}

// ToggleFavorite flips the favorite flag of the record with id.
func (s *Store) ToggleFavorite(_ context.Context, id, ownerID string) (domain.PromptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id, ownerID)
	if i < 0 {
		return domain.PromptRecord{}, fmt.Errorf("prompt %s: %w", id, domain.ErrNotFound)
	}
	s.records[i].IsFavorite = !s.records[i].IsFavorite
	return s.records[i], nil
}

// UserStats aggregates a user's records. The most used tone and type are
// those of the first stored record.
func (s *Store) UserStats(_ context.Context, userID string) (domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		st        domain.UserStats
		totalTime int64
	)
	for _, r := range s.records {
		if r.UserID != userID {
			continue
		}
		if st.TotalPrompts == 0 {
			st.MostUsedTone = r.Tone
			st.MostUsedType = r.Type
		}
		st.TotalPrompts++
		if r.IsFavorite {
			st.FavoritePrompts++
		}
		totalTime += r.Metadata.ProcessingTime
		st.TotalAPICost += r.Metadata.APICost
	}
	if st.TotalPrompts > 0 {
		st.AvgProcessingTime = float64(totalTime) / float64(st.TotalPrompts)
	}
	return st, nil
}

// Popularity counts tones and types across all users.
func (s *Store) Popularity(context.Context) (domain.Popularity, error) {
	tones := map[string]int64{}
	types := map[string]int64{}

	s.mu.RLock()
	for _, r := range s.records {
		tones[string(r.Tone)]++
		types[string(r.Type)]++
	}
	s.mu.RUnlock()

	return domain.Popularity{ToneStats: ranked(tones), TypeStats: ranked(types)}, nil
}

func (s *Store) indexOf(id, ownerID string) int {
	return slices.IndexFunc(s.records, func(r domain.PromptRecord) bool {
		return r.ID == id && (ownerID == "" || r.UserID == ownerID)
	})
}

func matches(r domain.PromptRecord, f domain.HistoryFilter) bool {
	if f.FavoritesOnly && !r.IsFavorite {
		return false
	}
	if f.Type != nil && r.Type != *f.Type {
		return false
	}
	if f.Tone != nil && r.Tone != *f.Tone {
		return false
	}
	if f.Search != nil {
		q := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(r.OriginalPrompt), q) &&
			!strings.Contains(strings.ToLower(r.RewrittenPrompt), q) {
			return false
		}
	}
	return true
}

func compare(a, b domain.PromptRecord, by domain.SortField) int {
	switch by {
	case domain.SortByOriginalPrompt:
		return cmp.Compare(a.OriginalPrompt, b.OriginalPrompt)
	case domain.SortByRewrittenPrompt:
		return cmp.Compare(a.RewrittenPrompt, b.RewrittenPrompt)
	case domain.SortByTone:
		return cmp.Compare(a.Tone, b.Tone)
	case domain.SortByType:
		return cmp.Compare(a.Type, b.Type)
	case domain.SortByUserID:
		return cmp.Compare(a.UserID, b.UserID)
	case domain.SortByIsFavorite:
		return cmp.Compare(boolRank(a.IsFavorite), boolRank(b.IsFavorite))
	case domain.SortByProcessingTime:
		return cmp.Compare(a.Metadata.ProcessingTime, b.Metadata.ProcessingTime)
	case domain.SortByAPICost:
		return cmp.Compare(a.Metadata.APICost, b.Metadata.APICost)
	case domain.SortByModel:
		return cmp.Compare(a.Metadata.Model, b.Metadata.Model)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func ranked(counts map[string]int64) []domain.CategoryCount {
	out := make([]domain.CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, domain.CategoryCount{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}
