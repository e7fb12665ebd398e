//go:build integration

package prompt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/promptcraft-backend/internal/adapter/mongo/prompt"
	"github.com/heartmarshall/promptcraft-backend/internal/adapter/mongo/testhelper"
	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

func newRepo(t *testing.T) *prompt.Repo {
	t.Helper()
	repo := prompt.New(testhelper.SetupCollection(t))
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func seed(t *testing.T, repo *prompt.Repo, userID string, tone domain.Tone, typ domain.PromptType, at time.Time) domain.PromptRecord {
	t.Helper()
	rec, err := repo.Create(context.Background(), domain.PromptRecord{
		UserID:          userID,
		OriginalPrompt:  "original text",
		RewrittenPrompt: "Rewritten text.",
		Tone:            tone,
		Type:            typ,
		CreatedAt:       at.UTC(),
		Metadata:        domain.PromptMetadata{ProcessingTime: 100, Model: "gemini", APICost: 0.002},
	})
	require.NoError(t, err)
	return rec
}

func TestRepo_Integration_RoundTripAndPagination(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	var last domain.PromptRecord
	for i := range 5 {
		last = seed(t, repo, "alice", domain.ToneFormal, domain.PromptTypeEmail, base.Add(time.Duration(i)*time.Minute))
	}
	seed(t, repo, "bob", domain.ToneFormal, domain.PromptTypeEmail, base)

	page := domain.NewPage(1, 2)
	records, total, err := repo.List(ctx, "alice", domain.HistoryFilter{}, page, domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, records, 2)
	assert.Equal(t, last.ID, records[0].ID, "newest first")
	assert.Equal(t, 2, records[0].Metadata.WordCount.Original)
	assert.True(t, domain.NewPagination(page, len(records), total).HasNext)

	page = domain.NewPage(3, 2)
	records, _, err = repo.List(ctx, "alice", domain.HistoryFilter{}, page, domain.DefaultSort)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.False(t, domain.NewPagination(page, len(records), total).HasNext)

	search := "REWRITTEN"
	_, total, err = repo.List(ctx, "alice", domain.HistoryFilter{Search: &search}, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
}

func TestRepo_Integration_FavoritesAndDelete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	rec := seed(t, repo, "alice", domain.ToneCasual, domain.PromptTypeOther, time.Now())
	favorites := domain.HistoryFilter{FavoritesOnly: true}

	toggled, err := repo.ToggleFavorite(ctx, rec.ID, "alice")
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	_, total, err := repo.List(ctx, "alice", favorites, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	toggled, err = repo.ToggleFavorite(ctx, rec.ID, "")
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	_, err = repo.ToggleFavorite(ctx, rec.ID, "mallory")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	deleted, err := repo.Delete(ctx, rec.ID, "mallory")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, rec.ID, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "not-an-object-id", "")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepo_Integration_StatsAndPopularity(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	now := time.Now()
	seed(t, repo, "alice", domain.ToneCasual, domain.PromptTypeReport, now)
	seed(t, repo, "alice", domain.ToneFormal, domain.PromptTypeEmail, now.Add(time.Second))
	seed(t, repo, "bob", domain.ToneFormal, domain.PromptTypeEmail, now)

	stats, err := repo.UserStats(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalPrompts)
	assert.Equal(t, domain.ToneCasual, stats.MostUsedTone, "oldest record wins, not the mode")
	assert.Equal(t, domain.PromptTypeReport, stats.MostUsedType)
	assert.InDelta(t, 100, stats.AvgProcessingTime, 1e-9)
	assert.InDelta(t, 0.004, stats.TotalAPICost, 1e-9)

	pop, err := repo.Popularity(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, pop.ToneStats)
	assert.Equal(t, "formal", pop.ToneStats[0].Value)
	assert.EqualValues(t, 2, pop.ToneStats[0].Count)
}
