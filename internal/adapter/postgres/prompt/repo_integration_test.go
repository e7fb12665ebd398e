//go:build integration

package prompt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/promptcraft-backend/internal/adapter/postgres/prompt"
	"github.com/heartmarshall/promptcraft-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

func TestRepo_Integration_CreateListRoundTrip(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := prompt.New(pool)
	ctx := context.Background()
	userID := testhelper.UniqueUserID()

	created, err := repo.Create(ctx, domain.PromptRecord{
		UserID:          userID,
		OriginalPrompt:  "please fix this",
		RewrittenPrompt: "Please fix this.",
		Tone:            domain.ToneFormal,
		Type:            domain.PromptTypeEmail,
		CreatedAt:       time.Now().UTC(),
		Metadata:        domain.PromptMetadata{ProcessingTime: 42, Model: "gemini", APICost: 0.0001},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 3, created.Metadata.WordCount.Original)

	records, total, err := repo.List(ctx, userID, domain.HistoryFilter{}, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, created.ID, records[0].ID)
	assert.Equal(t, "please fix this", records[0].OriginalPrompt)
}

func TestRepo_Integration_FiltersAndPagination(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := prompt.New(pool)
	ctx := context.Background()
	userID := testhelper.UniqueUserID()

	base := time.Now().Add(-time.Hour)
	for i := range 7 {
		tone := domain.ToneCasual
		if i%2 == 0 {
			tone = domain.ToneFormal
		}
		testhelper.SeedPrompt(t, pool, userID, tone, domain.PromptTypeOther, base.Add(time.Duration(i)*time.Minute))
	}

	page := domain.NewPage(2, 3)
	records, total, err := repo.List(ctx, userID, domain.HistoryFilter{}, page, domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, records, 3)
	assert.True(t, domain.NewPagination(page, len(records), total).HasNext)
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))

	formal := domain.ToneFormal
	records, total, err = repo.List(ctx, userID, domain.HistoryFilter{Tone: &formal}, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, records, 4)

	search := "REWRITTEN"
	_, total, err = repo.List(ctx, userID, domain.HistoryFilter{Search: &search}, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total, "search is case-insensitive")
}

func TestRepo_Integration_ToggleFavoriteTwice(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := prompt.New(pool)
	ctx := context.Background()
	userID := testhelper.UniqueUserID()

	rec := testhelper.SeedPrompt(t, pool, userID, domain.ToneFormal, domain.PromptTypeOther, time.Time{})
	favorites := domain.HistoryFilter{FavoritesOnly: true}

	toggled, err := repo.ToggleFavorite(ctx, rec.ID, userID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	_, total, err := repo.List(ctx, userID, favorites, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	toggled, err = repo.ToggleFavorite(ctx, rec.ID, "")
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	_, total, err = repo.List(ctx, userID, favorites, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRepo_Integration_OwnerScopedDelete(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := prompt.New(pool)
	ctx := context.Background()
	userID := testhelper.UniqueUserID()

	rec := testhelper.SeedPrompt(t, pool, userID, domain.ToneFormal, domain.PromptTypeOther, time.Time{})

	deleted, err := repo.Delete(ctx, rec.ID, "someone-else")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, total, err := repo.List(ctx, userID, domain.HistoryFilter{}, domain.NewPage(1, 10), domain.DefaultSort)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total, "record must survive a mismatched owner")

	_, err = repo.ToggleFavorite(ctx, rec.ID, "someone-else")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	deleted, err = repo.Delete(ctx, rec.ID, userID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRepo_Integration_UserStats(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := prompt.New(pool)
	ctx := context.Background()
	userID := testhelper.UniqueUserID()

	base := time.Now().Add(-time.Hour)
	testhelper.SeedPrompt(t, pool, userID, domain.ToneCasual, domain.PromptTypeReport, base)
	testhelper.SeedPrompt(t, pool, userID, domain.ToneFormal, domain.PromptTypeEmail, base.Add(time.Minute))
	testhelper.SeedPrompt(t, pool, userID, domain.ToneFormal, domain.PromptTypeEmail, base.Add(2*time.Minute))

	stats, err := repo.UserStats(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalPrompts)
	assert.Equal(t, domain.ToneCasual, stats.MostUsedTone, "first record wins, not the mode")
	assert.Equal(t, domain.PromptTypeReport, stats.MostUsedType)
	assert.InDelta(t, 120, stats.AvgProcessingTime, 1e-9)
	assert.InDelta(t, 0.003, stats.TotalAPICost, 1e-9)

	empty, err := repo.UserStats(ctx, testhelper.UniqueUserID())
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPrompts)
}
