package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// UniqueUserID returns a user id that no other test shares, so tests can run
// against one database without cleaning up.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// SeedPrompt inserts a prompt owned by userID and returns it.
// createdAt orders seeded rows; pass a zero time for now.
func SeedPrompt(t *testing.T, pool *pgxpool.Pool, userID string, tone domain.Tone, typ domain.PromptType, createdAt time.Time) domain.PromptRecord {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	rec := domain.PromptRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		OriginalPrompt:  "original " + uuid.New().String()[:8],
		RewrittenPrompt: "rewritten text",
		Tone:            tone,
		Type:            typ,
		CreatedAt:       createdAt.UTC().Truncate(time.Microsecond),
		Metadata: domain.PromptMetadata{
			ProcessingTime: 120,
			Model:          "seed",
			APICost:        0.001,
		},
	}
	rec.RecountWords()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO prompts (id, user_id, original_prompt, rewritten_prompt, tone, type, is_favorite, created_at,
		                      word_count_original, word_count_rewritten, processing_time_ms, model, api_cost)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.UserID, rec.OriginalPrompt, rec.RewrittenPrompt, string(rec.Tone), string(rec.Type), rec.IsFavorite, rec.CreatedAt,
		rec.Metadata.WordCount.Original, rec.Metadata.WordCount.Rewritten, rec.Metadata.ProcessingTime, rec.Metadata.Model, rec.Metadata.APICost,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt insert: %v", err)
	}

	return rec
}
