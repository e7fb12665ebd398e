//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	rec := SeedPrompt(t, pool, UniqueUserID(), domain.ToneFormal, domain.PromptTypeEmail, time.Time{})

	var userID string
	err := pool.QueryRow(
		context.Background(),
		`SELECT user_id FROM prompts WHERE id = $1`,
		rec.ID,
	).Scan(&userID)
	if err != nil {
		t.Fatalf("expected prompt in DB, got error: %v", err)
	}

	if userID != rec.UserID {
		t.Fatalf("expected user_id %q, got %q", rec.UserID, userID)
	}
}
