package rewrite

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

//go:generate moq -out ai_client_mock_test.go -pkg rewrite . aiClient
//go:generate moq -out history_saver_mock_test.go -pkg rewrite . historySaver

func okClient(text string) *aiClientMock {
	return &aiClientMock{
		RewriteFunc: func(_ context.Context, _ string, tone domain.Tone, typ domain.PromptType) rewriter.Result {
			return rewriter.Result{
				Success:         true,
				RewrittenPrompt: text,
				Metadata:        rewriter.Metadata{Model: "fake", Tone: tone, Type: typ, ProcessingTime: 42, APICost: 0.000002},
			}
		},
	}
}

func TestRewrite_DefaultsWithoutUser(t *testing.T) {
	t.Parallel()

	ai := okClient("Better.")
	saver := &historySaverMock{}
	svc := NewService(slog.Default(), ai, saver, 0)

	out, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: "  make it better  "})
	require.NoError(t, err)

	require.Len(t, ai.RewriteCalls(), 1)
	call := ai.RewriteCalls()[0]
	assert.Equal(t, "make it better", call.Prompt)
	assert.Equal(t, domain.ToneProfessional, call.Tone)
	assert.Equal(t, domain.PromptTypeOther, call.Typ)

	assert.Equal(t, "make it better", out.OriginalPrompt)
	assert.Equal(t, "Better.", out.RewrittenPrompt)
	assert.Equal(t, domain.ToneProfessional, out.Tone)
	assert.Equal(t, domain.PromptTypeOther, out.Type)
	assert.Nil(t, out.SavedToHistory)
	assert.Empty(t, out.HistoryID)
	assert.Empty(t, saver.SaveCalls())
}

func TestRewrite_SavesForUser(t *testing.T) {
	t.Parallel()

	saver := &historySaverMock{
		SaveFunc: func(_ context.Context, in history.SaveInput) (*domain.PromptRecord, error) {
			return &domain.PromptRecord{ID: "hist-1", UserID: in.UserID}, nil
		},
	}
	svc := NewService(slog.Default(), okClient("Dear team, ..."), saver, time.Second)

	out, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: "hi team", Tone: "formal", Type: "email", UserID: "user-1"})
	require.NoError(t, err)

	require.NotNil(t, out.SavedToHistory)
	assert.True(t, *out.SavedToHistory)
	assert.Equal(t, "hist-1", out.HistoryID)

	require.Len(t, saver.SaveCalls(), 1)
	in := saver.SaveCalls()[0].Input
	assert.Equal(t, "user-1", in.UserID)
	assert.Equal(t, "hi team", in.OriginalPrompt)
	assert.Equal(t, "Dear team, ...", in.RewrittenPrompt)
	assert.Equal(t, "formal", in.Tone)
	assert.Equal(t, "email", in.Type)
	require.NotNil(t, in.Metadata)
	assert.Equal(t, int64(42), in.Metadata.ProcessingTime)
	assert.Equal(t, "fake", in.Metadata.Model)
}

func TestRewrite_SaveFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	saver := &historySaverMock{
		SaveFunc: func(context.Context, history.SaveInput) (*domain.PromptRecord, error) {
			return nil, errors.New("store unavailable")
		},
	}
	svc := NewService(slog.Default(), okClient("Better."), saver, time.Second)

	out, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: "x", UserID: "user-1"})
	require.NoError(t, err)
	require.NotNil(t, out.SavedToHistory)
	assert.False(t, *out.SavedToHistory)
	assert.Empty(t, out.HistoryID)
	assert.Equal(t, "Better.", out.RewrittenPrompt)
}

func TestRewrite_SaveSurvivesCanceledRequest(t *testing.T) {
	t.Parallel()

	saver := &historySaverMock{
		SaveFunc: func(ctx context.Context, _ history.SaveInput) (*domain.PromptRecord, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &domain.PromptRecord{ID: "hist-2"}, nil
		},
	}
	ai := &aiClientMock{
		RewriteFunc: func(context.Context, string, domain.Tone, domain.PromptType) rewriter.Result {
			return rewriter.Result{Success: true, RewrittenPrompt: "ok"}
		},
	}
	svc := NewService(slog.Default(), ai, saver, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := svc.Rewrite(ctx, RewriteInput{Prompt: "x", UserID: "u"})
	require.NoError(t, err)
	assert.True(t, *out.SavedToHistory)
}

func TestRewrite_TooLongNeverCallsClient(t *testing.T) {
	t.Parallel()

	ai := &aiClientMock{}
	svc := NewService(slog.Default(), ai, &historySaverMock{}, 0)

	for _, n := range []int{5001, 6000, 20000} {
		_, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: strings.Repeat("a", n)})

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "prompt", ve.Errors[0].Field)
		assert.Equal(t, "max 5000 characters", ve.Errors[0].Message)
	}
	assert.Empty(t, ai.RewriteCalls())

	// Exactly at the limit is accepted.
	ai.RewriteFunc = okClient("ok").RewriteFunc
	_, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: strings.Repeat("a", 5000)})
	require.NoError(t, err)
}

func TestRewrite_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   RewriteInput
		field   string
		message string
	}{
		{"empty prompt", RewriteInput{Prompt: ""}, "prompt", "required"},
		{"blank prompt", RewriteInput{Prompt: " \n\t "}, "prompt", "required"},
		{"invalid tone", RewriteInput{Prompt: "x", Tone: "email"}, "tone", "must be one of: formal, casual, friendly, professional, creative, concise"},
		{"invalid type", RewriteInput{Prompt: "x", Type: "sonnet"}, "type", "must be one of: email, message, explanation, summary, proposal, report, other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ai := &aiClientMock{}
			svc := NewService(slog.Default(), ai, &historySaverMock{}, 0)

			_, err := svc.Rewrite(context.Background(), tt.input)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Equal(t, tt.message, ve.Errors[0].Message)
			assert.Empty(t, ai.RewriteCalls())
		})
	}
}

func TestRewrite_ClientFailure(t *testing.T) {
	t.Parallel()

	ai := &aiClientMock{
		RewriteFunc: func(context.Context, string, domain.Tone, domain.PromptType) rewriter.Result {
			return rewriter.Result{
				Error:     "AI service request timeout",
				ErrorType: domain.FailureTimeout,
				Details:   "request timeout after 30s",
				Fallback:  "Hello world.",
			}
		},
	}
	saver := &historySaverMock{}
	svc := NewService(slog.Default(), ai, saver, 0)

	_, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: "hello   world", UserID: "user-1"})

	var extErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, domain.FailureTimeout, extErr.Kind)
	assert.Equal(t, "Hello world.", extErr.Fallback)
	assert.Empty(t, saver.SaveCalls(), "failed rewrites are not saved")
}

func TestRewrite_WithRealClientInMockMode(t *testing.T) {
	t.Parallel()

	client := rewriter.NewClient(slog.Default(), nil, rewriter.Options{})
	svc := NewService(slog.Default(), client, &historySaverMock{}, 0)

	out, err := svc.Rewrite(context.Background(), RewriteInput{Prompt: "hello   world"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", out.RewrittenPrompt)
	assert.Equal(t, rewriter.MockModel, out.Metadata.Model)
}
