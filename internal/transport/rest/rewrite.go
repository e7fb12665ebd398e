package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
	"github.com/heartmarshall/promptcraft-backend/internal/service/rewrite"
)

type rewriteService interface {
	Rewrite(ctx context.Context, input rewrite.RewriteInput) (*rewrite.RewriteOutput, error)
}

// RewriteHandler serves POST /rewrite.
type RewriteHandler struct {
	svc rewriteService
	log *slog.Logger
}

// NewRewriteHandler creates a RewriteHandler.
func NewRewriteHandler(svc rewriteService, logger *slog.Logger) *RewriteHandler {
	return &RewriteHandler{svc: svc, log: logger.With("handler", "rewrite")}
}

type rewriteResponse struct {
	OriginalPrompt  string            `json:"originalPrompt"`
	RewrittenPrompt string            `json:"rewrittenPrompt"`
	Tone            domain.Tone       `json:"tone"`
	Type            domain.PromptType `json:"type"`
	Metadata        rewriter.Metadata `json:"metadata"`
	HistoryID       string            `json:"historyId,omitempty"`
	SavedToHistory  *bool             `json:"savedToHistory,omitempty"`
}

// Rewrite handles POST /rewrite.
func (h *RewriteHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req rewrite.RewriteInput
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	out, err := h.svc.Rewrite(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, rewriteResponse{
		OriginalPrompt:  out.OriginalPrompt,
		RewrittenPrompt: out.RewrittenPrompt,
		Tone:            out.Tone,
		Type:            out.Type,
		Metadata:        out.Metadata,
		HistoryID:       out.HistoryID,
		SavedToHistory:  out.SavedToHistory,
	})
}
