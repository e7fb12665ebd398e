package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/rewriter"
)

type aiStatus interface {
	Status() rewriter.Status
}

type popularityService interface {
	Popularity(ctx context.Context) (domain.Popularity, error)
}

// InfoHandler serves GET /info.
type InfoHandler struct {
	ai         aiStatus
	popularity popularityService
	version    string
	log        *slog.Logger
}

// NewInfoHandler creates an InfoHandler.
func NewInfoHandler(ai aiStatus, popularity popularityService, version string, logger *slog.Logger) *InfoHandler {
	return &InfoHandler{
		ai:         ai,
		popularity: popularity,
		version:    version,
		log:        logger.With("handler", "info"),
	}
}

type apiInfo struct {
	Name    string              `json:"name"`
	Version string              `json:"version"`
	Tones   []domain.Tone       `json:"tones"`
	Types   []domain.PromptType `json:"types"`
	Limits  apiLimits           `json:"limits"`
}

type apiLimits struct {
	MaxPromptLength    int `json:"maxPromptLength"`
	MaxRewrittenLength int `json:"maxRewrittenLength"`
	MaxPageSize        int `json:"maxPageSize"`
}

type infoResponse struct {
	API     apiInfo           `json:"api"`
	AI      rewriter.Status   `json:"ai"`
	Popular domain.Popularity `json:"popular"`
}

// Info reports the API surface, the AI client status and global usage.
// A failing popularity query degrades to empty lists.
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	popular, err := h.popularity.Popularity(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "popularity unavailable", slog.String("error", err.Error()))
		popular = domain.Popularity{ToneStats: []domain.CategoryCount{}, TypeStats: []domain.CategoryCount{}}
	}

	writeData(w, http.StatusOK, infoResponse{
		API: apiInfo{
			Name:    "promptcraft",
			Version: h.version,
			Tones:   domain.Tones(),
			Types:   domain.PromptTypes(),
			Limits: apiLimits{
				MaxPromptLength:    domain.MaxOriginalPromptLength,
				MaxRewrittenLength: domain.MaxRewrittenPromptLength,
				MaxPageSize:        domain.MaxLimit,
			},
		},
		AI:      h.ai.Status(),
		Popular: popular,
	})
}
