package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
	"github.com/heartmarshall/promptcraft-backend/internal/service/history"
)

type historyService interface {
	Save(ctx context.Context, input history.SaveInput) (*domain.PromptRecord, error)
	List(ctx context.Context, input history.ListInput) (*history.ListResult, error)
	ListFavorites(ctx context.Context, input history.FavoritesInput) (*history.ListResult, error)
	Delete(ctx context.Context, input history.RecordInput) error
	ToggleFavorite(ctx context.Context, input history.RecordInput) (*domain.PromptRecord, error)
	Stats(ctx context.Context, userID string) (*history.StatsResult, error)
}

// HistoryHandler serves history, favorites and stats endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type historyListResponse struct {
	Prompts    []domain.PromptRecord `json:"prompts"`
	Pagination domain.Pagination     `json:"pagination"`
}

type favoritesListResponse struct {
	Favorites  []domain.PromptRecord `json:"favorites"`
	Pagination domain.Pagination     `json:"pagination"`
}

type deleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type favoriteResponse struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"isFavorite"`
}

type statsResponse struct {
	Stats          domain.UserStats      `json:"stats"`
	RecentActivity []domain.PromptRecord `json:"recentActivity"`
}

type toggleFavoriteRequest struct {
	UserID string `json:"userId"`
}

// Save handles POST /history.
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req history.SaveInput
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	rec, err := h.svc.Save(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, rec)
}

// List handles GET /history/{userId}.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.List(r.Context(), history.ListInput{
		UserID:    r.PathValue("userId"),
		Type:      q.Get("type"),
		Tone:      q.Get("tone"),
		Search:    q.Get("search"),
		Page:      queryInt(q.Get("page")),
		Limit:     queryInt(q.Get("limit")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, historyListResponse{Prompts: res.Records, Pagination: res.Pagination})
}

// Favorites handles GET /favorites/{userId}.
func (h *HistoryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.svc.ListFavorites(r.Context(), history.FavoritesInput{
		UserID:    r.PathValue("userId"),
		Page:      queryInt(q.Get("page")),
		Limit:     queryInt(q.Get("limit")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, favoritesListResponse{Favorites: res.Records, Pagination: res.Pagination})
}

// Delete handles DELETE /history/{id}?userId=.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.svc.Delete(r.Context(), history.RecordInput{
		ID:     id,
		UserID: r.URL.Query().Get("userId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, deleteResponse{DeletedID: id})
}

// ToggleFavorite handles POST /history/favorite/{id}.
func (h *HistoryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	rec, err := h.svc.ToggleFavorite(r.Context(), history.RecordInput{
		ID:     r.PathValue("id"),
		UserID: req.UserID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, favoriteResponse{ID: rec.ID, IsFavorite: rec.IsFavorite})
}

// Stats handles GET /stats/{userId}.
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Stats(r.Context(), r.PathValue("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, statsResponse{Stats: res.Stats, RecentActivity: res.RecentActivity})
}

// queryInt parses a positive integer query value; anything else yields 0,
// which the service replaces with its default.
func queryInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
