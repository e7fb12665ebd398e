package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string              `json:"error"`
	Message   string              `json:"message"`
	Fields    []domain.FieldError `json:"fields,omitempty"`
	Details   string              `json:"details,omitempty"`
	ErrorType string              `json:"errorType,omitempty"`
	Fallback  *fallbackResponse   `json:"fallback,omitempty"`
}

type fallbackResponse struct {
	RewrittenPrompt string `json:"rewrittenPrompt"`
	Model           string `json:"model"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, ErrorResponse{Error: title, Message: message})
}

// decodeJSON reads the request body into v. An empty body leaves v unchanged.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, http.StatusRequestEntityTooLarge, "Payload too large", "Request body exceeds the size limit")
		return
	}
	writeError(w, http.StatusBadRequest, "Invalid JSON", "Request body must be valid JSON")
}

// handleError maps service errors onto HTTP responses.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		valErr *domain.ValidationError
		extErr *domain.ExternalServiceError
	)
	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Message: validationMessage(valErr),
			Fields:  valErr.Errors,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", "Prompt not found")
	case errors.As(err, &extErr):
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:     extErr.Message,
			Message:   "Failed to rewrite prompt",
			Details:   extErr.Details,
			ErrorType: extErr.Kind.String(),
			Fallback:  &fallbackResponse{RewrittenPrompt: extErr.Fallback, Model: "fallback"},
		})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error", "Something went wrong")
	}
}

func validationMessage(e *domain.ValidationError) string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
