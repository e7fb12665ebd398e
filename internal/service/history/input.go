package history

import (
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

const maxUserIDLength = 200

// MetadataInput carries caller-supplied metadata for an explicit save.
// Word counts are never accepted; they are derived from the prompt text.
type MetadataInput struct {
	ProcessingTime int64   `json:"processingTime" validate:"gte=0"`
	Model          string  `json:"model"          validate:"max=100"`
	APICost        float64 `json:"apiCost"        validate:"gte=0"`
}

// SaveInput holds the parameters for saving a rewrite to history.
type SaveInput struct {
	UserID          string         `json:"userId"          validate:"required,max=200"`
	OriginalPrompt  string         `json:"originalPrompt"  validate:"required,max=5000"`
	RewrittenPrompt string         `json:"rewrittenPrompt" validate:"required,max=10000"`
	Tone            string         `json:"tone"            validate:"omitempty,tone"`
	Type            string         `json:"type"            validate:"omitempty,prompttype"`
	Metadata        *MetadataInput `json:"metadata"`
}

func (i SaveInput) normalized() SaveInput {
	i.UserID = strings.TrimSpace(i.UserID)
	i.OriginalPrompt = strings.TrimSpace(i.OriginalPrompt)
	i.RewrittenPrompt = strings.TrimSpace(i.RewrittenPrompt)
	i.Tone = strings.TrimSpace(i.Tone)
	i.Type = strings.TrimSpace(i.Type)
	return i
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	return domain.ValidateStruct(i.normalized())
}

// ListInput holds the parameters for listing a user's history.
// Zero Page or Limit select the defaults.
type ListInput struct {
	UserID    string `json:"userId" validate:"required,max=200"`
	Type      string `json:"type"   validate:"omitempty,prompttype"`
	Tone      string `json:"tone"   validate:"omitempty,tone"`
	Search    string `json:"search" validate:"max=200"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sortBy"    validate:"omitempty,sortfield"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	i.UserID = strings.TrimSpace(i.UserID)
	return domain.ValidateStruct(i)
}

func (i ListInput) filter() domain.HistoryFilter {
	var f domain.HistoryFilter
	if i.Type != "" {
		t := domain.PromptType(i.Type)
		f.Type = &t
	}
	if i.Tone != "" {
		t := domain.Tone(i.Tone)
		f.Tone = &t
	}
	if s := strings.TrimSpace(i.Search); s != "" {
		f.Search = &s
	}
	return f
}

// FavoritesInput holds the parameters for listing a user's favorites.
type FavoritesInput struct {
	UserID    string `json:"userId" validate:"required,max=200"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sortBy"    validate:"omitempty,sortfield"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Validate checks all fields and collects all errors.
func (i FavoritesInput) Validate() error {
	i.UserID = strings.TrimSpace(i.UserID)
	return domain.ValidateStruct(i)
}

// RecordInput addresses one record, optionally scoped to its owner.
type RecordInput struct {
	ID     string `json:"id"     validate:"required"`
	UserID string `json:"userId" validate:"max=200"`
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	i.ID = strings.TrimSpace(i.ID)
	return domain.ValidateStruct(i)
}
