package rewrite

import (
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

// RewriteInput holds the parameters of a rewrite request.
type RewriteInput struct {
	Prompt string `json:"prompt" validate:"required,max=5000"`
	Tone   string `json:"tone"   validate:"omitempty,tone"`
	Type   string `json:"type"   validate:"omitempty,prompttype"`
	UserID string `json:"userId" validate:"max=200"`
}

func (i RewriteInput) normalized() RewriteInput {
	i.Prompt = strings.TrimSpace(i.Prompt)
	i.Tone = strings.TrimSpace(i.Tone)
	i.Type = strings.TrimSpace(i.Type)
	i.UserID = strings.TrimSpace(i.UserID)
	return i
}

// Validate checks all fields and collects all errors.
func (i RewriteInput) Validate() error {
	return domain.ValidateStruct(i.normalized())
}

func (i RewriteInput) tone() domain.Tone {
	if i.Tone == "" {
		return domain.DefaultTone
	}
	return domain.Tone(i.Tone)
}

func (i RewriteInput) promptType() domain.PromptType {
	if i.Type == "" {
		return domain.DefaultPromptType
	}
	return domain.PromptType(i.Type)
}
