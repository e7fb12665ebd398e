package domain

import "strings"

// Tone is the voice a rewrite should be written in.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneCreative     Tone = "creative"
	ToneConcise      Tone = "concise"
)

// DefaultTone is applied when a request does not name a tone.
const DefaultTone = ToneProfessional

// Tones lists every valid tone in display order.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneCasual, ToneFriendly, ToneProfessional, ToneCreative, ToneConcise}
}

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneFormal, ToneCasual, ToneFriendly, ToneProfessional, ToneCreative, ToneConcise:
		return true
	}
	return false
}

// PromptType is the kind of text a rewrite should produce.
type PromptType string

const (
	PromptTypeEmail       PromptType = "email"
	PromptTypeMessage     PromptType = "message"
	PromptTypeExplanation PromptType = "explanation"
	PromptTypeSummary     PromptType = "summary"
	PromptTypeProposal    PromptType = "proposal"
	PromptTypeReport      PromptType = "report"
	PromptTypeOther       PromptType = "other"
)

// DefaultPromptType is applied when a request does not name a type.
const DefaultPromptType = PromptTypeOther

// PromptTypes lists every valid prompt type in display order.
func PromptTypes() []PromptType {
	return []PromptType{
		PromptTypeEmail, PromptTypeMessage, PromptTypeExplanation, PromptTypeSummary,
		PromptTypeProposal, PromptTypeReport, PromptTypeOther,
	}
}

func (p PromptType) String() string { return string(p) }

func (p PromptType) IsValid() bool {
	switch p {
	case PromptTypeEmail, PromptTypeMessage, PromptTypeExplanation, PromptTypeSummary,
		PromptTypeProposal, PromptTypeReport, PromptTypeOther:
		return true
	}
	return false
}

// ToneList returns the valid tones joined for error messages.
func ToneList() string {
	names := make([]string, 0, 6)
	for _, t := range Tones() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

// PromptTypeList returns the valid prompt types joined for error messages.
func PromptTypeList() string {
	names := make([]string, 0, 7)
	for _, p := range PromptTypes() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
