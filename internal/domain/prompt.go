package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Length limits for persisted prompts, in characters.
const (
	MaxOriginalPromptLength  = 5000
	MaxRewrittenPromptLength = 10000
)

// PromptRecord is one persisted rewrite. Only IsFavorite changes after creation.
type PromptRecord struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	OriginalPrompt  string         `json:"originalPrompt"`
	RewrittenPrompt string         `json:"rewrittenPrompt"`
	Tone            Tone           `json:"tone"`
	Type            PromptType     `json:"type"`
	IsFavorite      bool           `json:"isFavorite"`
	CreatedAt       time.Time      `json:"createdAt"`
	Metadata        PromptMetadata `json:"metadata"`
}

// PromptMetadata describes how a stored rewrite was produced.
type PromptMetadata struct {
	WordCount      WordCount `json:"wordCount"`
	ProcessingTime int64     `json:"processingTime"`
	Model          string    `json:"model"`
	APICost        float64   `json:"apiCost"`
}

// WordCount holds whitespace-delimited word counts of both prompts.
type WordCount struct {
	Original  int `json:"original"`
	Rewritten int `json:"rewritten"`
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// RecountWords recomputes the word counts from the current prompt text.
// Stores call it on every write; caller-supplied counts are discarded.
func (r *PromptRecord) RecountWords() {
	r.Metadata.WordCount = WordCount{
		Original:  CountWords(r.OriginalPrompt),
		Rewritten: CountWords(r.RewrittenPrompt),
	}
}

// CharCount returns the length of s in characters (code points).
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// UserStats aggregates all records of one user.
//
// MostUsedTone and MostUsedType are taken from the first record met during
// aggregation, not from a frequency count.
type UserStats struct {
	TotalPrompts      int64      `json:"totalPrompts"`
	FavoritePrompts   int64      `json:"favoritePrompts"`
	MostUsedTone      Tone       `json:"mostUsedTone,omitempty"`
	MostUsedType      PromptType `json:"mostUsedType,omitempty"`
	AvgProcessingTime float64    `json:"avgProcessingTime"`
	TotalAPICost      float64    `json:"totalApiCost"`
}

// CategoryCount is a usage count for one tone or type value.
type CategoryCount struct {
	Value string `json:"_id"`
	Count int64  `json:"count"`
}

// Popularity holds global usage counts, each list sorted by count descending.
type Popularity struct {
	ToneStats []CategoryCount `json:"toneStats"`
	TypeStats []CategoryCount `json:"typeStats"`
}
