package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// Config holds the Gemini connection settings. BaseURL is empty in production.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ValidKey reports whether key looks like a Google AI Studio API key.
func ValidKey(key string) bool {
	return strings.HasPrefix(key, "AIza") && len(key) > len("AIza")
}

// Generator produces text with the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
}

// New creates a Gemini generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	if !ValidKey(cfg.APIKey) {
		return nil, errors.New("gemini: api key is missing or malformed")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Generator{client: client, model: cfg.Model}, nil
}

func (g *Generator) Model() string { return g.model }

// Generate sends one generateContent request. An empty system instruction is omitted.
func (g *Generator) Generate(ctx context.Context, system, prompt string) (string, error) {
	var gc *genai.GenerateContentConfig
	if system != "" {
		gc = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini generate: empty response")
	}
	return text, nil
}
