package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const DefaultModel = openai.GPT4oMini

// Config holds the OpenAI connection settings. BaseURL is empty in production.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ValidKey reports whether key looks like an OpenAI secret key.
func ValidKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) > len("sk-")
}

// Generator produces text with the OpenAI chat completions API.
type Generator struct {
	client *openai.Client
	model  string
}

// New creates an OpenAI generator.
func New(cfg Config) (*Generator, error) {
	if !ValidKey(cfg.APIKey) {
		return nil, errors.New("openai: api key is missing or malformed")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Generator{client: openai.NewClientWithConfig(oc), model: cfg.Model}, nil
}

func (g *Generator) Model() string { return g.model }

func (g *Generator) Generate(ctx context.Context, system, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
