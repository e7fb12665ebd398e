package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	DefaultModel = "claude-3-5-haiku-latest"

	maxTokens = 2048
)

// Config holds the Anthropic connection settings. BaseURL is empty in production.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ValidKey reports whether key looks like an Anthropic API key.
func ValidKey(key string) bool {
	return strings.HasPrefix(key, "sk-ant-") && len(key) > len("sk-ant-")
}

// Generator produces text with the Anthropic messages API.
type Generator struct {
	client anthropic.Client
	model  string
}

// New creates an Anthropic generator. SDK retries are disabled.
func New(cfg Config) (*Generator, error) {
	if !ValidKey(cfg.APIKey) {
		return nil, errors.New("anthropic: api key is missing or malformed")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Generator{client: anthropic.NewClient(opts...), model: cfg.Model}, nil
}

func (g *Generator) Model() string { return g.model }

func (g *Generator) Generate(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	if b.Len() == 0 {
		return "", errors.New("anthropic messages: empty response")
	}
	return b.String(), nil
}
