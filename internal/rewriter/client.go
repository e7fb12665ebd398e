package rewriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

const (
	// MockModel is reported when no provider is configured.
	MockModel = "mock"

	// DefaultTimeout bounds each provider call.
	DefaultTimeout = 30 * time.Second

	costPerThousandChars = 0.0005
	probePrompt          = "Reply with the single word OK."
)

// Generator produces text from a system instruction and a user prompt.
// Provider adapters implement it.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// Recorder receives the outcome of every rewrite attempt.
type Recorder interface {
	ObserveRewrite(provider, outcome string, elapsed time.Duration)
}

// Options configures a Client.
type Options struct {
	Provider string
	Timeout  time.Duration

	// CancelOnTimeout cancels a provider call that lost the timeout race.
	// By default the call is left to finish and its result is discarded.
	CancelOnTimeout bool

	Recorder Recorder
}

// Metadata describes a successful rewrite.
type Metadata struct {
	ProcessingTime  int64             `json:"processingTime"`
	Model           string            `json:"model"`
	Tone            domain.Tone       `json:"tone"`
	Type            domain.PromptType `json:"type"`
	OriginalLength  int               `json:"originalLength"`
	RewrittenLength int               `json:"rewrittenLength"`
	APICost         float64           `json:"apiCost"`
}

// Result is the outcome of Client.Rewrite. On failure Fallback is always set.
type Result struct {
	Success         bool
	RewrittenPrompt string
	Metadata        Metadata

	Error     string
	ErrorType domain.FailureKind
	Details   string
	Fallback  string
}

// Err converts a failed result into an *domain.ExternalServiceError.
// It returns nil for a successful result.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &domain.ExternalServiceError{
		Kind:     r.ErrorType,
		Message:  r.Error,
		Details:  r.Details,
		Fallback: r.Fallback,
	}
}

// Status describes the client for informational endpoints.
type Status struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Timeout   string `json:"timeout"`
}

// Client rewrites prompts through a Generator, falling back to an offline
// transform when the generator is missing or fails.
type Client struct {
	log      *slog.Logger
	gen      Generator
	provider string
	timeout  time.Duration
	cancel   bool
	recorder Recorder
	instr    instructions
	now      func() time.Time
}

// NewClient creates a Client. A nil gen puts the client in mock mode for its
// whole lifetime.
func NewClient(logger *slog.Logger, gen Generator, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	provider := opts.Provider
	if gen == nil {
		provider = MockModel
	}
	return &Client{
		log:      logger.With("component", "rewriter"),
		gen:      gen,
		provider: provider,
		timeout:  opts.Timeout,
		cancel:   opts.CancelOnTimeout,
		recorder: opts.Recorder,
		instr:    newInstructions(),
		now:      time.Now,
	}
}

// Available reports whether a real provider is configured.
func (c *Client) Available() bool {
	return c.gen != nil
}

// Status returns the client's provider, model and timeout.
func (c *Client) Status() Status {
	model := MockModel
	if c.gen != nil {
		model = c.gen.Model()
	}
	return Status{
		Available: c.gen != nil,
		Provider:  c.provider,
		Model:     model,
		Timeout:   c.timeout.String(),
	}
}

// Rewrite rewrites prompt in the given tone and type. It never returns an
// error; failures are described by the Result.
func (c *Client) Rewrite(ctx context.Context, prompt string, tone domain.Tone, typ domain.PromptType) Result {
	start := c.now()

	if c.gen == nil {
		text := Fallback(prompt, tone, typ)
		c.observe("mock", start)
		return Result{
			Success:         true,
			RewrittenPrompt: text,
			Metadata:        c.metadata(start, MockModel, prompt, text, tone, typ, 0),
		}
	}

	if _, err := c.race(ctx, "", probePrompt); err != nil {
		c.log.WarnContext(ctx, "ai connectivity probe failed", slog.String("error", err.Error()))
		return c.failure(start, prompt, tone, typ, err)
	}

	text, err := c.race(ctx, c.instr.system(tone, typ), prompt)
	if err != nil {
		c.log.ErrorContext(ctx, "ai rewrite failed", slog.String("error", err.Error()))
		return c.failure(start, prompt, tone, typ, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return c.failure(start, prompt, tone, typ, errors.New("empty response from ai service"))
	}

	c.observe("success", start)
	return Result{
		Success:         true,
		RewrittenPrompt: text,
		Metadata:        c.metadata(start, c.gen.Model(), prompt, text, tone, typ, estimateCost(prompt, text)),
	}
}

type reply struct {
	text string
	err  error
}

// race runs one generation against the client timeout. The generation runs
// detached from ctx; when it loses the race its result is dropped.
func (c *Client) race(ctx context.Context, system, prompt string) (string, error) {
	callCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	ch := make(chan reply, 1)
	go func() {
		defer cancel()
		text, err := c.gen.Generate(callCtx, system, prompt)
		ch <- reply{text: text, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-timer.C:
		if c.cancel {
			cancel()
		}
		return "", fmt.Errorf("request timeout after %s", c.timeout)
	case <-ctx.Done():
		if c.cancel {
			cancel()
		}
		return "", fmt.Errorf("request aborted: %w", ctx.Err())
	}
}

func (c *Client) failure(start time.Time, prompt string, tone domain.Tone, typ domain.PromptType, err error) Result {
	kind := classify(err.Error())
	c.observe(kind.String(), start)
	return Result{
		Success:   false,
		Error:     failureMessage(kind),
		ErrorType: kind,
		Details:   err.Error(),
		Fallback:  Fallback(prompt, tone, typ),
	}
}

func (c *Client) metadata(start time.Time, model, original, rewritten string, tone domain.Tone, typ domain.PromptType, cost float64) Metadata {
	return Metadata{
		ProcessingTime:  c.now().Sub(start).Milliseconds(),
		Model:           model,
		Tone:            tone,
		Type:            typ,
		OriginalLength:  domain.CharCount(original),
		RewrittenLength: domain.CharCount(rewritten),
		APICost:         cost,
	}
}

func (c *Client) observe(outcome string, start time.Time) {
	if c.recorder != nil {
		c.recorder.ObserveRewrite(c.provider, outcome, c.now().Sub(start))
	}
}

// estimateCost prices a rewrite by its total character count, rounded to
// six decimal places.
func estimateCost(original, rewritten string) float64 {
	chars := float64(domain.CharCount(original) + domain.CharCount(rewritten))
	return math.Round(chars/1000*costPerThousandChars*1e6) / 1e6
}
