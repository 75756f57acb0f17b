// Package llm implements the itinerary composer port over langchaingo,
// so the planner can use OpenAI, Anthropic, Google or a local Ollama
// model without knowing which one is behind the interface.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/aretw0/wayfarer/internal/logging"
	"github.com/aretw0/wayfarer/pkg/domain"
)

// Provider names accepted by New.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "googleai"
	ProviderOllama    = "ollama"
)

// Config selects and tunes the backing model.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int

	// Retry policy for transient failures. The composer owns retries;
	// the planning engine only sees the final error.
	MaxAttempts int
	Backoff     time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.Backoff <= 0 {
		c.Backoff = 500 * time.Millisecond
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1500
	}
	return c
}

// Composer generates itinerary prose from a structured trip context.
// It is safe for concurrent use if the underlying model client is.
type Composer struct {
	model  llms.Model
	cfg    Config
	logger *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Composer for the configured provider.
func New(cfg Config, opts ...Option) (*Composer, error) {
	cfg = cfg.withDefaults()

	model, err := newModel(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s model: %w", cfg.Provider, err)
	}
	return NewFromModel(model, cfg, opts...), nil
}

// NewFromModel wraps an existing langchaingo model. Used by tests and by
// callers that build their own client.
func NewFromModel(model llms.Model, cfg Config, opts ...Option) *Composer {
	c := &Composer{
		model:  model,
		cfg:    cfg.withDefaults(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newModel(cfg Config) (llms.Model, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)

	case ProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		return anthropic.New(opts...)

	case ProviderGoogle:
		opts := []googleai.Option{googleai.WithAPIKey(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, googleai.WithDefaultModel(cfg.Model))
		}
		return googleai.New(context.Background(), opts...)

	case ProviderOllama:
		opts := []ollama.Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		if cfg.Model != "" {
			opts = append(opts, ollama.WithModel(cfg.Model))
		}
		return ollama.New(opts...)

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// Compose implements ports.Composer. It retries transient failures up to
// MaxAttempts with linear backoff, honoring context cancellation.
func (c *Composer) Compose(ctx context.Context, ic domain.ItineraryContext) (*domain.Narrative, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt(ic))},
		},
	}

	callOpts := []llms.CallOption{
		llms.WithMaxTokens(c.cfg.MaxTokens),
	}
	if c.cfg.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(c.cfg.Temperature))
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		resp, err := c.model.GenerateContent(ctx, messages, callOpts...)
		if err == nil {
			return narrativeFromResponse(resp)
		}

		lastErr = classify(err)
		if !domain.IsRetryable(lastErr) {
			return nil, lastErr
		}
		c.logger.Warn("composer attempt failed",
			"attempt", attempt, "max_attempts", c.cfg.MaxAttempts, "err", err)

		if attempt == c.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, &domain.RetryableError{Err: ctx.Err()}
		case <-time.After(time.Duration(attempt) * c.cfg.Backoff):
		}
	}
	return nil, lastErr
}

func narrativeFromResponse(resp *llms.ContentResponse) (*domain.Narrative, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	choice := resp.Choices[0]
	if strings.TrimSpace(choice.Content) == "" {
		return nil, fmt.Errorf("model returned empty content")
	}

	return &domain.Narrative{
		Text: choice.Content,
		Usage: domain.TokenUsage{
			PromptTokens:     intFromInfo(choice.GenerationInfo, "PromptTokens", "prompt_tokens"),
			CompletionTokens: intFromInfo(choice.GenerationInfo, "CompletionTokens", "completion_tokens"),
		},
	}, nil
}

func intFromInfo(info map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := info[k].(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}

// classify marks transient provider failures as retryable. Providers do
// not share an error taxonomy, so this falls back to message matching.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "too many requests"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline"),
		strings.Contains(msg, "connection"),
		strings.Contains(msg, "unavailable"),
		strings.Contains(msg, "overloaded"):
		return &domain.RetryableError{Err: err}
	default:
		return err
	}
}

const systemPrompt = `You are a travel planner. Write a concise day-by-day ` +
	`itinerary in markdown from the structured facts you are given. Never ` +
	`invent bookings: if a flight or hotel is marked missing, say so plainly ` +
	`and suggest how the traveler could close the gap. Keep each day within ` +
	`the stated daily budgets.`

// userPrompt renders the structured context for the model. Same context,
// same prompt.
func userPrompt(ic domain.ItineraryContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Destination: %s\n", ic.Destination)
	if ic.Origin != "" {
		fmt.Fprintf(&b, "Departing from: %s\n", ic.Origin)
	}
	fmt.Fprintf(&b, "Duration: %d days\n", ic.Duration)

	if ic.Flight != nil {
		fmt.Fprintf(&b, "Flight: %s, %.2f, %d stop(s)\n", ic.Flight.Airline, ic.Flight.Price, ic.Flight.Stops)
	} else {
		fmt.Fprintf(&b, "Flight: MISSING (%s)\n", ic.FlightNote)
	}
	if ic.Hotel != nil {
		fmt.Fprintf(&b, "Hotel: %s, %.1f stars, %.2f per night\n", ic.Hotel.Name, ic.Hotel.Rating, ic.Hotel.PricePerNight)
	} else {
		fmt.Fprintf(&b, "Hotel: MISSING (%s)\n", ic.HotelNote)
	}

	if len(ic.Activities) > 0 {
		b.WriteString("Activity candidates:\n")
		for _, a := range ic.Activities {
			fmt.Fprintf(&b, "- %s (%s, %.2f)\n", a.Name, a.Style, a.Price)
		}
	}

	fmt.Fprintf(&b, "Daily activity budget: %.2f\n", ic.DailyActivityBudget)
	fmt.Fprintf(&b, "Daily food budget: %.2f\n", ic.DailyFoodBudget)

	if ic.Preferences.Dietary != domain.DietAny {
		fmt.Fprintf(&b, "Dietary preference: %s\n", ic.Preferences.Dietary)
	}
	if ic.Preferences.Accommodation != domain.StayAny {
		fmt.Fprintf(&b, "Accommodation preference: %s\n", ic.Preferences.Accommodation)
	}
	if ic.Preferences.Activity != domain.StyleAny {
		fmt.Fprintf(&b, "Activity style: %s\n", ic.Preferences.Activity)
	}

	return b.String()
}
