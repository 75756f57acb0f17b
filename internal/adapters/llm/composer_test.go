package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/aretw0/wayfarer/pkg/domain"
)

type fakeModel struct {
	calls     int
	responses []*llms.ContentResponse
	errs      []error
}

// Call completes llms.Model; the composer only ever uses GenerateContent.
func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	i := f.calls
	f.calls++
	var resp *llms.ContentResponse
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func textResponse(text string, info map[string]any) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: text, GenerationInfo: info},
		},
	}
}

func testContext() domain.ItineraryContext {
	return domain.ItineraryContext{
		Destination: "Paris",
		Origin:      "Berlin",
		Duration:    5,
		Flight:      &domain.Flight{Airline: "Air France", Price: 450, Stops: 0},
		Hotel:       &domain.Hotel{Name: "Hotel Lumiere", Rating: 4.2, PricePerNight: 180},
		Activities: []domain.Activity{
			{Name: "Louvre tour", Style: domain.StyleCultural, Price: 45},
		},
		DailyActivityBudget: 90,
		DailyFoodBudget:     60,
	}
}

func TestComposeReturnsNarrativeWithUsage(t *testing.T) {
	model := &fakeModel{
		responses: []*llms.ContentResponse{
			textResponse("## Day 1\nArrive in Paris.", map[string]any{
				"PromptTokens":     120,
				"CompletionTokens": 80,
			}),
		},
	}
	c := NewFromModel(model, Config{})

	narrative, err := c.Compose(context.Background(), testContext())
	require.NoError(t, err)
	assert.Contains(t, narrative.Text, "Day 1")
	assert.Equal(t, 120, narrative.Usage.PromptTokens)
	assert.Equal(t, 80, narrative.Usage.CompletionTokens)
	assert.Equal(t, 1, model.calls)
}

func TestComposeRetriesTransientFailures(t *testing.T) {
	model := &fakeModel{
		errs: []error{
			errors.New("429: rate limit exceeded"),
			errors.New("request timeout"),
			nil,
		},
		responses: []*llms.ContentResponse{
			nil,
			nil,
			textResponse("itinerary", nil),
		},
	}
	c := NewFromModel(model, Config{MaxAttempts: 3, Backoff: time.Millisecond})

	narrative, err := c.Compose(context.Background(), testContext())
	require.NoError(t, err)
	assert.Equal(t, "itinerary", narrative.Text)
	assert.Equal(t, 3, model.calls)
}

func TestComposeStopsOnPermanentFailure(t *testing.T) {
	model := &fakeModel{
		errs: []error{errors.New("401: invalid api key")},
	}
	c := NewFromModel(model, Config{MaxAttempts: 3, Backoff: time.Millisecond})

	_, err := c.Compose(context.Background(), testContext())
	require.Error(t, err)
	assert.False(t, domain.IsRetryable(err))
	assert.Equal(t, 1, model.calls)
}

func TestComposeExhaustsAttempts(t *testing.T) {
	model := &fakeModel{
		errs: []error{
			errors.New("connection reset"),
			errors.New("connection reset"),
		},
	}
	c := NewFromModel(model, Config{MaxAttempts: 2, Backoff: time.Millisecond})

	_, err := c.Compose(context.Background(), testContext())
	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
	assert.Equal(t, 2, model.calls)
}

func TestComposeHonorsCancellationBetweenAttempts(t *testing.T) {
	model := &fakeModel{
		errs: []error{errors.New("timeout"), errors.New("timeout")},
	}
	c := NewFromModel(model, Config{MaxAttempts: 2, Backoff: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compose(ctx, testContext())
	require.Error(t, err)
	assert.Equal(t, 1, model.calls)
}

func TestComposeRejectsEmptyContent(t *testing.T) {
	model := &fakeModel{
		responses: []*llms.ContentResponse{textResponse("   ", nil)},
	}
	c := NewFromModel(model, Config{})

	_, err := c.Compose(context.Background(), testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestUserPromptMarksMissingBookings(t *testing.T) {
	ic := testContext()
	ic.Flight = nil
	ic.FlightNote = "no flight fit the budget"

	prompt := userPrompt(ic)
	assert.Contains(t, prompt, "Flight: MISSING (no flight fit the budget)")
	assert.Contains(t, prompt, "Hotel: Hotel Lumiere")
	assert.True(t, strings.Contains(prompt, "Daily food budget: 60.00"))
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(Config{Provider: "carrier-pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
