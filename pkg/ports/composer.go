package ports

import (
	"context"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// Composer is the external text-generation collaborator. It turns a
// structured itinerary context into prose. Implementations own their
// retry and timeout policy; errors they return after retries are
// exhausted cause the planner to fall back to its deterministic template,
// never to fail the run.
//
// A Composer shared across concurrent planning runs must be safe for
// concurrent use.
type Composer interface {
	Compose(ctx context.Context, ic domain.ItineraryContext) (*domain.Narrative, error)
}

// ComposerFunc adapts a function to the Composer interface.
type ComposerFunc func(ctx context.Context, ic domain.ItineraryContext) (*domain.Narrative, error)

func (f ComposerFunc) Compose(ctx context.Context, ic domain.ItineraryContext) (*domain.Narrative, error) {
	return f(ctx, ic)
}
