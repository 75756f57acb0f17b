package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/wayfarer/internal/planning"
	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// Stage handlers. Each is a pure function of the incoming state except for
// the catalog and composer calls, and contributes a patch the engine
// applies to a copy.

func (e *Engine) analyzeBudget(s *domain.TripState) (domain.Patch, error) {
	analysis, err := planning.AnalyzeBudget(s.Request)
	if err != nil {
		return domain.Patch{}, err
	}

	return domain.Patch{
		Region:        &analysis.Region,
		Breakdown:     &analysis.Breakdown,
		MinRequired:   &analysis.MinRequired,
		Feasible:      &analysis.Feasible,
		BudgetSummary: &analysis.Summary,
	}, nil
}

func (e *Engine) searchFlights(ctx context.Context, s *domain.TripState) (domain.Patch, error) {
	candidates, err := e.catalog.Flights(ctx, e.query(s))
	if err != nil {
		return domain.Patch{}, fmt.Errorf("flight catalog: %w", err)
	}

	sel, inBudget := planning.SelectFlight(candidates, s.Breakdown.Flights)
	return domain.Patch{
		Flight:           &sel,
		FlightCandidates: inBudget,
	}, nil
}

func (e *Engine) searchHotels(ctx context.Context, s *domain.TripState) (domain.Patch, error) {
	candidates, err := e.catalog.Hotels(ctx, e.query(s))
	if err != nil {
		return domain.Patch{}, fmt.Errorf("hotel catalog: %w", err)
	}

	sel, inBudget := planning.SelectHotel(candidates, s.Breakdown.Accommodation, s.Request.Duration)
	return domain.Patch{
		Hotel:           &sel,
		HotelCandidates: inBudget,
	}, nil
}

func (e *Engine) searchActivities(ctx context.Context, s *domain.TripState) (domain.Patch, error) {
	candidates, err := e.catalog.Activities(ctx, e.query(s))
	if err != nil {
		return domain.Patch{}, fmt.Errorf("activity catalog: %w", err)
	}

	kept := planning.FilterActivities(candidates, s.Request.Preferences.Activity, s.Breakdown.Activities)
	return domain.Patch{Activities: kept}, nil
}

func (e *Engine) composeItinerary(ctx context.Context, s *domain.TripState) (domain.Patch, error) {
	ic := planning.BuildItineraryContext(s)

	if e.composer == nil {
		text := planning.FallbackItinerary(ic)
		fallback := true
		return domain.Patch{Itinerary: &text, UsedFallback: &fallback}, nil
	}

	e.fireComposerCall(ctx, s.RunID)
	narrative, err := e.composer.Compose(ctx, ic)
	if err != nil {
		// The composer owns its retries; whatever escapes it is absorbed
		// by the template. Composition never fails the run.
		e.fireComposerReturn(ctx, s.RunID, true, true)
		e.logger.Warn("composer failed, using fallback template",
			"run_id", s.RunID, "err", err, "retryable", domain.IsRetryable(err))

		text := planning.FallbackItinerary(ic)
		fallback := true
		return domain.Patch{Itinerary: &text, UsedFallback: &fallback}, nil
	}

	e.fireComposerReturn(ctx, s.RunID, false, false)
	usage := narrative.Usage
	return domain.Patch{Itinerary: &narrative.Text, Usage: &usage}, nil
}

func (e *Engine) suggestAlternatives(s *domain.TripState) (domain.Patch, error) {
	text := planning.SuggestAlternatives(s)
	return domain.Patch{Alternatives: &text}, nil
}

// reportError is the pre-terminal stage for fatal conditions. The failure
// description was already recorded when the failing stage was unwound;
// this stage only guarantees the run still ends with a usable result.
func (e *Engine) reportError(s *domain.TripState) (domain.Patch, error) {
	if s.ErrorDescription != "" {
		return domain.Patch{}, nil
	}
	desc := "planning failed for an unknown reason"
	return domain.Patch{ErrorDescription: &desc}, nil
}

func (e *Engine) query(s *domain.TripState) ports.TravelQuery {
	return ports.TravelQuery{
		Destination: s.Request.Destination,
		Origin:      s.Request.Origin,
		Duration:    s.Request.Duration,
	}
}

func (e *Engine) fireComposerCall(ctx context.Context, runID string) {
	if e.hooks.OnComposerCall != nil {
		e.hooks.OnComposerCall(ctx, &domain.ComposerEvent{
			Timestamp: time.Now(),
			Type:      domain.EventComposerCall,
			RunID:     runID,
		})
	}
}

func (e *Engine) fireComposerReturn(ctx context.Context, runID string, fallback, isErr bool) {
	if e.hooks.OnComposerReturn != nil {
		e.hooks.OnComposerReturn(ctx, &domain.ComposerEvent{
			Timestamp: time.Now(),
			Type:      domain.EventComposerReturn,
			RunID:     runID,
			Fallback:  fallback,
			IsError:   isErr,
		})
	}
}
