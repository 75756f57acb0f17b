// Package runtime implements the planning state machine: an explicit
// enumeration of stages, a pure transition function, and a driver loop
// that applies each stage's patch to a copied trip state.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// DefaultRunTimeout bounds a single planning run so a stuck composer call
// cannot hang the caller.
const DefaultRunTimeout = 30 * time.Second

// Engine drives a trip request through the planning stages. It holds no
// per-run state: concurrent runs share only the catalog and composer
// handles, which must be safe for concurrent use.
type Engine struct {
	catalog  ports.Catalog
	composer ports.Composer
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	timeout  time.Duration
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithComposer sets the itinerary composer. Without one, composition
// always uses the deterministic fallback template.
func WithComposer(c ports.Composer) EngineOption {
	return func(e *Engine) {
		e.composer = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRunTimeout overrides the wall-clock budget for a single run.
func WithRunTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEngine creates an engine over the given candidate catalog.
func NewEngine(catalog ports.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: DefaultRunTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one planning pass and returns the terminal state. The state
// machine never terminates abnormally: validation failures and faults
// surface as an error description on the returned state, not as an error.
func (e *Engine) Run(ctx context.Context, req domain.TripRequest) *domain.TripState {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	state := domain.NewTripState(req)
	logger := e.logger.With("run_id", state.RunID, "destination", req.Destination)

	for stage := domain.StageBudgetAnalysis; stage != domain.StageDone; {
		e.fireStageEnter(ctx, state.RunID, stage)
		logger.Debug("entering stage", "stage", stage)

		patch, err := e.exec(ctx, stage, state)
		if err != nil {
			// Only validation failures and faults arrive here; both route
			// to the error stage. Expected shortfalls are data in the patch.
			logger.Warn("stage failed", "stage", stage, "err", err)
			desc := describeFailure(stage, err)
			state = state.Apply(domain.Patch{ErrorDescription: &desc}).Visited(stage)
			e.fireStageLeave(ctx, state.RunID, stage)
			stage = domain.StageReportError
			continue
		}

		state = state.Apply(patch).Visited(stage)
		e.fireStageLeave(ctx, state.RunID, stage)
		stage = Transition(stage, state)
	}

	logger.Info("planning run finished",
		"feasible", state.Feasible,
		"stages", len(state.History),
		"fallback", state.UsedFallback,
		"failed", state.ErrorDescription != "")
	return state
}

// Transition is the pure routing function of the state machine. It only
// reads the state produced so far.
func Transition(stage domain.StageID, s *domain.TripState) domain.StageID {
	switch stage {
	case domain.StageBudgetAnalysis:
		if !s.Feasible {
			return domain.StageSuggestAlternatives
		}
		return domain.StageSearchFlights
	case domain.StageSearchFlights:
		return domain.StageSearchHotels
	case domain.StageSearchHotels:
		if !s.Hotel.Chosen() {
			return domain.StageComposeItinerary
		}
		return domain.StageSearchActivities
	case domain.StageSearchActivities:
		return domain.StageComposeItinerary
	default:
		// ComposeItinerary, SuggestAlternatives and ReportError are all
		// pre-terminal.
		return domain.StageDone
	}
}

// exec runs a single stage handler, converting panics in any stage past
// budget analysis into an error routed to the error stage.
func (e *Engine) exec(ctx context.Context, stage domain.StageID, s *domain.TripState) (patch domain.Patch, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %s panicked: %v", stage, r)
		}
	}()

	switch stage {
	case domain.StageBudgetAnalysis:
		return e.analyzeBudget(s)
	case domain.StageSearchFlights:
		return e.searchFlights(ctx, s)
	case domain.StageSearchHotels:
		return e.searchHotels(ctx, s)
	case domain.StageSearchActivities:
		return e.searchActivities(ctx, s)
	case domain.StageComposeItinerary:
		return e.composeItinerary(ctx, s)
	case domain.StageSuggestAlternatives:
		return e.suggestAlternatives(s)
	case domain.StageReportError:
		return e.reportError(s)
	default:
		return domain.Patch{}, fmt.Errorf("unknown stage %q", stage)
	}
}

func describeFailure(stage domain.StageID, err error) string {
	if domain.IsValidationError(err) {
		return err.Error()
	}
	return fmt.Sprintf("planning failed during %s: %v", stage, err)
}

func (e *Engine) fireStageEnter(ctx context.Context, runID string, stage domain.StageID) {
	if e.hooks.OnStageEnter != nil {
		e.hooks.OnStageEnter(ctx, &domain.StageEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStageEnter,
			RunID:     runID,
			Stage:     stage,
		})
	}
}

func (e *Engine) fireStageLeave(ctx context.Context, runID string, stage domain.StageID) {
	if e.hooks.OnStageLeave != nil {
		e.hooks.OnStageLeave(ctx, &domain.StageEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStageLeave,
			RunID:     runID,
			Stage:     stage,
		})
	}
}
