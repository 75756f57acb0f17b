package wayfarer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/wayfarer/internal/adapters/catalog"
	"github.com/aretw0/wayfarer/internal/logging"
	"github.com/aretw0/wayfarer/internal/runtime"
	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// Planner is the high-level entry point for the Wayfarer library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Planner struct {
	engine   *runtime.Engine
	catalog  ports.Catalog
	composer ports.Composer
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	timeout  time.Duration
	Name     string
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithCatalog injects a custom candidate catalog, bypassing the default
// fixture-directory initialization.
func WithCatalog(c ports.Catalog) Option {
	return func(p *Planner) {
		p.catalog = c
	}
}

// WithComposer wires the external text-generation collaborator. Without
// one, itineraries use the deterministic fallback template.
func WithComposer(c ports.Composer) Option {
	return func(p *Planner) {
		p.composer = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Planner) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithRunTimeout bounds the wall-clock duration of a single planning run.
func WithRunTimeout(d time.Duration) Option {
	return func(p *Planner) {
		p.timeout = d
	}
}

// New initializes a new Wayfarer Planner.
// By default, it loads the candidate catalog from the given directory.
// If the WithCatalog option is provided, catalogPath can be empty and the
// default loader is skipped.
func New(catalogPath string, opts ...Option) (*Planner, error) {
	p := &Planner{}

	// Apply options first to check whether a catalog is provided.
	for _, opt := range opts {
		opt(p)
	}

	if p.catalog == nil {
		if catalogPath == "" {
			return nil, fmt.Errorf("catalogPath is required when no custom catalog is provided")
		}

		absPath, err := filepath.Abs(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		p.Name = filepath.Base(absPath)

		cat, err := catalog.NewLoam(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize catalog: %w", err)
		}
		p.catalog = cat
	} else if catalogPath != "" {
		// A custom catalog still uses the path as a descriptive label.
		p.Name = filepath.Base(catalogPath)
	}

	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.Name != "" {
		p.logger = p.logger.With("catalog", p.Name)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(p.hooks),
		runtime.WithLogger(p.logger),
	}
	if p.composer != nil {
		engineOpts = append(engineOpts, runtime.WithComposer(p.composer))
	}
	if p.timeout > 0 {
		engineOpts = append(engineOpts, runtime.WithRunTimeout(p.timeout))
	}

	p.engine = runtime.NewEngine(p.catalog, engineOpts...)
	return p, nil
}

// Plan executes one planning run and returns the terminal trip state.
// The state always carries exactly one of an itinerary, alternative
// suggestions, or an error description; Plan itself only errors when the
// context is already dead before the run starts.
func (p *Planner) Plan(ctx context.Context, req domain.TripRequest) (*domain.TripState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.engine.Run(ctx, req), nil
}

// Catalog returns the underlying candidate catalog used by the planner.
func (p *Planner) Catalog() ports.Catalog {
	return p.catalog
}
