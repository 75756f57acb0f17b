package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/wayfarer"
	"github.com/aretw0/wayfarer/internal/adapters/catalog"
	"github.com/aretw0/wayfarer/internal/adapters/llm"
	"github.com/aretw0/wayfarer/internal/adapters/redis"
	"github.com/aretw0/wayfarer/internal/logging"
	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// DefaultCatalogPath is used when neither flag nor config names one.
const DefaultCatalogPath = "./catalog"

// RunOptions carries the per-invocation settings resolved from flags and
// the config file.
type RunOptions struct {
	Config Config
	Debug  bool
}

// CreatePlanner initializes a Planner with standard CLI conventions:
// a loam catalog at the configured path, a Redis cache in front of it
// when an address is configured, and an LLM composer when a provider is
// configured.
func CreatePlanner(opts RunOptions, logger *slog.Logger) (*wayfarer.Planner, error) {
	cfg := opts.Config

	catalogPath := cfg.Catalog
	if catalogPath == "" {
		catalogPath = DefaultCatalogPath
	}

	cat, err := catalog.NewLoam(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing catalog: %w", err)
	}

	var source ports.Catalog = cat
	if cfg.Cache.Address != "" {
		cacheOpts := []redis.Option{}
		if cfg.Cache.TTL > 0 {
			cacheOpts = append(cacheOpts, redis.WithTTL(time.Duration(cfg.Cache.TTL)))
		}
		source = redis.New(cat, cfg.Cache.Address, cfg.Cache.Password, cfg.Cache.DB, cacheOpts...)
		logger.Debug("catalog cache enabled", "address", cfg.Cache.Address)
	}

	plannerOpts := []wayfarer.Option{
		wayfarer.WithCatalog(source),
		wayfarer.WithLogger(logger),
	}
	if opts.Debug {
		plannerOpts = append(plannerOpts, wayfarer.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if cfg.Timeout > 0 {
		plannerOpts = append(plannerOpts, wayfarer.WithRunTimeout(time.Duration(cfg.Timeout)))
	}

	if cfg.Composer.Provider != "" {
		composer, err := llm.New(llm.Config{
			Provider:    cfg.Composer.Provider,
			Model:       cfg.Composer.Model,
			APIKey:      cfg.Composer.APIKey,
			BaseURL:     cfg.Composer.BaseURL,
			Temperature: cfg.Composer.Temperature,
			MaxTokens:   cfg.Composer.MaxTokens,
			MaxAttempts: cfg.Composer.MaxAttempts,
			Backoff:     time.Duration(cfg.Composer.Backoff),
		}, llm.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("error initializing composer: %w", err)
		}
		plannerOpts = append(plannerOpts, wayfarer.WithComposer(composer))
	}

	planner, err := wayfarer.New(catalogPath, plannerOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing planner: %w", err)
	}
	return planner, nil
}

// CreateLogger configures the application logger. In debug mode it logs
// at debug level to Stderr (to separate from Stdout output).
func CreateLogger(debug bool, cfg LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(logging.Options{Level: level, JSON: cfg.JSON})
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("Enter Stage", "run_id", e.RunID, "stage", e.Stage)
		},
		OnStageLeave: func(ctx context.Context, e *domain.StageEvent) {
			logger.Debug("Leave Stage", "run_id", e.RunID, "stage", e.Stage)
		},
		OnComposerCall: func(ctx context.Context, e *domain.ComposerEvent) {
			logger.Debug("Composer Call", "run_id", e.RunID)
		},
		OnComposerReturn: func(ctx context.Context, e *domain.ComposerEvent) {
			if e.IsError {
				logger.Debug("Composer Return (Error)", "run_id", e.RunID, "fallback", e.Fallback)
			} else {
				logger.Debug("Composer Return (Success)", "run_id", e.RunID)
			}
		},
	}
}
