package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options configures the application logger.
type Options struct {
	Level slog.Level
	// JSON switches to the JSON handler, for server deployments where
	// logs are scraped rather than read.
	JSON bool
}

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout free for rendered output and JSON
// results) and standardizes common keys (e.g., "error" -> "err").
func New(opts Options) *slog.Logger {
	hOpts := &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	if opts.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, hOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hOpts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
