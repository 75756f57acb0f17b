package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders itinerary markdown using
// glamour, detecting the terminal background automatically. Rendering
// errors fall back to the raw markdown so output is never lost.
func NewRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) string { return markdown }
	}

	return func(markdown string) string {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown
		}
		return out
	}
}
