package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

var renderer *glamour.TermRenderer

func init() {
	renderer = newRenderer(100)
}

// SetWrap replaces the package renderer with one wrapping at width columns.
// Call it before the UI loop starts; all rendering happens on the loop's
// single goroutine.
func SetWrap(width int) {
	if width <= 0 {
		return
	}
	renderer = newRenderer(width)
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Render falls back to raw text when no renderer is available.
		return nil
	}
	return r
}

// Render converts Markdown to styled ANSI output. Any failure falls back to
// returning the input unchanged, so callers never see an error.
func Render(md string) string {
	if renderer == nil || strings.TrimSpace(md) == "" {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	// glamour pads with trailing newlines; trim for inline display.
	return strings.TrimRight(out, "\n")
}
