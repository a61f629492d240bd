// Package render formats markdown answers for terminal display.
package render

import (
	"github.com/charmbracelet/glamour"
)

// Options configures terminal markdown rendering
type Options struct {
	Style string // "dark", "light", or "auto"
	Width int
}

// DefaultOptions returns sensible rendering defaults
func DefaultOptions() Options {
	return Options{Style: "dark", Width: 100}
}

// Markdown renders markdown content for terminal display. On renderer
// construction failure the caller should fall back to the raw text.
func Markdown(content string, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 100
	}

	var styleOpt glamour.TermRendererOption
	switch opts.Style {
	case "light":
		styleOpt = glamour.WithStandardStyle("light")
	case "auto":
		styleOpt = glamour.WithAutoStyle()
	default:
		styleOpt = glamour.WithStandardStyle("dark")
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
