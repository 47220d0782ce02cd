package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer transforms guide markdown before it is printed.
type Renderer func(string) (string, error)

// Plain returns the markdown unchanged.
func Plain(markdown string) (string, error) {
	return markdown, nil
}

// NewRenderer returns a renderer that styles markdown using glamour.
// A non-positive width keeps glamour's default word wrap.
// If glamour cannot be initialized, guides are printed as-is.
func NewRenderer(width int) Renderer {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return Plain
	}

	return func(markdown string) (string, error) {
		out, err := r.Render(markdown)
		if err != nil {
			return markdown, err
		}
		return strings.TrimRight(out, "\n") + "\n", nil
	}
}
