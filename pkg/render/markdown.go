package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// MarkdownRenderer renders rich text at a given wrap width.
type MarkdownRenderer interface {
	Render(text string, width int) (string, error)
}

// Glamour renders Markdown with a glamour standard style ("dark", "light",
// "notty", ...) or "auto" to follow the terminal background.
type Glamour struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewGlamour returns a renderer for style.
func NewGlamour(style string) *Glamour {
	style = strings.TrimSpace(style)
	if style == "" {
		style = "auto"
	}
	return &Glamour{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

func (g *Glamour) Render(text string, width int) (string, error) {
	width = max(width, 10)
	r, ok := g.renderers[width]
	if !ok {
		var styleOption glamour.TermRendererOption
		if g.style == "auto" {
			styleOption = glamour.WithAutoStyle()
		} else {
			styleOption = glamour.WithStandardStyle(g.style)
		}
		var err error
		r, err = glamour.NewTermRenderer(
			styleOption,
			glamour.WithColorProfile(termenv.ColorProfile()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("render: markdown renderer: %w", err)
		}
		g.renderers[width] = r
	}
	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// PlainMarkdown returns text unchanged.
type PlainMarkdown struct{}

func (PlainMarkdown) Render(text string, _ int) (string, error) {
	return text, nil
}
