package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const (
	defaultLanguage  = "java"
	defaultCodeStyle = "monokai"
	terminalFormat   = "terminal256"
)

// Highlighter turns a code snippet into terminal markup.
type Highlighter interface {
	Highlight(code string) (string, error)
}

// ChromaHighlighter highlights every snippet with one fixed grammar.
type ChromaHighlighter struct {
	Language string
	Style    string
}

// NewChromaHighlighter returns a highlighter for language using the named
// chroma style. Empty values fall back to java and monokai.
func NewChromaHighlighter(language, style string) *ChromaHighlighter {
	if strings.TrimSpace(language) == "" {
		language = defaultLanguage
	}
	if strings.TrimSpace(style) == "" {
		style = defaultCodeStyle
	}
	return &ChromaHighlighter{Language: language, Style: style}
}

func (h *ChromaHighlighter) Highlight(code string) (string, error) {
	var b strings.Builder
	if err := quick.Highlight(&b, code, h.Language, terminalFormat, h.Style); err != nil {
		return "", fmt.Errorf("render: highlight %s: %w", h.Language, err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// PlainHighlighter returns code unchanged.
type PlainHighlighter struct{}

func (PlainHighlighter) Highlight(code string) (string, error) {
	return code, nil
}
