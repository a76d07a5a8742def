// Package render turns questions into terminal cards.
package render

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/tui/theme"
)

const (
	// MinCardWidth is the narrowest grid card, borders included.
	MinCardWidth = 36
	// DefaultWidth is used when the caller does not know the terminal size.
	DefaultWidth = 80

	editHint   = "[e] edit"
	deleteHint = "[x] delete"
)

// CardOptions selects how a card is drawn. Detail marks the single-card
// view and only changes styling; Focused marks the grid cursor.
type CardOptions struct {
	Detail  bool
	Focused bool
	Width   int
}

// Renderer draws cards. Card output depends only on the question and the
// options, so callers may re-render freely.
type Renderer struct {
	Theme       theme.Theme
	Highlighter Highlighter
	Markdown    MarkdownRenderer
}

// New returns a Renderer with the default theme.
func New(h Highlighter, md MarkdownRenderer) *Renderer {
	if h == nil {
		h = PlainHighlighter{}
	}
	if md == nil {
		md = PlainMarkdown{}
	}
	return &Renderer{Theme: theme.Default(), Highlighter: h, Markdown: md}
}

// Card renders one question.
func (r *Renderer) Card(q question.Question, opts CardOptions) string {
	frame := r.Theme.Card.Frame
	switch {
	case opts.Detail:
		frame = r.Theme.Card.Detail
	case opts.Focused:
		frame = r.Theme.Card.Focused
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	inner := max(width-frame.GetHorizontalFrameSize(), 10)

	sections := []string{
		r.Theme.Card.Controls.Render(editHint + "  " + deleteHint),
		r.Theme.Card.Title.Render(wordwrap.String(Sanitize(q.Title), inner)),
	}
	if q.Content != "" {
		sections = append(sections, r.Theme.Card.Body.Render(wordwrap.String(Sanitize(q.Content), inner)))
	}
	if q.HasExplanation() {
		sections = append(sections, r.explanation(q.Explanation, inner))
	}
	if q.HasCode() {
		sections = append(sections, r.code(q.CodeSnippet, inner))
	}
	if tags := r.Tags(q.Tags, inner); tags != "" {
		sections = append(sections, tags)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return frame.Width(width - frame.GetHorizontalBorderSize()).Render(body)
}

func (r *Renderer) explanation(text string, width int) string {
	rendered, err := r.Markdown.Render(Sanitize(text), width)
	if err != nil {
		rendered = wordwrap.String(Sanitize(text), width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		r.Theme.Card.Heading.Render("Explanation"),
		rendered,
	)
}

func (r *Renderer) code(snippet string, width int) string {
	clean := Sanitize(snippet)
	highlighted, err := r.Highlighter.Highlight(clean)
	if err != nil {
		highlighted = clean
	}
	style := r.Theme.Card.Code
	return style.Width(max(width-style.GetHorizontalFrameSize(), 1)).Render(highlighted)
}

// Tags renders one chip per tag, in order, wrapping to width.
func (r *Renderer) Tags(tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}
	var lines []string
	var line []string
	lineWidth := 0
	for _, tag := range tags {
		chip := r.Theme.Card.Tag.Background(TagColor(tag)).Render(Sanitize(tag))
		w := lipgloss.Width(chip)
		if len(line) > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		if len(line) > 0 {
			lineWidth++
		}
		line = append(line, chip)
		lineWidth += w
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(lines, "\n")
}

// TagColor derives a stable chip colour from the tag text.
func TagColor(tag string) lipgloss.Color {
	hue := float64(xxhash.Sum64String(strings.ToLower(tag)) % 360)
	return lipgloss.Color(colorful.Hsv(hue, 0.55, 0.55).Hex())
}

// Layout is a rendered grid plus the first line of each card, so a
// scrolling view can keep the cursor visible.
type Layout struct {
	View    string
	Columns int
	Offsets []int
}

// Grid lays cards out in as many columns as width allows. focused is the
// index of the cursor card, or -1.
func (r *Renderer) Grid(qs []question.Question, focused, width int) Layout {
	if len(qs) == 0 {
		return Layout{Columns: 1}
	}
	if width <= 0 {
		width = DefaultWidth
	}
	columns := max(width/MinCardWidth, 1)
	if columns > len(qs) {
		columns = len(qs)
	}
	cardWidth := width / columns

	offsets := make([]int, len(qs))
	rows := make([]string, 0, (len(qs)+columns-1)/columns)
	line := 0
	for start := 0; start < len(qs); start += columns {
		end := min(start+columns, len(qs))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			offsets[i] = line
			cards = append(cards, r.Card(qs[i], CardOptions{Focused: i == focused, Width: cardWidth}))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		line += lipgloss.Height(row)
	}
	return Layout{View: lipgloss.JoinVertical(lipgloss.Left, rows...), Columns: columns, Offsets: offsets}
}

// Detail renders the single-card view.
func (r *Renderer) Detail(q question.Question, width int) string {
	return r.Card(q, CardOptions{Detail: true, Width: width})
}

// Summary is the one-line form used by suggestion lists and tables.
func Summary(q question.Question) string {
	if len(q.Tags) == 0 {
		return Sanitize(q.Title)
	}
	return fmt.Sprintf("%s  [%s]", Sanitize(q.Title), Sanitize(question.JoinTags(q.Tags)))
}
