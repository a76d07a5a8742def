// Package questionform renders the modal used to add and edit questions.
package questionform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/keymap"
	"tableflip.dev/deck/pkg/tui/theme"
)

// Field identifies one input of the form.
type Field int

const (
	FieldTitle Field = iota
	FieldContent
	FieldExplanation
	FieldCode
	FieldTags
	fieldCount
)

var fieldLabels = [...]string{
	FieldTitle:       "Title",
	FieldContent:     "Content",
	FieldExplanation: "Explanation (Markdown)",
	FieldCode:        "Code snippet",
	FieldTags:        "Tags (comma separated)",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldLabels[f]
}

// Model is the add/edit question overlay.
type Model struct {
	id    events.ComponentID
	theme theme.ModalTheme
	keys  keymap.KeyMap

	heading string
	focus   Field

	title       textinput.Model
	tags        textinput.Model
	content     textarea.Model
	explanation textarea.Model
	code        textarea.Model

	width    int
	errorMsg string
}

// New constructs an empty form.
func New(th theme.ModalTheme, keys keymap.KeyMap) *Model {
	title := textinput.New()
	title.Placeholder = "Binary Search"
	title.Prompt = ""
	title.CharLimit = 0

	tags := textinput.New()
	tags.Placeholder = "algorithms, search"
	tags.Prompt = ""

	m := &Model{
		id:          events.ComponentID("questionform"),
		theme:       th,
		keys:        keys,
		heading:     form.Create.String(),
		title:       title,
		tags:        tags,
		content:     newArea("What is being asked?", 4, false),
		explanation: newArea("Why the answer works", 4, false),
		code:        newArea("public class Main {}", 6, true),
	}
	m.SetSize(72)
	return m
}

func newArea(placeholder string, height int, lineNumbers bool) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = lineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.SetHeight(height)
	return ta
}

// ID identifies the form in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Open resets the form for mode and fills it from f.
func (m *Model) Open(mode form.Mode, f question.Fields) tea.Cmd {
	m.heading = mode.String()
	m.errorMsg = ""
	m.title.SetValue(f.Title)
	m.title.CursorEnd()
	m.tags.SetValue(f.Tags)
	m.tags.CursorEnd()
	m.content.SetValue(f.Content)
	m.explanation.SetValue(f.Explanation)
	m.code.SetValue(f.CodeSnippet)
	return m.setFocus(FieldTitle)
}

// Fields returns the current input.
func (m *Model) Fields() question.Fields {
	return question.Fields{
		Title:       m.title.Value(),
		Content:     m.content.Value(),
		Explanation: m.explanation.Value(),
		CodeSnippet: m.code.Value(),
		Tags:        m.tags.Value(),
	}
}

// Focused is the field receiving input.
func (m *Model) Focused() Field { return m.focus }

// SetError shows msg under the heading until the next edit.
func (m *Model) SetError(msg string) { m.errorMsg = msg }

// Error is the inline validation message, if any.
func (m *Model) Error() string { return m.errorMsg }

// SetSize fits the inputs to width.
func (m *Model) SetSize(width int) {
	width = max(width, 30)
	m.width = width
	inner := max(width-m.theme.Frame.GetHorizontalFrameSize(), 20)
	m.title.Width = inner - 1
	m.tags.Width = inner - 1
	m.content.SetWidth(inner)
	m.explanation.SetWidth(inner)
	m.code.SetWidth(inner)
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	m.title.Blur()
	m.tags.Blur()
	m.content.Blur()
	m.explanation.Blur()
	m.code.Blur()
	switch m.focus {
	case FieldTitle:
		return m.title.Focus()
	case FieldContent:
		return m.content.Focus()
	case FieldExplanation:
		return m.explanation.Focus()
	case FieldCode:
		return m.code.Focus()
	default:
		return m.tags.Focus()
	}
}

// Update routes keys to the focused input. Saving and cancelling are
// reported with events.FormSubmitMsg and events.FormCancelMsg.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Save):
			return m, events.FormSubmitCmd(m.id, m.Fields())
		case msg.Type == tea.KeyEsc:
			return m, events.FormCancelCmd(m.id)
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		}
		m.errorMsg = ""
	}

	var cmd tea.Cmd
	switch m.focus {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldContent:
		m.content, cmd = m.content.Update(msg)
	case FieldExplanation:
		m.explanation, cmd = m.explanation.Update(msg)
	case FieldCode:
		m.code, cmd = m.code.Update(msg)
	case FieldTags:
		m.tags, cmd = m.tags.Update(msg)
	}
	return m, cmd
}

// View renders the modal.
func (m *Model) View() string {
	lines := []string{m.theme.Title.Render(m.heading)}
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Error.Render(m.errorMsg))
	}
	lines = append(lines, "")
	lines = append(lines, m.row(FieldTitle, m.title.View()))
	lines = append(lines, m.row(FieldContent, m.content.View()))
	lines = append(lines, m.row(FieldExplanation, m.explanation.View()))
	lines = append(lines, m.row(FieldCode, m.code.View()))
	lines = append(lines, m.row(FieldTags, m.tags.View()))

	var hints []string
	for _, b := range m.keys.FormHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	lines = append(lines, m.theme.Label.Render(strings.Join(hints, " • ")))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.Frame.Width(m.width - m.theme.Frame.GetHorizontalBorderSize()).Render(body)
}

func (m *Model) row(f Field, input string) string {
	label := m.theme.Label
	if f == m.focus {
		label = m.theme.FocusedLabel
	}
	return lipgloss.JoinVertical(lipgloss.Left, label.Render(f.String()), input, "")
}
