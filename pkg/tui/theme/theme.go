package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for cards and the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Search SearchTheme
	Card   CardTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Back   lipgloss.Style
}

// SearchTheme styles the search box and its suggestion panel.
type SearchTheme struct {
	Frame      lipgloss.Style
	Prompt     lipgloss.Style
	Suggestion lipgloss.Style
	Active     lipgloss.Style
	Panel      lipgloss.Style
}

// CardTheme styles a question card. Frame is the grid card, Focused the
// grid card under the cursor, Detail the single-card view.
type CardTheme struct {
	Frame    lipgloss.Style
	Focused  lipgloss.Style
	Detail   lipgloss.Style
	Controls lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
	Tag      lipgloss.Style
	Empty    lipgloss.Style
}

// ModalTheme styles centered modal overlays (form, delete confirmation).
type ModalTheme struct {
	Frame        lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Body         lipgloss.Style
	Error        lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Back:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Search: SearchTheme{
			Frame:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Prompt:     lipgloss.NewStyle().Foreground(accent).Bold(true),
			Suggestion: lipgloss.NewStyle().PaddingLeft(1),
			Active:     lipgloss.NewStyle().PaddingLeft(1).Foreground(accent).Reverse(true),
			Panel:      lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, true, true).Padding(0, 1),
		},
		Card: CardTheme{
			Frame:    card,
			Focused:  card.BorderForeground(accent),
			Detail:   card.Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(1, 2),
			Controls: lipgloss.NewStyle().Foreground(muted),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
			Code:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(muted).PaddingLeft(1),
			Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Padding(0, 1),
			Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:        lipgloss.NewStyle().Bold(true),
			Label:        lipgloss.NewStyle().Foreground(muted),
			FocusedLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Body:         lipgloss.NewStyle(),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}
