// Package events defines the messages exchanged between UI components.
package events

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/deck/pkg/question"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// FormSubmitMsg is emitted when the user saves the question form.
type FormSubmitMsg struct {
	Component ComponentID
	Fields    question.Fields
}

// FormCancelMsg is emitted when the user dismisses the question form.
type FormCancelMsg struct {
	Component ComponentID
}

// StatusMsg asks the root model to show a transient status line.
type StatusMsg struct {
	Text  string
	Error bool
}

// ChangeType enumerates supported change actions.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
	ChangeReload ChangeType = "reload"
)

// QuestionChangeMsg announces that the question list changed, either from a
// local action or from another process writing the slot.
type QuestionChangeMsg struct {
	Action ChangeType
	ID     int64
}

// FormSubmitCmd wraps a FormSubmitMsg in a command.
func FormSubmitCmd(id ComponentID, f question.Fields) tea.Cmd {
	return func() tea.Msg { return FormSubmitMsg{Component: id, Fields: f} }
}

// FormCancelCmd wraps a FormCancelMsg in a command.
func FormCancelCmd(id ComponentID) tea.Cmd {
	return func() tea.Msg { return FormCancelMsg{Component: id} }
}

// StatusCmd wraps a StatusMsg in a command.
func StatusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isErr} }
}

// ChangeCmd wraps a QuestionChangeMsg in a command.
func ChangeCmd(action ChangeType, id int64) tea.Cmd {
	return func() tea.Msg { return QuestionChangeMsg{Action: action, ID: id} }
}
