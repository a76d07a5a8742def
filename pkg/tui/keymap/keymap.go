// Package keymap declares the key bindings of the interactive UI.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap groups every binding. It satisfies help.KeyMap.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
	Back      key.Binding
	Focus     key.Binding
	Search    key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
	Save      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Yes       key.Binding
	No        key.Binding
	ForceQuit key.Binding
}

// Default returns the built-in bindings.
func Default() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "search/grid")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		New:       key.NewBinding(key.WithKeys("ctrl+n", "n"), key.WithHelp("n", "new question")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:        key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp is shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Open, k.Back, k.New, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp lists every binding by context.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open, k.Back},
		{k.Focus, k.Search, k.New, k.Edit, k.Delete},
		{k.Next, k.Prev, k.Save},
		{k.Yes, k.No, k.Help, k.Quit, k.ForceQuit},
	}
}

// FormHelp is shown while the question form is open.
func (k KeyMap) FormHelp() []key.Binding {
	cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	return []key.Binding{k.Next, k.Prev, k.Save, cancel}
}

// ConfirmHelp is shown while a delete waits for confirmation.
func (k KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}
