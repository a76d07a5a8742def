// Package key prints the keyboard legend of the deck UI.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/deck/pkg/tui/keymap"
)

// Key prints the bindings of each UI mode.
type Key struct {
	KeyMap keymap.KeyMap
	Out    io.Writer
}

// Do renders the browse, form and confirm tables.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	km := k.KeyMap
	if len(km.Quit.Keys()) == 0 {
		km = keymap.Default()
	}

	_, _ = fmt.Fprintln(k.Out, "")
	var browse []key.Binding
	for _, group := range km.FullHelp() {
		browse = append(browse, group...)
	}
	k.Key(ctx, "Browse", browse)
	_, _ = fmt.Fprintln(k.Out, "")
	k.Key(ctx, "Form", km.FormHelp())
	_, _ = fmt.Fprintln(k.Out, "")
	k.Key(ctx, "Confirm", km.ConfirmHelp())
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Key renders one binding table under a section heading.
func (k *Key) Key(_ context.Context, section string, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprintf("%12s", section), bold.Sprint("Action"))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}
