package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/deck/pkg/tui/app"

	"tableflip.dev/deck/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
deck ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := openDeck()
			if err != nil {
				return err
			}
			defer d.Close()
			i := ui.UI{
				Service: d.svc,
				Options: teaui.Options{
					Renderer:      d.renderer(),
					MarkdownStyle: d.cfg.MarkdownStyle,
					Logger:        d.log,
				},
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
