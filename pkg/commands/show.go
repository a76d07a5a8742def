package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	width := 0

	cmd := &cobra.Command{
		Use:   "show ID|TITLE",
		Short: "Show one question as a card.",
		Example: `
deck show 1700000000000
deck show "binary search"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			if width <= 0 {
				width = terminalWidth()
			}
			s := show.Show{
				Ref:      strings.Join(args, " "),
				JSON:     oo.JSON,
				Width:    width,
				Out:      cmd.OutOrStdout(),
				Renderer: d.renderer(),
				Service:  d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Card width, defaults to the terminal width.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
