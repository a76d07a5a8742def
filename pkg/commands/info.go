package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print where questions and logs are kept.",
		Example: `
deck info
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := openDeck()
			if err != nil {
				return err
			}
			defer d.Close()

			i := info.Info{Config: d.cfg, Out: cmd.OutOrStdout(), Service: d.svc}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
