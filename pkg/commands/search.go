package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search question titles.",
		Example: `
deck search binary
deck search "two pointers" --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			s := search.Search{
				Query:   strings.Join(args, " "),
				ShowID:  ido.ShowID,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, ido)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
