package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List questions, optionally by tag.",
		Example: `
deck list
deck list --tag algorithms --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			s := get.Get{
				ShowID:  ido.ShowID,
				Tag:     to.Tag,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddTagArgs(cmd, to)
	base.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("tag", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

func tagCompletions(cmd *cobra.Command, toComplete string) []string {
	d, err := openDeck()
	if err != nil {
		return nil
	}
	defer d.Close()
	tags, err := d.svc.Tags(cmd.Context())
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strconv.Quote(t))
	}
	return out
}
