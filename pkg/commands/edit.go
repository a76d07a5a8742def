package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	qo := &options.QuestionOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a question. Only the given fields change.",
		Example: `
deck edit --id 1700000000000 --title "Binary Search Tree"
deck edit --id 1700000000000 --tags ""
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ido.RequireID(cmd); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			patch, err := qo.Patch(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			s := edit.Edit{
				ID:      ido.ID,
				Patch:   patch,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, ido)
	options.AddQuestionArgs(cmd, qo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
