package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	qo := &options.QuestionOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a question to the deck.",
		Example: `
deck add "Binary Search" --content "How does it work?" --tags "algorithms, search"
deck add --title "Hello Java" --code-file Main.java
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			fields, err := qo.Fields(args)
			if err != nil {
				return oo.HandleError(err)
			}
			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			s := add.Add{
				Fields:  fields,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddQuestionArgs(cmd, qo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
