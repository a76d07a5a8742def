package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/runner/key"
	"tableflip.dev/deck/pkg/tui/keymap"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the keys of the user interface",
		Example: `
deck key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{KeyMap: keymap.Default(), Out: cmd.OutOrStdout()}
			err := k.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
