package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each question.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0,
		"Specify the id of a question.")
}

// RequireID fails when --id was not given.
func (o *IDOptions) RequireID(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("id") {
		return errors.New("requires --id, see 'deck list --show-id'")
	}
	return nil
}
