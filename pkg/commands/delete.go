package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/render"
	"tableflip.dev/deck/pkg/runner/remove"
)

var errNotInteractive = errors.New("refusing to delete without --yes when stdin is not a terminal")

func addDelete(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete a question.",
		Example: `
deck delete --id 1700000000000
deck delete --id 1700000000000 --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ido.RequireID(cmd); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			confirm := func(question.Question) bool { return true }
			if !co.Yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
					return oo.HandleError(errNotInteractive)
				}
				confirm = prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			d, err := openDeck()
			if err != nil {
				return oo.HandleError(err)
			}
			defer d.Close()

			s := remove.Remove{
				ID:      ido.ID,
				Confirm: confirm,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: d.svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddIDArgs(cmd, ido)
	options.AddConfirmArgs(cmd, co)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// prompt asks on w and reads a y/N answer from r.
func prompt(r io.Reader, w io.Writer) form.Confirm {
	return func(q question.Question) bool {
		_, _ = fmt.Fprintf(w, "Delete %q? [y/N] ", render.Sanitize(q.Title))
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
