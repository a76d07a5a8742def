package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/config"
)

// Info reports where questions are stored.
type Info struct {
	Config  *config.Config
	Out     io.Writer
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DECK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DECK_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "DECK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load("")
		if err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(out, "Config.path:    ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend: ", n.Config.Backend())
	_, _ = fmt.Fprintln(out, "Config.log_file:", n.Config.LogFile)

	if n.Service == nil {
		return fmt.Errorf("failed to open the question store")
	}
	_, _ = fmt.Fprintln(out, "Snapshot:       ", n.Service.Store.Location())
	if n.Service.LoadErr != nil {
		_, _ = fmt.Fprintln(out, "Snapshot error: ", n.Service.LoadErr)
	}

	qs, err := n.Service.Questions(ctx)
	if err != nil {
		return err
	}
	tags, err := n.Service.Tags(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Questions:       %d\n", len(qs))
	_, _ = fmt.Fprintf(out, "Tags:            %d\n", len(tags))
	return nil
}
