package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/printers"
)

// Get lists questions, optionally only those carrying Tag.
type Get struct {
	ShowID  bool
	Tag     string
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no store")
	}
	qs, err := n.Service.ByTag(ctx, n.Tag)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, qs)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	title := "Questions"
	if n.Tag != "" {
		title = fmt.Sprintf("Questions tagged %q", n.Tag)
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(qs))
	pp.Table(qs...)
	return nil
}
