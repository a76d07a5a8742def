package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/render"
)

// Show prints the detail card for the question named by Ref, an id or a
// title.
type Show struct {
	Ref      string
	JSON     bool
	Width    int
	Out      io.Writer
	Renderer *render.Renderer
	Service  *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no store")
	}
	q, err := n.Service.Find(ctx, n.Ref)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, q)
	}
	pp := printers.PrettyPrint{Out: n.Out, Renderer: n.Renderer, Width: n.Width}
	pp.Card(q)
	return nil
}
