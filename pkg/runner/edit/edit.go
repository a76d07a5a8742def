package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/printers"
)

type Edit struct {
	ID      int64
	Patch   app.Patch
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no store")
	}
	q, err := n.Service.Edit(ctx, n.ID, n.Patch)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, q)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title("Updated")
	pp.Table(q)
	return nil
}
