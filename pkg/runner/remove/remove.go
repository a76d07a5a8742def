package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/printers"
)

// Remove deletes one question. Confirm is asked first; a nil Confirm
// deletes without asking.
type Remove struct {
	ID      int64
	Confirm form.Confirm
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no store")
	}
	removed, err := n.Service.Delete(ctx, n.ID, n.Confirm)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]interface{}{"id": n.ID, "deleted": removed})
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if !removed {
		pp.Title("Nothing deleted")
		return nil
	}
	all, err := n.Service.Questions(ctx)
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Questions", len(all))
	pp.Table(all...)
	return nil
}
