package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/printers"
	"tableflip.dev/deck/pkg/question"
)

type Add struct {
	Fields  question.Fields
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no store")
	}
	q, err := n.Service.Add(ctx, n.Fields)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, q)
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	all, err := n.Service.Questions(ctx)
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.TitleWithCount("Questions", len(all))
	pp.Table(q)
	return nil
}
