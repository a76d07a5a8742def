package search

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/printers"
)

// Search prints the titles matching Query in insertion order. An empty
// query lists everything.
type Search struct {
	Query   string
	ShowID  bool
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no store")
	}
	res, err := n.Service.Search(ctx, n.Query)
	if err != nil {
		return err
	}
	qs := res.Matches
	if res.ShowAll {
		if qs, err = n.Service.Questions(ctx); err != nil {
			return err
		}
	}
	if n.JSON {
		return printers.JSON(n.Out, qs)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Suggestions(qs...)
	return nil
}
