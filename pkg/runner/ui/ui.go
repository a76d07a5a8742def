// Package ui runs the interactive deck browser.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/deck/pkg/app"
	teaui "tableflip.dev/deck/pkg/tui/app"
)

// UI starts the Bubble Tea program over an open service.
type UI struct {
	Service *app.Service
	Options teaui.Options
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("failed to open the question store")
	}
	return teaui.Run(ctx, d.Service, d.Options)
}
