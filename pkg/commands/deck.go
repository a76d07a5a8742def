package commands

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/config"
	"tableflip.dev/deck/pkg/logging"
	"tableflip.dev/deck/pkg/render"
)

// deck bundles what every subcommand needs once the config is resolved.
type deck struct {
	cfg *config.Config
	log *zap.Logger
	svc *app.Service
}

func openDeck() (*deck, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}
	svc, err := app.Open(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &deck{cfg: cfg, log: log, svc: svc}, nil
}

func (d *deck) Close() {
	_ = d.svc.Close()
	_ = d.log.Sync()
}

func (d *deck) renderer() *render.Renderer {
	return render.New(
		render.NewChromaHighlighter(d.cfg.Language, d.cfg.CodeStyle),
		render.NewGlamour(d.cfg.MarkdownStyle),
	)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return render.DefaultWidth
}
