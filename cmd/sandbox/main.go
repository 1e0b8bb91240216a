package main

import (
	"log/slog"
	"os"

	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/video"
)

func main() {
	core.SetLogger(slog.Default())

	cfg, err := core.LoadConfig("sandbox.yaml")
	if err != nil {
		// Missing config is fine for the sandbox; run on defaults.
		cfg = core.Config{}
		cfg.Defaults()
	}

	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		win, err := video.NewWindow(cfg)
		if err != nil {
			return nil, err
		}
		app.win = win
		return win, nil
	}

	defer video.Quit()
	if err := core.Run(app, cfg, newWindow); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
