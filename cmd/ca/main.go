//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tilelife/internal/app"
	"tilelife/internal/config"
	"tilelife/internal/core"
	_ "tilelife/internal/sims/briansbrain"
	_ "tilelife/internal/sims/life"
)

func main() {
	flags := config.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	factory, ok := core.Sims()[cfg.Sim.Name]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim.Name, core.SimNames())
	}
	sim, err := factory(cfg.SimMap())
	if err != nil {
		log.Fatalf("sim %s: %v", cfg.Sim.Name, err)
	}
	sim.Reset(cfg.Sim.Seed)

	opts, err := app.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatalf("view: %v", err)
	}
	opts.Logger = logger
	game := app.New(sim, opts)

	ebiten.SetWindowTitle("tilelife - " + sim.Name())
	ebiten.SetWindowSize(opts.Width+opts.PanelWidth, opts.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
