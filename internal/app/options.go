// Package app hosts a simulation in an ebiten window.
package app

import (
	"log/slog"

	"tilelife/internal/config"
	"tilelife/internal/core"
	"tilelife/internal/render"
)

// DefaultPanelWidth is the HUD width in pixels.
const DefaultPanelWidth = 220

// PanStep is how far one arrow key press pans the view, in pixels.
const PanStep = 10.0

// Options configures a Game.
type Options struct {
	Width, Height int
	PanelWidth    int
	Rate          float64
	Seed          int64
	KeepCentered  bool
	Checkpoint    bool
	Palette       render.Palette
	Render        render.Options
	Logger        *slog.Logger
}

// OptionsFromConfig maps the view and run sections onto Options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	pal, err := render.ParsePalette(cfg.View.DeadColor, cfg.View.LiveColor, cfg.View.DyingColor, cfg.View.GridColor)
	if err != nil {
		return Options{}, err
	}
	rate := cfg.Run.Rate
	if rate <= 0 {
		rate = core.DefaultRate
	}
	return Options{
		Width:        cfg.View.Width,
		Height:       cfg.View.Height,
		PanelWidth:   DefaultPanelWidth,
		Rate:         rate,
		Seed:         cfg.Sim.Seed,
		KeepCentered: cfg.View.KeepCentered,
		Checkpoint:   cfg.Run.Checkpoint,
		Palette:      pal,
		Render:       render.Options{GridLines: cfg.View.GridLines, LineWidth: 1},
	}, nil
}

// adjustRate scales the stepping rate by one notch, clamped to [0.5, 240].
func adjustRate(rate float64, up bool) float64 {
	if up {
		rate *= 1.5
	} else {
		rate /= 1.5
	}
	return min(max(rate, 0.5), 240)
}
