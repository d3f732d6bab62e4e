// Package ui draws the side panel and debugging overlays of the GUI build.
package ui

import (
	"fmt"
	"strings"
	"unicode"

	"tilelife/internal/core"
)

// Status is the app state shown at the top of the HUD.
type Status struct {
	Generation    int
	Live          int
	Rate          float64
	Paused        bool
	KeepCentered  bool
	HasCheckpoint bool
	Hovered       string
}

// Lines renders the status block, one entry per line.
func (s Status) Lines(params core.ParameterSnapshot) []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d  live %d", s.Generation, s.Live),
		fmt.Sprintf("%s @ %g gen/s", state, s.Rate),
	}
	if p, ok := params.Lookup("rule"); ok {
		lines = append(lines, "rule "+p.Value)
	}
	if p, ok := params.Lookup("tile"); ok {
		lines = append(lines, "tile "+p.Value)
	}
	var flags []string
	if s.KeepCentered {
		flags = append(flags, "centred")
	}
	if s.HasCheckpoint {
		flags = append(flags, "checkpoint")
	}
	if len(flags) > 0 {
		lines = append(lines, strings.Join(flags, " "))
	}
	if s.Hovered != "" {
		lines = append(lines, s.Hovered)
	}
	return lines
}

// Title capitalises a sim name for the panel header.
func Title(name string) string {
	if name == "" {
		return "Controls"
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r) + " Controls"
}

// KeyHelp lists the GUI key bindings.
var KeyHelp = []string{
	"space pause  n step",
	"r reset  s new seed",
	"c checkpoint  b rewind",
	"k centre  g grid",
	"arrows pan  +/- rate",
	"click toggles a tile",
}
