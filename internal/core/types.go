package core

import (
	"maps"
	"slices"

	"tilelife/internal/geometry"
)

// Stats summarises one generation step.
type Stats struct {
	Generation int
	Births     int
	Deaths     int
	Live       int
	Scanned    int
}

// Sim defines the contract a tiled cellular automaton session implements.
type Sim interface {
	Name() string
	Tile() geometry.Tile
	Generation() int
	Reset(seed int64)
	Step() Stats
	// View runs fn while the grid is locked against steps and edits. fn must
	// not retain g.
	View(fn func(g *SparseGrid))
}

// Editor is implemented by sims that accept direct cell edits.
type Editor interface {
	Get(o geometry.Offset) Cell
	Put(o geometry.Offset, state int) Cell
	Toggle(o geometry.Offset) Cell
}

// Checkpointer is implemented by sims that can snapshot and restore their
// grid.
type Checkpointer interface {
	Checkpoint()
	Rewind() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	return slices.Sorted(maps.Keys(sims))
}
