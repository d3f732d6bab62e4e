package life

import (
	"tilelife/internal/core"
	"tilelife/internal/geometry"
	"tilelife/internal/rules"
)

// Rule maps a cell state and the states of its neighbours, in neighbourhood
// order, to the cell's next state.
type Rule interface {
	Next(state int, neighbors []int) int
}

// Neighborer yields the neighbourhood of a coordinate. Every geometry.Tile
// is a Neighborer.
type Neighborer interface {
	Neighborhood(self geometry.Offset) geometry.Neighborhood
}

// Result describes what one generation changed.
type Result struct {
	// Births counts cells that went from state 0 to a live state.
	Births int
	// Deaths counts cells that went from a live state to 0.
	Deaths int
	// Changed counts every state change, including live to live.
	Changed int
	// Scanned is the number of coordinates evaluated.
	Scanned int
}

// Advance computes the next generation of g in place. Every next state is
// derived from the previous generation: changes are collected during the
// scan and written to g only after the scan completes.
func Advance(g *core.SparseGrid, tiling Neighborer, rule Rule) Result {
	var res Result
	var changes []core.Cell
	states := make([]int, 0, rules.MaxNeighbors)

	it := g.Generation()
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			break
		}
		res.Scanned++

		states = states[:0]
		for _, o := range tiling.Neighborhood(c.Offset).Neighbors {
			states = append(states, g.State(o))
		}
		if next := rule.Next(c.State, states); next != c.State {
			changes = append(changes, core.Cell{Offset: c.Offset, State: next})
		}
	}

	for _, ch := range changes {
		prev := g.Put(ch.Offset, ch.State)
		res.Changed++
		switch {
		case prev.State == 0 && ch.State != 0:
			res.Births++
		case prev.State != 0 && ch.State == 0:
			res.Deaths++
		}
	}
	return res
}

// AdvanceOneGeneration advances g by one generation of the life-like rule
// given by its survival and birth sets.
func AdvanceOneGeneration(g *core.SparseGrid, tiling Neighborer, survival, birth rules.Set) Result {
	return Advance(g, tiling, rules.Life{Survival: survival, Birth: birth})
}
