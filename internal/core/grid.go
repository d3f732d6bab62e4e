package core

import (
	"fmt"
	"maps"

	"tilelife/internal/geometry"
)

// Cell is a coordinate together with its state. A cell is alive when its
// state is non-zero.
type Cell struct {
	Offset geometry.Offset
	State  int
}

// Alive reports whether the cell holds a non-default state.
func (c Cell) Alive() bool { return c.State != 0 }

// Rect is an axis-aligned rectangle of tile coordinates. It covers columns
// [X, X+W-1] and rows [Y, Y+H-1].
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle covers no coordinates.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether o lies inside the rectangle.
func (r Rect) Contains(o geometry.Offset) bool {
	return o.Col >= r.X && o.Col <= r.X+r.W-1 &&
		o.Row >= r.Y && o.Row <= r.Y+r.H-1
}

// Expand grows the rectangle by margin cells on every side.
func (r Rect) Expand(margin int) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Border lists the coordinates on the edge of the rectangle, each once.
func (r Rect) Border() []geometry.Offset {
	if r.Empty() {
		return nil
	}
	var out []geometry.Offset
	for col := r.X; col < r.X+r.W; col++ {
		out = append(out, geometry.Offset{Col: col, Row: r.Y})
		if r.H > 1 {
			out = append(out, geometry.Offset{Col: col, Row: r.Y + r.H - 1})
		}
	}
	for row := r.Y + 1; row < r.Y+r.H-1; row++ {
		out = append(out, geometry.Offset{Col: r.X, Row: row})
		if r.W > 1 {
			out = append(out, geometry.Offset{Col: r.X + r.W - 1, Row: row})
		}
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

// SparseGrid is an unbounded grid that stores only cells with a non-zero
// state. Absent coordinates read as state 0. SparseGrid is not safe for
// concurrent use; sessions guard it with their own lock.
type SparseGrid struct {
	cells map[geometry.Offset]int
}

// NewSparseGrid allocates an empty grid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[geometry.Offset]int)}
}

// State returns the state stored at o, or 0.
func (g *SparseGrid) State(o geometry.Offset) int {
	return g.cells[o]
}

// Get returns the cell at o. Reading never stores an entry.
func (g *SparseGrid) Get(o geometry.Offset) Cell {
	return Cell{Offset: o, State: g.cells[o]}
}

// Put writes state at o and returns the cell as it was before the write.
// Writing 0 removes the entry.
func (g *SparseGrid) Put(o geometry.Offset, state int) Cell {
	prev := Cell{Offset: o, State: g.cells[o]}
	if state == 0 {
		delete(g.cells, o)
	} else {
		g.cells[o] = state
	}
	return prev
}

// Len returns the number of live cells.
func (g *SparseGrid) Len() int { return len(g.cells) }

// LiveRectangle returns the tightest rectangle holding every live cell. An
// empty grid yields the zero Rect.
func (g *SparseGrid) LiveRectangle() Rect {
	if len(g.cells) == 0 {
		return Rect{}
	}
	first := true
	var minC, maxC, minR, maxR int
	for o := range g.cells {
		if first {
			minC, maxC, minR, maxR = o.Col, o.Col, o.Row, o.Row
			first = false
			continue
		}
		minC = min(minC, o.Col)
		maxC = max(maxC, o.Col)
		minR = min(minR, o.Row)
		maxR = max(maxR, o.Row)
	}
	return Rect{X: minC, Y: minR, W: maxC - minC + 1, H: maxR - minR + 1}
}

// Clone returns an independent copy of the grid.
func (g *SparseGrid) Clone() *SparseGrid {
	return &SparseGrid{cells: maps.Clone(g.cells)}
}

// Clear removes every live cell.
func (g *SparseGrid) Clear() {
	clear(g.cells)
}

// Equal reports whether both grids hold the same live cells.
func (g *SparseGrid) Equal(other *SparseGrid) bool {
	return maps.Equal(g.cells, other.cells)
}

// keys snapshots the live coordinates.
func (g *SparseGrid) keys() []geometry.Offset {
	out := make([]geometry.Offset, 0, len(g.cells))
	for o := range g.cells {
		out = append(out, o)
	}
	return out
}
