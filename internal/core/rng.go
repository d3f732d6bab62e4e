package core

import (
	"math/rand/v2"

	"tilelife/internal/geometry"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillRandom sets each coordinate of rect alive with probability density
// and returns how many cells were set. Cells outside rect are untouched.
func FillRandom(g *SparseGrid, rect Rect, density float64, rng *RNG) int {
	if rect.Empty() || density <= 0 {
		return 0
	}
	n := 0
	for row := rect.Y; row < rect.Y+rect.H; row++ {
		for col := rect.X; col < rect.X+rect.W; col++ {
			if rng.Chance(density) {
				g.Put(geometry.Offset{Col: col, Row: row}, 1)
				n++
			}
		}
	}
	return n
}
