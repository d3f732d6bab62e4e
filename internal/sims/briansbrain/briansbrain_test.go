package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
)

func TestRuleTransitions(t *testing.T) {
	var r Rule
	assert.Equal(t, stateDying, r.Next(stateOn, []int{1, 1, 1, 1, 0, 0, 0, 0}))
	assert.Equal(t, stateDead, r.Next(stateDying, []int{1, 1, 0, 0, 0, 0, 0, 0}))
	assert.Equal(t, stateOn, r.Next(stateDead, []int{1, 1, 0, 0, 0, 0, 0, 0}))
	assert.Equal(t, stateDead, r.Next(stateDead, []int{1, 2, 2, 0, 0, 0, 0, 0}), "dying neighbours do not count")
	assert.Equal(t, stateDead, r.Next(stateDead, []int{1, 1, 1, 0, 0, 0, 0, 0}))
}

func TestPairFiresAndFades(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)
	s.Put(geometry.Offset{Col: 0, Row: 0}, stateOn)
	s.Put(geometry.Offset{Col: 1, Row: 0}, stateOn)

	stats := s.Step()
	assert.Equal(t, 4, stats.Births, "cells above and below the pair see two firing neighbours")
	s.View(func(g *core.SparseGrid) {
		assert.Equal(t, stateDying, g.State(geometry.Offset{Col: 0, Row: 0}))
		assert.Equal(t, stateDying, g.State(geometry.Offset{Col: 1, Row: 0}))
		for _, o := range []geometry.Offset{{Col: 0, Row: -1}, {Col: 1, Row: -1}, {Col: 0, Row: 1}, {Col: 1, Row: 1}} {
			assert.Equal(t, stateOn, g.State(o), "%v", o)
		}
	})

	s.Step()
	s.View(func(g *core.SparseGrid) {
		assert.Equal(t, stateDead, g.State(geometry.Offset{Col: 0, Row: 0}))
	})
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["briansbrain"]
	require.True(t, ok)
	sim, err := factory(map[string]string{"tile": "hex", "radius": "6"})
	require.NoError(t, err)
	assert.Equal(t, "briansbrain", sim.Name())
	assert.Equal(t, geometry.KindHex, sim.Tile().Kind())
	sim.Reset(1)
	sim.View(func(g *core.SparseGrid) {
		assert.Positive(t, g.Len())
	})
	sim.Step()
	assert.Equal(t, 1, sim.Generation())
}
