package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tilelife/internal/geometry"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.Equal(t, 0, fs.Due(), "first call only primes the clock")

	clock = clock.Add(50 * time.Millisecond)
	assert.Equal(t, 0, fs.Due())
	clock = clock.Add(60 * time.Millisecond)
	assert.Equal(t, 1, fs.Due())
	clock = clock.Add(250 * time.Millisecond)
	assert.Equal(t, 2, fs.Due())

	clock = clock.Add(10 * time.Second)
	assert.Equal(t, 4, fs.Due(), "bursts are capped")
	clock = clock.Add(10 * time.Millisecond)
	assert.Equal(t, 0, fs.Due(), "backlog dropped after a capped burst")
}

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(0.5)
	assert.Equal(t, 2*time.Second, fs.Interval())
	assert.InDelta(t, 0.5, fs.Rate(), 1e-9)

	fs.SetRate(-3)
	assert.InDelta(t, DefaultRate, fs.Rate(), 1e-9)
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Rule", Params: []Parameter{StringParam("rule", "Rule", "B3/S23")}},
		{Name: "Soup", Params: []Parameter{FloatParam("density", "Density", 0.25), IntParam("radius", "Radius", 8)}},
	}}
	p, ok := snap.Lookup("density")
	assert.True(t, ok)
	assert.Equal(t, "0.25", p.Value)
	assert.Equal(t, ParamTypeFloat, p.Type)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

type fakeSim struct{}

func (fakeSim) Name() string                 { return "fake" }
func (fakeSim) Tile() geometry.Tile          { return geometry.NewQuadTile(1) }
func (fakeSim) Generation() int              { return 0 }
func (fakeSim) Reset(int64)                  {}
func (fakeSim) Step() Stats                  { return Stats{} }
func (fakeSim) View(fn func(g *SparseGrid)) { fn(NewSparseGrid()) }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return fakeSim{}, nil })
	Register("nil-factory", nil)
	_, ok := Sims()["nil-factory"]
	assert.False(t, ok)

	Register("zz-fake", func(map[string]string) (Sim, error) { return fakeSim{}, nil })
	t.Cleanup(func() { delete(sims, "zz-fake") })
	assert.Contains(t, SimNames(), "zz-fake")
	names := SimNames()
	assert.Equal(t, "zz-fake", names[len(names)-1])
}
