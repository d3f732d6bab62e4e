// Package life runs life-like cellular automata on an unbounded tiled grid.
package life

import (
	"fmt"
	"log/slog"
	"sync"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
)

// Option customises a Life session.
type Option func(*Life)

// WithLogger sets the session logger. The default is core.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(s *Life) {
		if l != nil {
			s.log = l
		}
	}
}

// WithConfig sets the soup parameters used by Reset.
func WithConfig(c Config) Option {
	return func(s *Life) { s.cfg = c }
}

// Life is a simulation session. It owns one grid and serialises steps,
// edits and render traversals against it: a step holds the write lock for
// the whole collect-then-apply pass, readers hold the read lock.
type Life struct {
	mu sync.RWMutex

	name       string
	tile       geometry.Tile
	rule       Rule
	cfg        Config
	grid       *core.SparseGrid
	generation int

	checkpoint    *core.SparseGrid
	checkpointGen int

	log *slog.Logger
}

// New builds a Life session from a config.
func New(cfg Config, opts ...Option) (*Life, error) {
	tile, err := cfg.NewTile()
	if err != nil {
		return nil, err
	}
	rule, err := cfg.ParseRule()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithConfig(cfg)}, opts...)
	return NewWithRule("life", tile, rule, opts...), nil
}

// NewWithRule builds an empty session with an arbitrary rule.
func NewWithRule(name string, tile geometry.Tile, rule Rule, opts ...Option) *Life {
	s := &Life{
		name: name,
		tile: tile,
		rule: rule,
		cfg:  DefaultConfig(),
		grid: core.NewSparseGrid(),
		log:  core.Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("sim", name)
	return s
}

// Name identifies the simulation.
func (s *Life) Name() string { return s.name }

// Tile returns the tiling the session runs on.
func (s *Life) Tile() geometry.Tile { return s.tile }

// Rule returns the current rule.
func (s *Life) Rule() Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rule
}

// SetRule swaps the rule used by following steps.
func (s *Life) SetRule(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rule = r
	s.log.Info("rule changed", "rule", fmt.Sprint(r))
}

// Generation returns the number of steps since the last reset.
func (s *Life) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Live returns the number of live cells.
func (s *Life) Live() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Len()
}

// Reset clears the grid and seeds a random soup around the origin.
func (s *Life) Reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.generation = 0
	s.checkpoint = nil
	s.cfg.Seed = seed
	n := core.FillRandom(s.grid, s.cfg.SoupRect(), s.cfg.Density, core.NewRNG(seed))
	s.log.Info("reset", "seed", seed, "live", n)
}

// Clear empties the grid without seeding.
func (s *Life) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.generation = 0
}

// Step advances the session by one generation.
func (s *Life) Step() core.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := Advance(s.grid, s.tile, s.rule)
	s.generation++
	stats := core.Stats{
		Generation: s.generation,
		Births:     res.Births,
		Deaths:     res.Deaths,
		Live:       s.grid.Len(),
		Scanned:    res.Scanned,
	}
	s.log.Debug("step", "generation", stats.Generation, "births", stats.Births, "deaths", stats.Deaths, "live", stats.Live)
	return stats
}

// Get returns the cell at o.
func (s *Life) Get(o geometry.Offset) core.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Get(o)
}

// Put writes a state at o and returns the previous cell.
func (s *Life) Put(o geometry.Offset, state int) core.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Put(o, state)
}

// Toggle flips o between dead and alive and returns the previous cell.
func (s *Life) Toggle(o geometry.Offset) core.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.grid.Get(o)
	next := 1
	if prev.Alive() {
		next = 0
	}
	s.grid.Put(o, next)
	return prev
}

// View runs fn with the grid read-locked.
func (s *Life) View(fn func(g *core.SparseGrid)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.grid)
}

// Snapshot returns a copy of the grid.
func (s *Life) Snapshot() *core.SparseGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Clone()
}

// Checkpoint remembers the current grid and generation.
func (s *Life) Checkpoint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkpoint = s.grid.Clone()
	s.checkpointGen = s.generation
	s.log.Info("checkpoint", "generation", s.generation, "live", s.grid.Len())
}

// HasCheckpoint reports whether Rewind has something to restore.
func (s *Life) HasCheckpoint() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkpoint != nil
}

// Rewind restores the last checkpoint. It reports false when none exists.
// The checkpoint is kept so it can be restored again.
func (s *Life) Rewind() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkpoint == nil {
		return false
	}
	s.grid = s.checkpoint.Clone()
	s.generation = s.checkpointGen
	s.log.Info("rewind", "generation", s.generation, "live", s.grid.Len())
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		s, err := New(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
