package briansbrain

import (
	"tilelife/internal/core"
	"tilelife/internal/sims/life"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Rule implements Brian's Brain: firing cells start dying, dying cells die,
// and a dead cell fires when exactly two neighbours are firing.
type Rule struct{}

// Next returns the state following state given the neighbour states.
func (Rule) Next(state int, neighbors []int) int {
	switch state {
	case stateOn:
		return stateDying
	case stateDying:
		return stateDead
	}
	firing := 0
	for _, s := range neighbors {
		if s == stateOn {
			firing++
		}
	}
	if firing == 2 {
		return stateOn
	}
	return stateDead
}

func (Rule) String() string { return "brians-brain" }

// DefaultConfig seeds a sparser soup than Life since every firing cell
// lights up its surroundings.
func DefaultConfig() life.Config {
	c := life.DefaultConfig()
	c.Rule = Rule{}.String()
	c.Density = 0.125
	return c
}

// New creates a Brian's Brain session on the configured tiling.
func New(cfg life.Config, opts ...life.Option) (*life.Life, error) {
	tile, err := cfg.NewTile()
	if err != nil {
		return nil, err
	}
	opts = append([]life.Option{life.WithConfig(cfg)}, opts...)
	return life.NewWithRule("briansbrain", tile, Rule{}, opts...), nil
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) (core.Sim, error) {
		c := DefaultConfig()
		if len(cfg) > 0 {
			parsed, err := life.FromMap(cfg)
			if err != nil {
				return nil, err
			}
			if _, ok := cfg["density"]; !ok {
				parsed.Density = c.Density
			}
			c = parsed
		}
		s, err := New(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
