package life

import (
	"fmt"

	"tilelife/internal/core"
)

// Parameters reports the session's tiling, rule and soup settings.
func (s *Life) Parameters() core.ParameterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := []core.ParameterGroup{
		{
			Name: "Tiling",
			Params: []core.Parameter{
				core.StringParam("tile", "Tile", s.tile.Kind().String()),
				core.FloatParam("side", "Side", s.tile.SideLen()),
			},
		},
		{
			Name:   "Rule",
			Params: []core.Parameter{core.StringParam("rule", "Rule", fmt.Sprint(s.rule))},
		},
		{
			Name: "Soup",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.cfg.Seed),
				core.FloatParam("density", "Density", s.cfg.Density),
				core.IntParam("radius", "Radius", s.cfg.Radius),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("live", "Live cells", s.grid.Len()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the soup settings adjustable from the HUD. They
// take effect on the next reset.
func (s *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Step: 4, Min: 1, Max: 512, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point soup setting.
func (s *Life) SetFloatParameter(key string, value float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "density":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.Density = value
		return true
	}
	return false
}

// SetIntParameter updates an integer soup setting.
func (s *Life) SetIntParameter(key string, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "radius":
		if value < 0 {
			return false
		}
		s.cfg.Radius = value
		return true
	}
	return false
}
