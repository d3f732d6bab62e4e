package life

import (
	"fmt"
	"strconv"
	"strings"

	"tilelife/internal/core"
	"tilelife/internal/geometry"
	"tilelife/internal/rules"
)

// Config controls the tiling, rule and random soup of a Life session.
type Config struct {
	Tile   string
	Layout string
	Side   float64
	Rule   string

	Seed int64
	// Density is the chance of each cell in the soup starting alive.
	Density float64
	// Radius is the half-width of the square soup centred on the origin.
	Radius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Tile:    "quad",
		Layout:  geometry.DefaultLayout.String(),
		Side:    geometry.DefaultSide,
		Rule:    rules.Conway.String(),
		Seed:    1337,
		Density: 0.3,
		Radius:  24,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unlike a silent fallback, a value that does not parse is
// reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["tile"]; ok {
		c.Tile = strings.TrimSpace(v)
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = strings.TrimSpace(v)
	}
	if v, ok := cfg["side"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || !(parsed > 0) {
			return c, fmt.Errorf("%w: side %q", geometry.ErrConstruction, v)
		}
		c.Side = parsed
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("life: seed %q: %w", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return c, fmt.Errorf("life: density %q must be within [0,1]", v)
		}
		c.Density = parsed
	}
	if v, ok := cfg["radius"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return c, fmt.Errorf("life: radius %q must be a non-negative integer", v)
		}
		c.Radius = parsed
	}
	return c, nil
}

// NewTile builds the configured tile.
func (c Config) NewTile() (geometry.Tile, error) {
	side := strconv.FormatFloat(c.Side, 'f', -1, 64)
	switch strings.ToLower(c.Tile) {
	case "hex", "hexagon":
		return geometry.ParseTile(c.Tile, c.Layout, side)
	default:
		return geometry.ParseTile(c.Tile, side)
	}
}

// ParseRule parses the configured rule string.
func (c Config) ParseRule() (rules.Life, error) {
	return rules.Parse(c.Rule)
}

// SoupRect is the area seeded by Reset.
func (c Config) SoupRect() core.Rect {
	return core.Rect{X: -c.Radius, Y: -c.Radius, W: 2 * c.Radius, H: 2 * c.Radius}
}
