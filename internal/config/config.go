// Package config loads tilelife settings from YAML, layered over embedded
// defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tilelife/internal/geometry"
	"tilelife/internal/rules"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "TILELIFE_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all settings for the runner and the GUI.
type Config struct {
	Sim       SimConfig       `yaml:"sim"`
	Run       RunConfig       `yaml:"run"`
	View      ViewConfig      `yaml:"view"`
	Output    OutputConfig    `yaml:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

// SimConfig selects the automaton, the tiling and the initial soup.
type SimConfig struct {
	Name    string  `yaml:"name"`
	Tile    string  `yaml:"tile"`   // hex or quad
	Layout  string  `yaml:"layout"` // odd-r, even-r, odd-q, even-q
	Side    float64 `yaml:"side"`   // tile side length in pixels
	Rule    string  `yaml:"rule"`   // B3/S23, S23/B3, 23/3 or a preset name
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"` // chance of a soup cell starting alive
	Radius  int     `yaml:"radius"`  // soup half-width around the origin
}

// RunConfig controls stepping.
type RunConfig struct {
	Generations int     `yaml:"generations"` // headless runs stop after this many
	Rate        float64 `yaml:"rate"`        // generations per second, 0 = as fast as possible
	Checkpoint  bool    `yaml:"checkpoint"`  // capture the grid before running
}

// ViewConfig describes the viewport and its colours.
type ViewConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	KeepCentered bool   `yaml:"keep_centered"`
	GridLines    bool   `yaml:"grid_lines"`
	LiveColor    string `yaml:"live_color"`
	DyingColor   string `yaml:"dying_color"`
	DeadColor    string `yaml:"dead_color"`
	GridColor    string `yaml:"grid_color"`
}

// OutputConfig names the files a headless run writes.
type OutputConfig struct {
	CSV      string `yaml:"csv"`       // per generation statistics
	PNG      string `yaml:"png"`       // final frame, or a pattern with %d when png_every > 0
	PNGEvery int    `yaml:"png_every"` // write a frame every n generations
}

// TelemetryConfig enables the Prometheus endpoint.
type TelemetryConfig struct {
	MetricsAddr string `yaml:"metrics_addr"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads configuration from a YAML file, merging it over the embedded
// defaults. An empty path falls back to $TILELIFE_CONFIG, and to the
// defaults alone when that is unset too.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	// Unmarshal into the same struct so only fields present in the file
	// are overwritten.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if strings.TrimSpace(c.Sim.Name) == "" {
		bad("sim.name is empty")
	}
	if _, err := c.Tile(); err != nil {
		bad("sim tiling: %v", err)
	}
	if _, err := rules.Parse(c.Sim.Rule); err != nil && c.Sim.Name == "life" {
		bad("sim.rule: %v", err)
	}
	if c.Sim.Density < 0 || c.Sim.Density > 1 {
		bad("sim.density %v outside [0,1]", c.Sim.Density)
	}
	if c.Sim.Radius < 0 {
		bad("sim.radius %d is negative", c.Sim.Radius)
	}
	if c.Run.Generations < 0 {
		bad("run.generations %d is negative", c.Run.Generations)
	}
	if c.Run.Rate < 0 {
		bad("run.rate %v is negative", c.Run.Rate)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		bad("view size %dx%d must be positive", c.View.Width, c.View.Height)
	}
	if c.Output.PNGEvery < 0 {
		bad("output.png_every %d is negative", c.Output.PNGEvery)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		bad("log.level: %v", err)
	}
	return errors.Join(errs...)
}

// Tile builds the configured tile.
func (c *Config) Tile() (geometry.Tile, error) {
	side := strconv.FormatFloat(c.Sim.Side, 'f', -1, 64)
	if strings.HasPrefix(strings.ToLower(c.Sim.Tile), "hex") {
		return geometry.ParseTile(c.Sim.Tile, c.Sim.Layout, side)
	}
	return geometry.ParseTile(c.Sim.Tile, side)
}

// SimMap renders the sim section as the key/value map sim factories take.
func (c *Config) SimMap() map[string]string {
	return map[string]string{
		"tile":    c.Sim.Tile,
		"layout":  c.Sim.Layout,
		"side":    strconv.FormatFloat(c.Sim.Side, 'f', -1, 64),
		"rule":    c.Sim.Rule,
		"seed":    strconv.FormatInt(c.Sim.Seed, 10),
		"density": strconv.FormatFloat(c.Sim.Density, 'f', -1, 64),
		"radius":  strconv.Itoa(c.Sim.Radius),
	}
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// WriteYAML writes the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
