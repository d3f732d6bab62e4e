package config

import "flag"

// Flags holds command-line overrides registered on a FlagSet. Only flags
// the user actually set are copied by Apply, so file values survive for
// everything else.
type Flags struct {
	fs   *flag.FlagSet
	path string
	v    *Config
}

// Bind registers the override flags on fs. Flag defaults show the embedded
// defaults.
func Bind(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, v: Default()}
	v := f.v
	fs.StringVar(&f.path, "config", "", "YAML config file, defaults to $"+EnvPath)
	fs.StringVar(&v.Sim.Name, "sim", v.Sim.Name, "simulation name")
	fs.StringVar(&v.Sim.Tile, "tile", v.Sim.Tile, "tile kind: hex or quad")
	fs.StringVar(&v.Sim.Layout, "layout", v.Sim.Layout, "hex layout: odd-r, even-r, odd-q, even-q")
	fs.Float64Var(&v.Sim.Side, "side", v.Sim.Side, "tile side length in pixels")
	fs.StringVar(&v.Sim.Rule, "rule", v.Sim.Rule, "life rule, e.g. B3/S23 or hexlife")
	fs.Int64Var(&v.Sim.Seed, "seed", v.Sim.Seed, "random soup seed")
	fs.Float64Var(&v.Sim.Density, "density", v.Sim.Density, "initial live fraction")
	fs.IntVar(&v.Sim.Radius, "radius", v.Sim.Radius, "soup half-width in tiles")
	fs.IntVar(&v.Run.Generations, "generations", v.Run.Generations, "generations to run headless")
	fs.Float64Var(&v.Run.Rate, "rate", v.Run.Rate, "generations per second, 0 for unthrottled")
	fs.IntVar(&v.View.Width, "width", v.View.Width, "viewport width in pixels")
	fs.IntVar(&v.View.Height, "height", v.View.Height, "viewport height in pixels")
	fs.StringVar(&v.Output.CSV, "csv", v.Output.CSV, "per generation CSV output path")
	fs.StringVar(&v.Output.PNG, "png", v.Output.PNG, "PNG frame path, %d is replaced by the generation")
	fs.IntVar(&v.Output.PNGEvery, "png-every", v.Output.PNGEvery, "write a frame every n generations")
	fs.StringVar(&v.Telemetry.MetricsAddr, "metrics-addr", v.Telemetry.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&v.Log.Level, "log-level", v.Log.Level, "debug, info, warn or error")
	return f
}

// Load reads the file named by -config, applies the other flags on top and
// validates the result. Call it after the FlagSet is parsed.
func (f *Flags) Load() (*Config, error) {
	cfg, err := load(f.path)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every explicitly set flag onto c.
func (f *Flags) Apply(c *Config) {
	v := f.v
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "sim":
			c.Sim.Name = v.Sim.Name
		case "tile":
			c.Sim.Tile = v.Sim.Tile
		case "layout":
			c.Sim.Layout = v.Sim.Layout
		case "side":
			c.Sim.Side = v.Sim.Side
		case "rule":
			c.Sim.Rule = v.Sim.Rule
		case "seed":
			c.Sim.Seed = v.Sim.Seed
		case "density":
			c.Sim.Density = v.Sim.Density
		case "radius":
			c.Sim.Radius = v.Sim.Radius
		case "generations":
			c.Run.Generations = v.Run.Generations
		case "rate":
			c.Run.Rate = v.Run.Rate
		case "width":
			c.View.Width = v.View.Width
		case "height":
			c.View.Height = v.View.Height
		case "csv":
			c.Output.CSV = v.Output.CSV
		case "png":
			c.Output.PNG = v.Output.PNG
		case "png-every":
			c.Output.PNGEvery = v.Output.PNGEvery
		case "metrics-addr":
			c.Telemetry.MetricsAddr = v.Telemetry.MetricsAddr
		case "log-level":
			c.Log.Level = v.Log.Level
		}
	})
}
