package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tilelife/internal/config"
	"tilelife/internal/core"
	"tilelife/internal/render"
	"tilelife/internal/sched"
	"tilelife/internal/telemetry"
)

// summary describes a finished run.
type summary struct {
	RunID      string
	Generation int
	Live       int
	Births     int
	Deaths     int
	Frames     int
	Elapsed    time.Duration
}

// runner owns the outputs of one headless run.
type runner struct {
	cfg      *config.Config
	sim      core.Sim
	runID    string
	log      *slog.Logger
	csv      *telemetry.CSVWriter[telemetry.GenerationRecord]
	metrics  *telemetry.Metrics
	renderer *render.Renderer

	sum    summary
	outErr error
	cancel context.CancelFunc
}

// timedStepper records how long each step takes.
type timedStepper struct {
	sim  core.Sim
	took time.Duration
}

func (t *timedStepper) Step() core.Stats {
	start := time.Now()
	st := t.sim.Step()
	t.took = time.Since(start)
	return st
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) (summary, error) {
	if log == nil {
		log = core.Logger()
	}
	runID := telemetry.NewRunID()
	log = log.With("run", runID)

	factory, ok := core.Sims()[cfg.Sim.Name]
	if !ok {
		return summary{}, fmt.Errorf("unknown sim %q (have %v)", cfg.Sim.Name, core.SimNames())
	}
	sim, err := factory(cfg.SimMap())
	if err != nil {
		return summary{}, fmt.Errorf("sim %s: %w", cfg.Sim.Name, err)
	}
	sim.Reset(cfg.Sim.Seed)
	if cp, ok := sim.(core.Checkpointer); ok && cfg.Run.Checkpoint {
		cp.Checkpoint()
	}

	r := &runner{cfg: cfg, sim: sim, runID: runID, log: log}
	r.sum.RunID = runID
	if err := r.openOutputs(); err != nil {
		return r.sum, err
	}
	defer r.csv.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.cancel = cancel

	g, gctx := errgroup.WithContext(ctx)
	if r.metrics != nil {
		g.Go(func() error {
			return r.metrics.Serve(gctx, cfg.Telemetry.MetricsAddr, log)
		})
	}
	start := time.Now()
	g.Go(func() error {
		defer cancel()
		err := r.loop(gctx)
		if errors.Is(err, context.Canceled) {
			log.Info("run interrupted", "generation", sim.Generation())
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return r.sum, err
	}
	r.sum.Elapsed = time.Since(start)

	if err := r.outErr; err != nil {
		return r.sum, err
	}
	if cfg.Output.PNG != "" {
		if err := r.frame(); err != nil {
			return r.sum, err
		}
	}
	sim.View(func(grid *core.SparseGrid) { r.sum.Live = grid.Len() })
	r.sum.Generation = sim.Generation()
	return r.sum, nil
}

func (r *runner) openOutputs() error {
	csv, err := telemetry.NewCSVWriter[telemetry.GenerationRecord](r.cfg.Output.CSV)
	if err != nil {
		return err
	}
	r.csv = csv
	if path := r.cfg.Output.CSV; path != "" {
		cfgPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".config.yaml"
		if err := r.cfg.WriteYAML(cfgPath); err != nil {
			return fmt.Errorf("writing run config: %w", err)
		}
	}
	if r.cfg.Telemetry.MetricsAddr != "" {
		r.metrics = telemetry.NewMetrics(r.sim.Name(), r.runID)
	}
	if r.cfg.Output.PNG != "" {
		pal, err := render.ParsePalette(r.cfg.View.DeadColor, r.cfg.View.LiveColor, r.cfg.View.DyingColor, r.cfg.View.GridColor)
		if err != nil {
			return err
		}
		view := render.NewViewport(r.sim.Tile(), float64(r.cfg.View.Width), float64(r.cfg.View.Height))
		r.sim.View(func(g *core.SparseGrid) { view.CenterOn(g.LiveRectangle()) })
		r.renderer = render.NewRenderer(view)
		r.renderer.Palette = pal
		r.renderer.Options.GridLines = r.cfg.View.GridLines
	}
	return nil
}

// loop steps the sim, paced by the scheduler when a rate is configured.
func (r *runner) loop(ctx context.Context) error {
	ts := &timedStepper{sim: r.sim}
	limit := r.cfg.Run.Generations
	if r.cfg.Run.Rate > 0 {
		s, err := sched.New(ts, r.cfg.Run.Rate,
			sched.WithLogger(r.log),
			sched.WithLimit(limit),
			sched.WithObserver(func(st core.Stats) { r.observe(st, ts.took) }),
		)
		if err != nil {
			return err
		}
		return s.Run(ctx)
	}
	for i := 0; limit == 0 || i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.observe(ts.Step(), ts.took)
	}
	return nil
}

// observe records one step. The first output error stops the run.
func (r *runner) observe(st core.Stats, took time.Duration) {
	r.sum.Births += st.Births
	r.sum.Deaths += st.Deaths
	r.metrics.Observe(st, took)
	if r.outErr != nil {
		return
	}
	err := r.csv.Write(telemetry.NewGenerationRecord(r.runID, r.sim.Name(), st, took))
	if err == nil && r.renderer != nil && r.cfg.Output.PNGEvery > 0 && st.Generation%r.cfg.Output.PNGEvery == 0 {
		err = r.frame()
	}
	if err != nil {
		r.outErr = err
		r.cancel()
		return
	}
	r.log.Debug("generation", "generation", st.Generation, "live", st.Live, "took", took)
}

// frame writes the current grid to the PNG path.
func (r *runner) frame() error {
	path := framePath(r.cfg.Output.PNG, r.sim.Generation())
	var err error
	r.sim.View(func(g *core.SparseGrid) {
		if r.cfg.View.KeepCentered {
			r.renderer.View.CenterOn(g.LiveRectangle())
		}
		err = r.renderer.SavePNG(path, g)
	})
	if err != nil {
		return fmt.Errorf("frame %s: %w", path, err)
	}
	r.sum.Frames++
	return nil
}

// framePath substitutes the generation for %d in pattern.
func framePath(pattern string, generation int) string {
	return strings.Replace(pattern, "%d", strconv.Itoa(generation), 1)
}
