package main

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"tilelife/internal/sims/life"
	"tilelife/internal/telemetry"
)

// sweep runs every rule over the same soup and returns the summaries ranked
// by final population, largest first. Ties keep the input order.
func sweep(ctx context.Context, base life.Config, rules []string, steps, workers int) ([]telemetry.SweepRecord, error) {
	if workers < 1 {
		workers = 1
	}
	runID := telemetry.NewRunID()
	results := make([]telemetry.SweepRecord, len(rules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rule := range rules {
		g.Go(func() error {
			cfg := base
			cfg.Rule = rule
			res, err := runRule(ctx, cfg, steps)
			if err != nil {
				return err
			}
			res.RunID = runID
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(results, func(a, b telemetry.SweepRecord) int {
		return cmp.Compare(b.FinalLive, a.FinalLive)
	})
	return results, nil
}

// runRule simulates one rule for steps generations, stopping early once the
// grid is empty.
func runRule(ctx context.Context, cfg life.Config, steps int) (telemetry.SweepRecord, error) {
	sim, err := life.New(cfg)
	if err != nil {
		return telemetry.SweepRecord{}, err
	}
	sim.Reset(cfg.Seed)

	res := telemetry.SweepRecord{
		Rule:        fmt.Sprint(sim.Rule()),
		Tile:        sim.Tile().Kind().String(),
		Seed:        cfg.Seed,
		InitialLive: sim.Live(),
		PeakLive:    sim.Live(),
		ExtinctAt:   -1,
	}
	if res.InitialLive == 0 {
		res.ExtinctAt = 0
	}
	for step := 0; step < steps && res.ExtinctAt < 0; step++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		st := sim.Step()
		res.Births += st.Births
		res.Deaths += st.Deaths
		res.PeakLive = max(res.PeakLive, st.Live)
		if st.Live == 0 {
			res.ExtinctAt = st.Generation
		}
	}
	res.Generations = sim.Generation()
	res.FinalLive = sim.Live()
	return res, nil
}
