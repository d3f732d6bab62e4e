package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/config"
	"tilelife/internal/core"
	"tilelife/internal/telemetry"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Sim.Tile = "quad"
	cfg.Sim.Rule = "B3/S23"
	cfg.Sim.Radius = 8
	cfg.Run.Rate = 0
	cfg.Run.Generations = 6
	cfg.View.Width, cfg.View.Height = 120, 90
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunWritesCSVAndFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.Output.CSV = filepath.Join(dir, "gens.csv")
	cfg.Output.PNG = filepath.Join(dir, "frame-%d.png")
	cfg.Output.PNGEvery = 3

	sum, err := run(context.Background(), cfg, core.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Generation)
	assert.NotEmpty(t, sum.RunID)

	rows, err := telemetry.ReadCSV[telemetry.GenerationRecord](cfg.Output.CSV)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	births, deaths := 0, 0
	for i, row := range rows {
		assert.Equal(t, i+1, row.Generation)
		assert.Equal(t, sum.RunID, row.RunID)
		assert.Equal(t, "life", row.Sim)
		births += row.Births
		deaths += row.Deaths
	}
	assert.Equal(t, sum.Births, births)
	assert.Equal(t, sum.Deaths, deaths)
	assert.Equal(t, sum.Live, rows[5].Live)

	for _, name := range []string{"frame-3.png", "frame-6.png", "gens.config.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	// Generation 6 is written by the schedule and again as the final frame.
	assert.Equal(t, 3, sum.Frames)
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := run(context.Background(), testConfig(t), core.NopLogger())
	require.NoError(t, err)
	b, err := run(context.Background(), testConfig(t), core.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, a.Live, b.Live)
	assert.Equal(t, a.Births, b.Births)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunPacedByScheduler(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.Name = "briansbrain"
	cfg.Sim.Tile = "hex"
	cfg.Run.Rate = 500
	cfg.Run.Generations = 4

	sum, err := run(context.Background(), cfg, core.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Generation)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Run.Generations = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := run(ctx, cfg, core.NopLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Generation)
}

func TestRunUnknownSim(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.Name = "nope"
	_, err := run(context.Background(), cfg, core.NopLogger())
	assert.ErrorContains(t, err, "unknown sim")
}

func TestFramePath(t *testing.T) {
	assert.Equal(t, "out/f-12.png", framePath("out/f-%d.png", 12))
	assert.Equal(t, "last.png", framePath("last.png", 12))
}
