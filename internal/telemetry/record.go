// Package telemetry records per-generation statistics as CSV rows and
// Prometheus metrics.
package telemetry

import (
	"time"

	"github.com/google/uuid"

	"tilelife/internal/core"
)

// NewRunID returns a fresh identifier that tags every row and metric of a
// run.
func NewRunID() string {
	return uuid.NewString()
}

// GenerationRecord is one CSV row per generation.
type GenerationRecord struct {
	RunID      string `csv:"run_id"`
	Sim        string `csv:"sim"`
	Generation int    `csv:"generation"`
	Live       int    `csv:"live"`
	Births     int    `csv:"births"`
	Deaths     int    `csv:"deaths"`
	Scanned    int    `csv:"scanned"`
	StepMicros int64  `csv:"step_us"`
}

// NewGenerationRecord builds a row from step statistics.
func NewGenerationRecord(runID, sim string, st core.Stats, took time.Duration) GenerationRecord {
	return GenerationRecord{
		RunID:      runID,
		Sim:        sim,
		Generation: st.Generation,
		Live:       st.Live,
		Births:     st.Births,
		Deaths:     st.Deaths,
		Scanned:    st.Scanned,
		StepMicros: took.Microseconds(),
	}
}

// SweepRecord summarises one rule of a rule sweep.
type SweepRecord struct {
	RunID       string `csv:"run_id"`
	Rule        string `csv:"rule"`
	Tile        string `csv:"tile"`
	Seed        int64  `csv:"seed"`
	Generations int    `csv:"generations"`
	InitialLive int    `csv:"initial_live"`
	FinalLive   int    `csv:"final_live"`
	PeakLive    int    `csv:"peak_live"`
	Births      int    `csv:"births"`
	Deaths      int    `csv:"deaths"`
	// ExtinctAt is the generation the grid emptied, or -1.
	ExtinctAt int `csv:"extinct_at"`
}
