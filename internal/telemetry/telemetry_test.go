package telemetry

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/core"
)

func TestRunIDIsUUID(t *testing.T) {
	id := NewRunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewRunID())
}

func TestCSVHeaderWrittenOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVStream[GenerationRecord](&buf)
	st := core.Stats{Generation: 1, Births: 2, Deaths: 1, Live: 3, Scanned: 30}
	require.NoError(t, w.Write(NewGenerationRecord("r", "life", st, 1500*time.Microsecond)))
	st.Generation = 2
	require.NoError(t, w.Write(NewGenerationRecord("r", "life", st, time.Millisecond)))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "run_id,sim,generation,live,births,deaths,scanned,step_us", lines[0])
	assert.Equal(t, "r,life,1,3,2,1,30,1500", lines[1])
	assert.Equal(t, "r,life,2,3,2,1,30,1000", lines[2])
}

func TestCSVFileReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sweep.csv")
	w, err := NewCSVWriter[SweepRecord](path)
	require.NoError(t, err)
	want := []SweepRecord{
		{RunID: "a", Rule: "B3/S23", Tile: "quad", Seed: 1, Generations: 10, InitialLive: 5, FinalLive: 0, PeakLive: 6, ExtinctAt: 4},
		{RunID: "a", Rule: "B2/S34", Tile: "hex", Seed: 1, Generations: 10, InitialLive: 5, FinalLive: 9, PeakLive: 12, ExtinctAt: -1},
	}
	require.NoError(t, w.Write(want[0]))
	require.NoError(t, w.Write(want[1]))
	require.NoError(t, w.Close())

	got, err := ReadCSV[SweepRecord](path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNilCSVWriterDiscards(t *testing.T) {
	w, err := NewCSVWriter[GenerationRecord]("")
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, w.Write(GenerationRecord{}))
	assert.NoError(t, w.Close())
}

func TestMetricsObserve(t *testing.T) {
	m := NewMetrics("life", "run-1")
	m.Observe(core.Stats{Generation: 1, Births: 3, Deaths: 1, Live: 7, Scanned: 40}, time.Millisecond)
	m.Observe(core.Stats{Generation: 2, Births: 1, Deaths: 4, Live: 4, Scanned: 36}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generation))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.live))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.births))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.deaths))
	assert.Equal(t, 76.0, testutil.ToFloat64(m.scanned))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Observe(core.Stats{}, 0) })
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics("briansbrain", "run-2")
	m.Observe(core.Stats{Generation: 5, Live: 11}, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `tilelife_live_cells{run="run-2",sim="briansbrain"} 11`)
	assert.Contains(t, body, "tilelife_step_seconds_count")
}

func TestMetricsServeStopsOnCancel(t *testing.T) {
	m := NewMetrics("life", "run-3")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.serve(ctx, ln, core.NopLogger()) }()

	url := "http://" + ln.Addr().String() + "/metrics"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && strings.Contains(string(b), "tilelife_generation")
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}
