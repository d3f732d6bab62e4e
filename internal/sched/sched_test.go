package sched

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilelife/internal/core"
)

type countingStepper struct {
	n atomic.Int64
}

func (c *countingStepper) Step() core.Stats {
	return core.Stats{Generation: int(c.n.Add(1))}
}

func TestNewRejectsBadRates(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := New(&countingStepper{}, rate)
		assert.True(t, errors.Is(err, ErrInvalidRate), "rate %v", rate)
	}
	s, err := New(&countingStepper{}, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4, s.Rate(), 1e-9)
	assert.True(t, errors.Is(s.SetRate(0), ErrInvalidRate))
	require.NoError(t, s.SetRate(0.5))
	assert.InDelta(t, 0.5, s.Rate(), 1e-9)
}

func TestRunStopsAtLimit(t *testing.T) {
	st := &countingStepper{}
	var seen []int
	s, err := New(st, 1000, WithLimit(5), WithObserver(func(stats core.Stats) {
		seen = append(seen, stats.Generation)
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, int64(5), st.n.Load())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	assert.Equal(t, 5, s.Steps())
}

func TestRunCancellation(t *testing.T) {
	st := &countingStepper{}
	s, err := New(st, 500)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return st.n.Load() >= 3 }, 5*time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	stopped := st.n.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, st.n.Load(), "no steps after Run returns")
}

func TestPauseResume(t *testing.T) {
	st := &countingStepper{}
	s, err := New(st, 500)
	require.NoError(t, err)
	s.Pause()
	assert.True(t, s.Paused())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, st.n.Load(), "paused scheduler must not step")

	s.Resume()
	assert.False(t, s.Paused())
	require.Eventually(t, func() bool { return st.n.Load() > 0 }, 5*time.Second, time.Millisecond)
}
