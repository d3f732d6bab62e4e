// Package sched steps a simulation at a fixed generations-per-second rate.
package sched

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tilelife/internal/core"
)

// ErrInvalidRate is returned for non-positive or non-finite rates.
var ErrInvalidRate = errors.New("sched: invalid rate")

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step() core.Stats
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers a callback run after every step, outside the
// scheduler lock.
func WithObserver(fn func(core.Stats)) Option {
	return func(s *Scheduler) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithLimit stops Run after n generations. Zero means no limit.
func WithLimit(n int) Option {
	return func(s *Scheduler) { s.limit = n }
}

// Scheduler calls Step on a Stepper at a steady rate until its context is
// cancelled. A step that has started always completes.
type Scheduler struct {
	stepper   Stepper
	observers []func(core.Stats)
	limit     int
	log       *slog.Logger

	mu       sync.Mutex
	interval time.Duration
	paused   bool
	wake     chan struct{}
	steps    int
}

// New returns a scheduler stepping s at rate generations per second.
func New(s Stepper, rate float64, opts ...Option) (*Scheduler, error) {
	interval, err := intervalFor(rate)
	if err != nil {
		return nil, err
	}
	sc := &Scheduler{
		stepper:  s,
		interval: interval,
		wake:     make(chan struct{}, 1),
		log:      core.Logger(),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc, nil
}

func intervalFor(rate float64) (time.Duration, error) {
	if !(rate > 0) || rate > float64(time.Second) {
		return 0, fmt.Errorf("%w: %v generations per second", ErrInvalidRate, rate)
	}
	return time.Duration(float64(time.Second) / rate), nil
}

// SetRate changes the generations-per-second rate. It takes effect from the
// next tick.
func (s *Scheduler) SetRate(rate float64) error {
	interval, err := intervalFor(rate)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.interval = interval
	s.mu.Unlock()
	s.signal()
	return nil
}

// Rate returns the current generations-per-second rate.
func (s *Scheduler) Rate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(time.Second) / float64(s.interval)
}

// Pause stops stepping until Resume is called.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume restarts stepping after Pause.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	s.signal()
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Steps returns how many generations Run has stepped.
func (s *Scheduler) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run steps until ctx is done or the step limit is reached. It returns nil
// when the limit is reached and ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	interval := s.interval
	s.mu.Unlock()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.log.Info("scheduler started", "rate", s.Rate())

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped", "steps", s.Steps(), "reason", ctx.Err())
			return ctx.Err()
		case <-s.wake:
			s.mu.Lock()
			if s.interval != interval {
				interval = s.interval
				ticker.Reset(interval)
			}
			s.mu.Unlock()
			continue
		case <-ticker.C:
		}

		if s.Paused() {
			continue
		}
		stats := s.stepper.Step()
		s.mu.Lock()
		s.steps++
		done := s.limit > 0 && s.steps >= s.limit
		s.mu.Unlock()
		for _, fn := range s.observers {
			fn(stats)
		}
		if done {
			s.log.Info("scheduler finished", "steps", s.limit)
			return nil
		}
	}
}
