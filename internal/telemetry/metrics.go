package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tilelife/internal/core"
)

const namespace = "tilelife"

// Metrics exports step statistics. Each instance owns its registry so
// several runs, or tests, never collide on the global one.
type Metrics struct {
	reg *prometheus.Registry

	generation prometheus.Gauge
	live       prometheus.Gauge
	births     prometheus.Counter
	deaths     prometheus.Counter
	scanned    prometheus.Counter
	stepTime   prometheus.Histogram
}

// NewMetrics registers the collectors, labelled with the sim and run.
func NewMetrics(sim, runID string) *Metrics {
	labels := prometheus.Labels{"sim": sim, "run": runID}
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "generation",
			Help:        "Current generation number.",
			ConstLabels: labels,
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "live_cells",
			Help:        "Cells in a non-zero state.",
			ConstLabels: labels,
		}),
		births: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "births_total",
			Help:        "Cells that turned on.",
			ConstLabels: labels,
		}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "deaths_total",
			Help:        "Cells that turned off.",
			ConstLabels: labels,
		}),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "scanned_cells_total",
			Help:        "Cells evaluated by the generation scan.",
			ConstLabels: labels,
		}),
		stepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "step_seconds",
			Help:        "Wall time of one generation step.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	m.reg.MustRegister(
		m.generation, m.live, m.births, m.deaths, m.scanned, m.stepTime,
		collectors.NewGoCollector(),
	)
	return m
}

// Observe records one step. A nil receiver does nothing.
func (m *Metrics) Observe(st core.Stats, took time.Duration) {
	if m == nil {
		return
	}
	m.generation.Set(float64(st.Generation))
	m.live.Set(float64(st.Live))
	m.births.Add(float64(st.Births))
	m.deaths.Add(float64(st.Deaths))
	m.scanned.Add(float64(st.Scanned))
	m.stepTime.Observe(took.Seconds())
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen: %w", err)
	}
	return m.serve(ctx, ln, log)
}

func (m *Metrics) serve(ctx context.Context, ln net.Listener, log *slog.Logger) error {
	if log == nil {
		log = core.Logger()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	log.Info("metrics listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	return nil
}
