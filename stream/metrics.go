// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// metrics.go — prometheus instruments of the service.
//
// Registration policy:
//   • All instruments live under tourbound_stream_*.
//   • NewMetrics registers on the given Registerer; each Service owns a
//     private registry so instances (and tests) never collide.

package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "tourbound"
	metricsSubsystem = "stream"
)

// Outcome labels of solves_total.
const (
	// OutcomeOptimal marks a solve that produced an optimal tour.
	OutcomeOptimal = "optimal"

	// OutcomeInfeasible marks a clean solve with no feasible tour
	// (under 2 cities, or no finite cycle through the source).
	OutcomeInfeasible = "infeasible"

	// OutcomeError marks a solve that failed outright (bad input caught
	// late, or canceled mid-search).
	OutcomeError = "error"
)

// Metrics bundles the prometheus instruments of one Service instance.
type Metrics struct {
	// SolvesTotal counts completed solve requests by outcome.
	// Labels: outcome (optimal, infeasible, error).
	SolvesTotal *prometheus.CounterVec

	// SolveDuration observes wall-clock duration of synchronous solves.
	SolveDuration prometheus.Histogram

	// WSReplaysTotal counts websocket replay sessions started.
	WSReplaysTotal prometheus.Counter

	// RunsStored tracks how many runs the store currently holds.
	RunsStored prometheus.Gauge
}

// NewMetrics creates and registers the service instruments on reg.
// Registering twice on the same registry panics (promauto semantics), so
// pass a fresh registry per instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SolvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "solves_total",
				Help:      "Completed solve requests by outcome.",
			},
			[]string{"outcome"},
		),
		SolveDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock duration of synchronous solves.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		WSReplaysTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "ws_replays_total",
				Help:      "Websocket replay sessions started.",
			},
		),
		RunsStored: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "runs_stored",
				Help:      "Runs currently held in the in-memory store.",
			},
		),
	}
}
