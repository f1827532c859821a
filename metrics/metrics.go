// Package metrics holds the Prometheus collectors shared by the engine,
// the dispatch matcher and the call simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for CallsTotal.
const (
	OutcomeServed   = "served"
	OutcomeDeclined = "declined"
	OutcomeUnserved = "unserved"
	OutcomeFailed   = "failed"
)

var (
	EngineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxisim_engine_runs_total",
		Help: "Shortest-path engine runs, labelled by status (ok, negative_edge, error).",
	}, []string{"status"})

	EngineRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "taxisim_engine_run_duration_seconds",
		Help:    "Wall time of a single shortest-path engine run.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	CandidatesEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxisim_candidates_evaluated_total",
		Help: "Candidates evaluated by the dispatch matcher, labelled by direction.",
	}, []string{"direction"})

	TiedMatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taxisim_tied_matches_total",
		Help: "Matches whose result set contains an equal-cost ambiguous route.",
	})

	CallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxisim_calls_total",
		Help: "Simulated client calls, labelled by outcome.",
	}, []string{"outcome"})

	FareAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "taxisim_fare_amount",
		Help:    "Amount due per served call, in currency units.",
		Buckets: []float64{10, 15, 20, 30, 50, 75, 100, 200, 500},
	})
)
