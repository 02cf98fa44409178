// Package metrics records maze search outcomes as Prometheus collectors.
//
// Recorder implements search.Observer, so wiring it in is one option:
//
//	rec := metrics.NewRecorder(prometheus.NewRegistry())
//	res, err := search.Solve(g, search.BFS, search.WithObserver(rec))
//
// Exported series:
//
//   - mazepath_solves_total{strategy,outcome}        counter
//   - mazepath_explored_nodes{strategy}               histogram
//   - mazepath_solution_length{strategy}              histogram (solved only)
//   - mazepath_solve_duration_seconds{strategy}       histogram
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazepath/search"
)

const namespace = "mazepath"

// Recorder holds the search collectors. Safe for concurrent use.
type Recorder struct {
	solves   *prometheus.CounterVec
	explored *prometheus.HistogramVec
	length   *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors, useful in tests.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total maze solves by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		explored: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "explored_nodes",
			Help:      "Nodes removed from the frontier per solve",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		length: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solution_length",
			Help:      "Moves in the returned route for solved mazes",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"strategy"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time spent in one solve",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
	}
}

// ObserveSolve implements search.Observer.
func (r *Recorder) ObserveSolve(rep search.Report) {
	strategy := rep.Strategy.String()
	r.solves.WithLabelValues(strategy, string(rep.Outcome)).Inc()
	r.explored.WithLabelValues(strategy).Observe(float64(rep.ExploredCount))
	r.duration.WithLabelValues(strategy).Observe(rep.Elapsed.Seconds())
	if rep.Outcome == search.OutcomeSolved {
		r.length.WithLabelValues(strategy).Observe(float64(rep.PathLength))
	}
}

var _ search.Observer = (*Recorder)(nil)
