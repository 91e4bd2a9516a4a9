// Package metrics exports shortest-path engine statistics as Prometheus
// collectors.
//
// A Recorder is attached to engines through dijkstra.WithOnFinish:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewRecorder(reg)
//	engine := dijkstra.New[string](rec.Option())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// Namespace prefixes every metric name.
const Namespace = "lvpath"

// Recorder holds the collectors fed by engine runs. All collectors are
// labelled by run mode (single_target, all_targets).
type Recorder struct {
	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	NodesSettled  *prometheus.HistogramVec
	Relaxations   *prometheus.HistogramVec
	UnreachedLast *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them with reg.
// It panics if registration fails, like promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	modeLabel := []string{"mode"}

	return &Recorder{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "runs_total",
				Help:      "Total number of completed shortest-path runs",
			},
			modeLabel,
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "run_duration_seconds",
				Help:      "Shortest-path run duration in seconds",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
			},
			modeLabel,
		),
		NodesSettled: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "nodes_settled",
				Help:      "Number of nodes settled per run",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
			},
			modeLabel,
		),
		Relaxations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "relaxations",
				Help:      "Number of successful edge relaxations per run",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
			},
			modeLabel,
		),
		UnreachedLast: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "unreached_nodes",
				Help:      "Nodes left unreached by the most recent run",
			},
			modeLabel,
		),
	}
}

// Observe records one run.
func (r *Recorder) Observe(s dijkstra.Stats) {
	mode := string(s.Mode)
	r.RunsTotal.WithLabelValues(mode).Inc()
	r.RunDuration.WithLabelValues(mode).Observe(s.Elapsed.Seconds())
	r.NodesSettled.WithLabelValues(mode).Observe(float64(s.Settled))
	r.Relaxations.WithLabelValues(mode).Observe(float64(s.Relaxed))
	r.UnreachedLast.WithLabelValues(mode).Set(float64(s.Nodes - s.Reached))
}

// Option returns the engine option that feeds this recorder.
func (r *Recorder) Option() dijkstra.Option {
	return dijkstra.WithOnFinish(r.Observe)
}
