// Package metrics is the ambient prometheus registry (§9: the core itself
// takes no metrics dependency and is fully testable without one). It
// counts scheduling calls by solver_status and observes solve duration,
// exposed at GET /metrics on the same gin engine internal/api builds.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the HTTP driver records against; the CLI
// driver records no metrics.
type Registry struct {
	reg *prometheus.Registry

	scheduleTotal    *prometheus.CounterVec
	scheduleDuration prometheus.Histogram
}

// New builds a Registry with its own prometheus.Registry rather than the
// global default, so tests can construct one without colliding with
// process-wide registration.
func New() *Registry {
	r := &Registry{reg: prometheus.NewRegistry()}

	r.scheduleTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roundtable_schedule_total",
		Help: "Total number of schedule calls, labeled by solver_status.",
	}, []string{"solver_status"})

	r.scheduleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roundtable_schedule_duration_seconds",
		Help:    "Wall-clock duration of schedule calls.",
		Buckets: prometheus.DefBuckets,
	})

	r.reg.MustRegister(r.scheduleTotal, r.scheduleDuration)
	return r
}

// Gatherer exposes the underlying prometheus.Gatherer for promhttp.Handler.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveSchedule records one schedule call's outcome and duration.
func (r *Registry) ObserveSchedule(solverStatus string, duration time.Duration) {
	r.scheduleTotal.WithLabelValues(solverStatus).Inc()
	r.scheduleDuration.Observe(duration.Seconds())
}
