package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/spawn-go/core/critical"
)

// criticalMetrics implements critical.Metrics using Prometheus.
//
// The failed counter is of limited use on its own host, since a failure
// terminates the process, but it is scraped in time often enough to be
// worth having, and started counts are useful regardless.
type criticalMetrics struct {
	startedTotal *prometheus.CounterVec
	failedTotal  *prometheus.CounterVec
}

// NewCriticalMetrics creates a new Prometheus implementation of critical.Metrics.
func NewCriticalMetrics(reg prometheus.Registerer) critical.Metrics {
	m := &criticalMetrics{
		startedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_critical_started_total",
			Help: "Total number of critical goroutines started",
		}, []string{"name"}),

		failedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_critical_failed_total",
			Help: "Total number of critical goroutine failures",
		}, []string{"name"}),
	}

	reg.MustRegister(m.startedTotal, m.failedTotal)

	return m
}

func (m *criticalMetrics) Started(name string) {
	m.startedTotal.WithLabelValues(name).Inc()
}

func (m *criticalMetrics) Failed(name string) {
	m.failedTotal.WithLabelValues(name).Inc()
}

var _ critical.Metrics = (*criticalMetrics)(nil)
