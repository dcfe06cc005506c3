package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/spawn-go/core/metrics"
	"github.com/codewandler/spawn-go/core/race"
)

// raceMetrics implements race.Metrics using Prometheus.
type raceMetrics struct {
	startedTotal   *prometheus.CounterVec
	finishedTotal  *prometheus.CounterVec
	running        prometheus.Gauge
	memberLifetime *prometheus.HistogramVec
}

// NewRaceMetrics creates a new Prometheus implementation of race.Metrics.
func NewRaceMetrics(reg prometheus.Registerer) race.Metrics {
	m := &raceMetrics{
		startedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_race_members_started_total",
			Help: "Total number of race members forked",
		}, []string{"name"}),

		finishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_race_members_finished_total",
			Help: "Total number of race members that terminated",
		}, []string{"name", "success"}),

		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "spawn_race_members_running",
			Help: "Number of live race members",
		}),

		memberLifetime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spawn_race_member_lifetime_seconds",
			Help:    "Member lifetime from fork to termination in seconds",
			Buckets: defaultBuckets,
		}, []string{"name"}),
	}

	reg.MustRegister(
		m.startedTotal,
		m.finishedTotal,
		m.running,
		m.memberLifetime,
	)

	return m
}

func (m *raceMetrics) MemberStarted(name string) {
	m.startedTotal.WithLabelValues(name).Inc()
}

func (m *raceMetrics) MemberFinished(name string, success bool) {
	m.finishedTotal.WithLabelValues(name, boolToStr(success)).Inc()
}

func (m *raceMetrics) MembersRunning(count int) {
	m.running.Set(float64(count))
}

func (m *raceMetrics) MemberLifetime(name string) metrics.Timer {
	return newTimer(m.memberLifetime.WithLabelValues(name))
}

var _ race.Metrics = (*raceMetrics)(nil)
