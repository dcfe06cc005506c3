// Package prometheus provides Prometheus implementations of the metrics
// interfaces for all three pillars (Actor, Race, Critical).
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/spawn-go/core/metrics"
)

// timer wraps a Prometheus observer to implement the Timer interface.
type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

// Default histogram buckets for duration metrics (in seconds). Member
// lifetimes run much longer than message handling, so the range is wide.
var defaultBuckets = []float64{
	.001, .01, .1, 1, 10, 60, 600, 3600,
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// AllMetrics holds Prometheus implementations for all three pillars.
type AllMetrics struct {
	Actor    *actorMetrics
	Race     *raceMetrics
	Critical *criticalMetrics
}

// NewAllMetrics creates Prometheus metrics for all three pillars at once.
func NewAllMetrics(reg prometheus.Registerer) *AllMetrics {
	return &AllMetrics{
		Actor:    NewActorMetrics(reg).(*actorMetrics),
		Race:     NewRaceMetrics(reg).(*raceMetrics),
		Critical: NewCriticalMetrics(reg).(*criticalMetrics),
	}
}
