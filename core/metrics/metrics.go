// Package metrics defines abstract metric primitives so the core packages
// can be instrumented without depending on a specific backend. The
// Prometheus implementation lives in adapters/prometheus.
package metrics

// Counter is a monotonically increasing metric.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
	// Add increments the counter by delta. delta must be >= 0.
	Add(delta float64)
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	// Set sets the gauge to value.
	Set(value float64)
	// Inc increments the gauge by 1.
	Inc()
	// Dec decrements the gauge by 1.
	Dec()
}

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// TimerFunc creates a new Timer, allowing deferred timing patterns like:
// defer m.MemberLifetime("worker").ObserveDuration()
type TimerFunc func() Timer
