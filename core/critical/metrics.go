package critical

// Metrics is the instrumentation interface for the critical pillar.
// All methods are safe for concurrent use.
type Metrics interface {
	Started(name string)
	Failed(name string)
}

type nopMetrics struct{}

func (nopMetrics) Started(string) {}
func (nopMetrics) Failed(string)  {}

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
