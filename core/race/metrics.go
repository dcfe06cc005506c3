package race

import "github.com/codewandler/spawn-go/core/metrics"

// Metrics is the instrumentation interface for the race pillar.
// All methods are safe for concurrent use.
type Metrics interface {
	MemberStarted(name string)
	MemberFinished(name string, success bool)
	MembersRunning(count int)
	MemberLifetime(name string) metrics.Timer
}

type nopMetrics struct{}

func (nopMetrics) MemberStarted(string)                {}
func (nopMetrics) MemberFinished(string, bool)         {}
func (nopMetrics) MembersRunning(int)                  {}
func (nopMetrics) MemberLifetime(string) metrics.Timer { return metrics.NopTimer() }

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
