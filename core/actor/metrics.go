package actor

import "github.com/codewandler/spawn-go/core/metrics"

// Metrics is the instrumentation interface for the actor pillar.
// All methods are safe for concurrent use.
type Metrics interface {
	// Mailbox
	MailboxDepth(id string, depth int)
	MessageDelivered(id string)

	// Processing loop
	MessageHandled(id string, success bool)
	HandleDuration(id string) metrics.Timer
}

// nopMetrics is a no-op implementation of Metrics.
type nopMetrics struct{}

func (nopMetrics) MailboxDepth(string, int)            {}
func (nopMetrics) MessageDelivered(string)             {}
func (nopMetrics) MessageHandled(string, bool)         {}
func (nopMetrics) HandleDuration(string) metrics.Timer { return metrics.NopTimer() }

// NopMetrics returns a no-op Metrics implementation.
func NopMetrics() Metrics { return nopMetrics{} }
