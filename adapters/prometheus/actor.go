package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/spawn-go/core/actor"
	"github.com/codewandler/spawn-go/core/metrics"
)

// actorMetrics implements actor.Metrics using Prometheus.
type actorMetrics struct {
	mailboxDepth   *prometheus.GaugeVec
	deliveredTotal *prometheus.CounterVec
	handledTotal   *prometheus.CounterVec
	handleDuration *prometheus.HistogramVec
}

// NewActorMetrics creates a new Prometheus implementation of actor.Metrics.
func NewActorMetrics(reg prometheus.Registerer) actor.Metrics {
	m := &actorMetrics{
		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "spawn_actor_mailbox_depth",
			Help: "Current mailbox queue depth",
		}, []string{"mailbox"}),

		deliveredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_actor_messages_delivered_total",
			Help: "Total number of messages delivered to the mailbox",
		}, []string{"mailbox"}),

		handledTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawn_actor_messages_handled_total",
			Help: "Total number of messages processed by the loop",
		}, []string{"mailbox", "success"}),

		handleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spawn_actor_handle_duration_seconds",
			Help:    "Message handling time in seconds",
			Buckets: defaultBuckets,
		}, []string{"mailbox"}),
	}

	reg.MustRegister(
		m.mailboxDepth,
		m.deliveredTotal,
		m.handledTotal,
		m.handleDuration,
	)

	return m
}

func (m *actorMetrics) MailboxDepth(id string, depth int) {
	m.mailboxDepth.WithLabelValues(id).Set(float64(depth))
}

func (m *actorMetrics) MessageDelivered(id string) {
	m.deliveredTotal.WithLabelValues(id).Inc()
}

func (m *actorMetrics) MessageHandled(id string, success bool) {
	m.handledTotal.WithLabelValues(id, boolToStr(success)).Inc()
}

func (m *actorMetrics) HandleDuration(id string) metrics.Timer {
	return newTimer(m.handleDuration.WithLabelValues(id))
}

var _ actor.Metrics = (*actorMetrics)(nil)
