package actor

import (
	"context"
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MailboxOptions configures a mailbox. The zero value is valid.
type MailboxOptions struct {
	// ID labels the mailbox in metrics. Defaults to "mbox-<nanoid>".
	ID string
	// Metrics receives mailbox instrumentation. Defaults to no-op.
	Metrics Metrics
}

// Mailbox is an unbounded, ordered, multi-producer/single-consumer queue.
// Deliver is safe for concurrent use from any number of goroutines with no
// external locking; Recv must be called from a single consumer, the actor
// that owns the mailbox.
type Mailbox[M any] struct {
	id      string
	metrics Metrics

	mu    sync.Mutex
	queue []M
	head  int

	// notify has capacity 1; deliveries coalesce and Recv re-checks the
	// queue before blocking, so a lost wakeup cannot occur.
	notify chan struct{}
}

// NewMailbox creates a mailbox with default options.
func NewMailbox[M any]() *Mailbox[M] {
	return NewMailboxWith[M](MailboxOptions{})
}

// NewMailboxWith creates a mailbox with the given options.
func NewMailboxWith[M any](opts MailboxOptions) *Mailbox[M] {
	if opts.ID == "" {
		opts.ID = fmt.Sprintf("mbox-%s", gonanoid.Must(6))
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}
	return &Mailbox[M]{
		id:      opts.ID,
		metrics: opts.Metrics,
		notify:  make(chan struct{}, 1),
	}
}

// ID returns the mailbox identifier used in metrics and logs.
func (m *Mailbox[M]) ID() string { return m.id }

// Deliver enqueues msg. Never blocks beyond the enqueue itself. Messages
// delivered by a single goroutine are received in delivery order.
func (m *Mailbox[M]) Deliver(msg M) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	depth := len(m.queue) - m.head
	m.mu.Unlock()

	m.metrics.MessageDelivered(m.id)
	m.metrics.MailboxDepth(m.id, depth)

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Recv dequeues the oldest message, blocking until one is delivered or ctx
// is cancelled.
func (m *Mailbox[M]) Recv(ctx context.Context) (M, error) {
	for {
		if msg, ok := m.pop(); ok {
			return msg, nil
		}
		select {
		case <-ctx.Done():
			var zero M
			return zero, ctx.Err()
		case <-m.notify:
		}
	}
}

// Len returns the number of queued messages.
func (m *Mailbox[M]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue) - m.head
}

func (m *Mailbox[M]) pop() (M, bool) {
	m.mu.Lock()
	if m.head == len(m.queue) {
		m.mu.Unlock()
		var zero M
		return zero, false
	}

	msg := m.queue[m.head]
	var zero M
	m.queue[m.head] = zero // release for GC
	m.head++

	// compact once the consumed prefix dominates
	if m.head > 32 && m.head*2 >= len(m.queue) {
		n := copy(m.queue, m.queue[m.head:])
		m.queue = m.queue[:n]
		m.head = 0
	}
	depth := len(m.queue) - m.head
	m.mu.Unlock()

	m.metrics.MailboxDepth(m.id, depth)
	return msg, true
}

var _ Ref[any] = (*Mailbox[any])(nil)
