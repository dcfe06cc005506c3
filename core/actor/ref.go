package actor

import "context"

// Ref is the actor capability: anything that can accept one message of its
// associated type and enqueue it. Refs are freely shared and copied;
// holders only enqueue, the owning actor alone dequeues.
type Ref[M any] interface {
	Deliver(msg M)
}

// Cast enqueues msg onto the actor's mailbox and returns. No
// acknowledgement; delivery order is FIFO among all messages delivered to
// the same mailbox.
func Cast[M any](ref Ref[M], msg M) {
	ref.Deliver(msg)
}

// Call sends a request and blocks until the actor responds.
//
// build receives a fresh [Responder] and returns the message to send,
// typically embedding the responder in a reply field. The calling
// goroutine is then suspended until the actor invokes the responder,
// and Call returns exactly the delivered value.
//
// Call has no timeout. If the actor never responds the call blocks until
// ctx is cancelled, in which case the zero value and ctx's error are
// returned; with context.Background it blocks forever.
func Call[M any, R any](ctx context.Context, ref Ref[M], build func(r *Responder[R]) M) (R, error) {
	r := NewResponder[R]()
	Cast(ref, build(r))

	select {
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	case v := <-r.slot:
		return v, nil
	}
}
