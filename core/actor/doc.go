// Package actor provides the messaging protocol for mailbox-owning
// goroutines: fire-and-forget sends, synchronous request/response, and
// one-shot reply delivery.
//
// # The capability
//
// Anything that can enqueue one message type is an actor handle:
//
//	type Ref[M any] interface {
//	    Deliver(msg M)
//	}
//
// [Mailbox] is the provided implementation: an unbounded FIFO queue with
// safe concurrent delivery and a single consumer. Handles are freely
// shared; holders only ever enqueue.
//
// # Cast and Call
//
// [Cast] enqueues a message and returns. [Call] builds a message around a
// fresh [Responder], enqueues it, and blocks until the actor responds:
//
//	type getValue struct {
//	    Reply *actor.Responder[int]
//	}
//
//	v, err := actor.Call(ctx, counter, func(r *actor.Responder[int]) counterMsg {
//	    return getValue{Reply: r}
//	})
//
// Call provides no timeout of its own: if the actor never responds, the
// call blocks until ctx is cancelled. With context.Background it blocks
// forever. Preventing that is protocol discipline on the actor side, and
// [Done] exists to help: a handler function required to reply can return
// the token produced by [Responder.Respond], so a code path that forgets
// to respond does not compile.
//
// # The processing loop
//
// [Run] is a minimal loop for the actor side: receive, dispatch, stop on
// handler error or context cancellation. Actors with richer lifecycles
// can consume the mailbox directly via [Mailbox.Recv].
package actor
