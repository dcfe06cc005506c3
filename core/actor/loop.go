package actor

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
)

// OnPanic is called when a handler panics. msg is the message being
// handled at the time.
type OnPanic func(recovered any, stack []byte, msg any)

// LoopOptions configures a processing loop. The zero value is valid.
type LoopOptions struct {
	Logger  *slog.Logger
	Metrics Metrics
	// OnPanic is invoked when the handler panics; the loop keeps running.
	// Defaults to logging at error level.
	OnPanic OnPanic
}

// Run consumes the mailbox with default options. See [RunWith].
func Run[M any](ctx context.Context, mb *Mailbox[M], handle func(ctx context.Context, msg M) error) error {
	return RunWith(ctx, LoopOptions{}, mb, handle)
}

// RunWith consumes the mailbox in FIFO order, invoking handle for each
// message, until ctx is cancelled (returns nil, treated as orderly
// shutdown) or handle returns an error (returned as the loop's error).
// A handler panic is contained via OnPanic and the loop keeps running.
//
// RunWith is the single consumer of mb; run it on the goroutine that owns
// the actor.
func RunWith[M any](ctx context.Context, opts LoopOptions, mb *Mailbox[M], handle func(ctx context.Context, msg M) error) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}
	if opts.OnPanic == nil {
		opts.OnPanic = func(recovered any, stack []byte, msg any) {
			opts.Logger.Error("actor handler panicked",
				slog.Any("recovered", recovered),
				slog.String("stack", string(stack)),
				slog.Any("msg", msg),
			)
		}
	}

	log := opts.Logger.With(slog.String("mailbox", mb.ID()))

	for {
		msg, err := mb.Recv(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		if err := safeHandle(ctx, opts, mb.ID(), handle, msg); err != nil {
			log.Error("actor handler failed", slog.Any("error", err))
			return err
		}
	}
}

func safeHandle[M any](ctx context.Context, opts LoopOptions, id string, handle func(ctx context.Context, msg M) error, msg M) (err error) {
	tmr := opts.Metrics.HandleDuration(id)
	defer tmr.ObserveDuration()

	defer func() {
		if r := recover(); r != nil {
			opts.Metrics.MessageHandled(id, false)
			opts.OnPanic(r, debug.Stack(), msg)
			err = nil // containment: keep running
		}
	}()

	err = handle(ctx, msg)
	opts.Metrics.MessageHandled(id, err == nil)
	return err
}
