// Package race provides a structured-concurrency scope whose members
// fate-share: any member's termination, clean or not, surfaces as a scope
// error and cancels every sibling.
//
// Members are assumed to be perpetual background workers, so there is no
// quiet successful exit for a member. A member that returns has violated
// the group's supervision invariant ("all these workers are alive"), and
// that is worth surfacing even when the return value is nil.
//
// Cancellation is delivered through the member's context; members must
// honor it. [Run] does not return before every member's function has
// returned.
package race

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/codewandler/spawn-go/core/ds"
	"github.com/codewandler/spawn-go/core/proc"
)

// errScopeClosed is the cancel cause used when the scope's action returns
// and the remaining members are being drained.
var errScopeClosed = errors.New("race scope closed")

// Options configures a scope. The zero value is valid.
type Options struct {
	Log     *slog.Logger
	Metrics Metrics
}

// Scope is the capability token of an open structured-concurrency region.
// It is valid only within the dynamic extent of the [Run] call that
// created it; do not store it or use it after Run has returned.
type Scope struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	log     *slog.Logger
	metrics Metrics

	wg sync.WaitGroup

	mu      sync.Mutex
	failure error
	live    *ds.Set[string]
}

// Run opens a scope, runs fn with it, and on return, by any means,
// cancels the scope context and blocks until every member forked via
// [Scope.Go] has terminated.
//
// Run returns the first member exit error if one was recorded, otherwise
// fn's error. A nil return means fn returned nil and no member terminated
// before the scope began draining.
func Run(ctx context.Context, fn func(ctx context.Context, s *Scope) error) error {
	return RunWith(ctx, Options{}, fn)
}

// RunWith is [Run] with explicit options.
func RunWith(ctx context.Context, opts Options, fn func(ctx context.Context, s *Scope) error) error {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}

	sctx, cancel := context.WithCancelCause(ctx)
	s := &Scope{
		ctx:     sctx,
		cancel:  cancel,
		log:     opts.Log,
		metrics: opts.Metrics,
		live:    ds.NewSet[string](),
	}

	err := fn(sctx, s)

	// Drain: members exiting from here on are shutting down, not failing.
	cancel(errScopeClosed)
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return s.failure
	}
	return err
}

// Go forks fn as a named member of the scope.
//
// The member logs a start notice at info level. When fn returns, success
// or failure, the member logs a termination notice at warn level and
// raises an [*ExitError] that cancels the scope, unless the scope was
// already cancelled, in which case the exit is an orderly shutdown and is
// logged at info level. A panic in fn is converted to an error first.
func (s *Scope) Go(name proc.Name, fn func(ctx context.Context) error) {
	id := proc.NewID()
	log := s.log.With(slog.String("proc", id), slog.String("name", name.String()))

	s.wg.Add(1)
	s.track(id, true)
	s.metrics.MemberStarted(name.String())

	go func() {
		defer s.wg.Done()

		log.Info("race member started")
		tmr := s.metrics.MemberLifetime(name.String())
		err := runMember(s.ctx, fn)
		tmr.ObserveDuration()

		s.track(id, false)
		s.metrics.MemberFinished(name.String(), err == nil)

		if s.ctx.Err() != nil {
			log.Info("race member stopped", slog.Any("cause", context.Cause(s.ctx)))
			return
		}

		exit := &ExitError{ID: id, Name: name, Err: err}
		log.Warn("race member finished unexpectedly", slog.Any("error", err))

		s.mu.Lock()
		if s.failure == nil {
			s.failure = exit
		}
		s.mu.Unlock()
		s.cancel(exit)
	}()
}

// Wait blocks until every member of the scope has terminated. In practice
// it parks the caller: members never finish quietly, so Wait returns only
// after some termination has cancelled the scope and the members have
// drained.
func (s *Scope) Wait() {
	s.wg.Wait()
}

// Running returns the ids of live members in fork order.
func (s *Scope) Running() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live.Values()
}

func (s *Scope) track(id string, add bool) {
	s.mu.Lock()
	if add {
		s.live.Add(id)
	} else {
		s.live.Remove(id)
	}
	n := s.live.Len()
	s.mu.Unlock()
	s.metrics.MembersRunning(n)
}

func runMember(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Recovered: r}
		}
	}()
	return fn(ctx)
}
