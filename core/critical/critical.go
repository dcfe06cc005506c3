// Package critical runs goroutines whose failure means the process must
// halt. Any error escaping a critical goroutine is written to every
// available sink and the process is terminated with a non-zero status:
// once a critical goroutine has failed, the program's invariants can no
// longer be trusted, and continuing half-broken is worse than an abrupt
// stop.
package critical

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/codewandler/spawn-go/core/proc"
)

// Options configures a Supervisor. The zero value is valid.
type Options struct {
	Log *slog.Logger
	// Exit terminates the process with the given status. Defaults to
	// os.Exit; injectable for tests.
	Exit func(code int)
	// Stdout and Stderr are the fallback streams written during the fatal
	// path alongside the logger, so operators still see the failure when
	// structured logging is itself degraded.
	Stdout  io.Writer
	Stderr  io.Writer
	Metrics Metrics
}

// Supervisor launches critical goroutines.
type Supervisor struct {
	log     *slog.Logger
	exit    func(code int)
	stdout  io.Writer
	stderr  io.Writer
	metrics Metrics
}

// New creates a supervisor, filling defaults for unset options.
func New(opts Options) *Supervisor {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Exit == nil {
		opts.Exit = os.Exit
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}
	return &Supervisor{
		log:     opts.Log,
		exit:    opts.Exit,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		metrics: opts.Metrics,
	}
}

// Go starts fn on a new goroutine with default options. See [Supervisor.Go].
func Go(name proc.Name, fn func() error) {
	New(Options{}).Go(name, fn)
}

// Go starts fn on a new goroutine.
//
// A nil return exits silently. A return of context.Canceled is treated the
// same: a critical goroutine torn down by an enclosing supervisor is
// shutting down, not failing. Any other error, and any panic, is fatal:
// a diagnostic carrying the goroutine's name is written to the logger at
// error level and to both fallback streams, then the process is
// terminated with status 1, bypassing cleanup of other goroutines.
func (s *Supervisor) Go(name proc.Name, fn func() error) {
	id := proc.NewID()
	s.metrics.Started(name.String())

	go func() {
		err := run(fn)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		s.fatal(id, name, err)
	}()
}

func run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return fn()
}

func (s *Supervisor) fatal(id string, name proc.Name, err error) {
	s.metrics.Failed(name.String())

	msg := fmt.Sprintf("critical goroutine %s (%s) failed: %v", name, id, err)

	// all sinks: the operator must see this even if one of them is broken
	s.log.Error("critical goroutine failed",
		slog.String("proc", id),
		slog.String("name", name.String()),
		slog.Any("error", err),
	)
	fmt.Fprintln(s.stderr, msg)
	fmt.Fprintln(s.stdout, msg)

	s.exit(1)
}
