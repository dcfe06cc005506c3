package race

import (
	"errors"
	"fmt"

	"github.com/codewandler/spawn-go/core/proc"
)

// ErrUnexpectedExit matches any member exit error:
//
//	errors.Is(race.Run(...), race.ErrUnexpectedExit)
var ErrUnexpectedExit = errors.New("race member finished unexpectedly")

// ExitError is the scope failure raised when a member terminates while the
// scope is still open. Err is nil when the member returned cleanly; a
// clean return is still an error at the scope level.
type ExitError struct {
	ID   string
	Name proc.Name
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("race member %s (%s) finished unexpectedly: %v", e.Name, e.ID, e.Err)
	}
	return fmt.Sprintf("race member %s (%s) finished unexpectedly", e.Name, e.ID)
}

func (e *ExitError) Is(target error) bool { return target == ErrUnexpectedExit }

func (e *ExitError) Unwrap() error { return e.Err }

// PanicError wraps a recovered member panic.
type PanicError struct {
	Recovered any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Recovered)
}
