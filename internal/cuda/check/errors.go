package check

import (
	"errors"
	"fmt"

	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
)

// ErrRuntime is the kind shared by every failed runtime call.
var ErrRuntime = errors.New("cuda runtime call failed")

// Error describes a runtime call that returned a non-success status.
// Error() is the runtime's own message for Status.
type Error struct {
	Status  cudart.Status
	Call    string
	Func    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrRuntime
}

// Recover converts a panic raised by Raise (or any other panic) into *err.
// It must be deferred directly:
//
//	defer check.Recover(&err)
func Recover(err *error) {
	if rec := recover(); rec != nil {
		*err = executionError(rec)
	}
}

func executionError(rec any) error {
	if ce, ok := rec.(*Error); ok {
		return ce
	}
	if recErr, ok := rec.(error); ok {
		return fmt.Errorf("cuda execution failed: %w", recErr)
	}
	return fmt.Errorf("cuda execution failed: %v", rec)
}
