package task

import (
	"context"
	"errors"
)

var (
	// ErrCancelled marks a call that was abandoned: its cancellation scope
	// was signalled, or a newer call superseded it. Cancellation is an
	// expected outcome, never an application failure, and no combinator
	// converts it into anything else.
	ErrCancelled = errors.New("task: call cancelled")

	// ErrTimeout is raised only by the Timeout combinator when the timer
	// wins the race. A timeout aborts the underlying call but is classified
	// separately from cancellation.
	ErrTimeout = errors.New("task: call timed out")

	// ErrValidation wraps a parse failure reported by the Validate
	// combinator's parse hook.
	ErrValidation = errors.New("task: result validation failed")
)

// IsCancellation reports whether err is a cancellation outcome. Both the
// package sentinel and context.Canceled qualify; context.DeadlineExceeded
// does not, deadline expiry is a timeout concern.
func IsCancellation(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}

// IsTimeout reports whether err was raised by the Timeout combinator.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsValidation reports whether err originated at the validation boundary.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
