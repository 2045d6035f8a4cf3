package task

import (
	"context"
	"time"
)

// Timeout races fn against a timer. When the timer wins, the call settles
// with ErrTimeout and fn's context is cancelled so cooperative work can
// abandon itself. An already-cancelled context settles with cancellation
// before the timer is even armed. The timer is stopped and the derived
// context released on every settlement path.
func Timeout[P, R any](fn Func[P, R], d time.Duration) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		var zero R
		if ctx.Err() != nil {
			return zero, ErrCancelled
		}

		callCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		type settlement struct {
			value R
			err   error
		}
		// Buffered so the worker goroutine never blocks after the race is
		// decided against it.
		done := make(chan settlement, 1)
		go func() {
			v, err := fn(callCtx, param)
			done <- settlement{value: v, err: err}
		}()

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case s := <-done:
			return s.value, s.err
		case <-timer.C:
			return zero, ErrTimeout
		case <-ctx.Done():
			return zero, ErrCancelled
		}
	}
}
