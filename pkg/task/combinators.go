package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Map applies f to the successful result of fn. Failures of any kind pass
// through untouched.
func Map[P, R, S any](fn Func[P, R], f func(R) S) Func[P, S] {
	return func(ctx context.Context, param P) (S, error) {
		v, err := fn(ctx, param)
		if err != nil {
			var zero S
			return zero, err
		}
		return f(v), nil
	}
}

// FlatMap chains f, itself cancellation-aware, onto the successful result
// of fn. The same context flows into both stages, so cancelling the call
// abandons whichever stage is currently running.
func FlatMap[P, R, S any](fn Func[P, R], f Func[R, S]) Func[P, S] {
	return func(ctx context.Context, param P) (S, error) {
		v, err := fn(ctx, param)
		if err != nil {
			var zero S
			return zero, err
		}
		return f(ctx, v)
	}
}

// Tap invokes f with the successful result for its side effects and then
// reproduces the original settlement unchanged.
func Tap[P, R any](fn Func[P, R], f func(R)) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		v, err := fn(ctx, param)
		if err == nil {
			f(v)
		}
		return v, err
	}
}

// TapError invokes f with a non-cancellation failure for its side effects.
// Cancellation outcomes skip f entirely; the original settlement is always
// reproduced.
func TapError[P, R any](fn Func[P, R], f func(error)) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		v, err := fn(ctx, param)
		if err != nil && !IsCancellation(err) {
			f(err)
		}
		return v, err
	}
}

// MapError replaces a non-cancellation failure with f(err). Cancellation
// passes through unmodified.
func MapError[P, R any](fn Func[P, R], f func(error) error) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		v, err := fn(ctx, param)
		if err == nil || IsCancellation(err) {
			return v, err
		}
		var zero R
		return zero, f(err)
	}
}

// Catch converts a non-cancellation failure into a successful result via
// handler. Cancellation passes through unmodified.
func Catch[P, R any](fn Func[P, R], handler func(error) R) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		v, err := fn(ctx, param)
		if err == nil || IsCancellation(err) {
			return v, err
		}
		return handler(err), nil
	}
}

// Fallback is Catch with a static replacement value.
func Fallback[P, R any](fn Func[P, R], value R) Func[P, R] {
	return Catch(fn, func(error) R { return value })
}

// Validate runs parse against the successful result of fn. The result
// passes through unchanged when parse accepts it; a parse failure settles
// the call with an ErrValidation-classified error carrying the parse
// detail.
func Validate[P, R any](fn Func[P, R], parse func(R) error) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		v, err := fn(ctx, param)
		if err != nil {
			return v, err
		}
		if perr := parse(v); perr != nil {
			var zero R
			return zero, fmt.Errorf("%w: %w", ErrValidation, perr)
		}
		return v, nil
	}
}

// Log emits structured records at call start, success, failure, and
// cancellation, tagging each call with a generated id. The sink never
// affects the call's outcome.
func Log[P, R any](fn Func[P, R], log *slog.Logger, name string) Func[P, R] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx context.Context, param P) (R, error) {
		callID := uuid.New().String()
		log.InfoContext(ctx, "call started",
			slog.String("call", name),
			slog.String("call_id", callID))

		v, err := fn(ctx, param)
		switch {
		case err == nil:
			log.InfoContext(ctx, "call succeeded",
				slog.String("call", name),
				slog.String("call_id", callID))
		case IsCancellation(err):
			log.DebugContext(ctx, "call cancelled",
				slog.String("call", name),
				slog.String("call_id", callID))
		default:
			log.ErrorContext(ctx, "call failed",
				slog.String("call", name),
				slog.String("call_id", callID),
				slog.String("error", err.Error()))
		}
		return v, err
	}
}
