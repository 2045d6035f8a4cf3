package task

import "context"

// Func is the shared calling convention for a unit of cancellable
// asynchronous work: it observes ctx for best-effort early abandonment and
// returns either a value or a classified failure. Implementations must
// return a cancellation-classified error (ErrCancelled or ctx.Err()) when
// they abandon work because ctx was cancelled.
type Func[P, R any] func(ctx context.Context, param P) (R, error)

// Transform rewrites one Func into another with the same shape. Combinators
// that preserve the value type (Tap, MapError, Retry, Timeout, the
// scheduling wrappers) can be expressed as Transforms and chained with Pipe.
type Transform[P, R any] func(Func[P, R]) Func[P, R]

// Pipe applies transforms to fn left to right, so the first transform is
// the innermost wrapper. Type-changing combinators such as Map and FlatMap
// compose by ordinary nesting instead.
func Pipe[P, R any](fn Func[P, R], transforms ...Transform[P, R]) Func[P, R] {
	for _, transform := range transforms {
		fn = transform(fn)
	}
	return fn
}
