package task

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Retry re-attempts fn on application failures, up to retries additional
// attempts after the first (retries+1 invocations in total, back to back
// with no delay). The context is checked before every attempt and an
// already-cancelled call settles with the cancellation immediately. A
// cancellation outcome from fn itself is never retried; it propagates as
// is. When attempts are exhausted the last non-cancellation failure is
// raised.
func Retry[P, R any](fn Func[P, R], retries uint64) Func[P, R] {
	return func(ctx context.Context, param P) (R, error) {
		var out R
		backoff := retry.WithMaxRetries(retries, retry.BackoffFunc(func() (time.Duration, bool) {
			return 0, false
		}))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			v, err := fn(ctx, param)
			if err != nil {
				if IsCancellation(err) {
					return err
				}
				return retry.RetryableError(err)
			}
			out = v
			return nil
		})
		if err != nil {
			var zero R
			return zero, err
		}
		return out, nil
	}
}
