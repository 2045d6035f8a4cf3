package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/task"
)

type settlement[R any] struct {
	value R
	err   error
}

type debounceCall[P, R any] struct {
	ctx   context.Context
	param P
	// Buffered so a superseding call and the timer callback never block on
	// delivery; each call is settled at most once.
	settle chan settlement[R]
}

// Debounce delays execution until cfg.Wait of quiescence with no further
// calls. Each call supersedes the pending one: the superseded caller is
// rejected with a cancellation outcome immediately and its timer is
// stopped. Exactly one underlying invocation happens per quiescent window,
// with the newest call's context and argument. If the winning context is
// already cancelled when the timer fires, the call is rejected without
// invoking fn.
func Debounce[P, R any](fn task.Func[P, R], cfg DebounceConfig) task.Func[P, R] {
	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending *debounceCall[P, R]
	)

	return func(ctx context.Context, param P) (R, error) {
		call := &debounceCall[P, R]{
			ctx:    ctx,
			param:  param,
			settle: make(chan settlement[R], 1),
		}

		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		if prev := pending; prev != nil {
			prev.settle <- settlement[R]{err: task.ErrCancelled}
		}
		pending = call
		timer = time.AfterFunc(cfg.Wait, func() {
			mu.Lock()
			if pending != call {
				// Lost the race against a superseding call.
				mu.Unlock()
				return
			}
			pending = nil
			timer = nil
			mu.Unlock()

			if call.ctx.Err() != nil {
				call.settle <- settlement[R]{err: task.ErrCancelled}
				return
			}
			v, err := fn(call.ctx, call.param)
			call.settle <- settlement[R]{value: v, err: err}
		})
		mu.Unlock()

		select {
		case s := <-call.settle:
			return s.value, s.err
		case <-ctx.Done():
			var zero R
			return zero, task.ErrCancelled
		}
	}
}
