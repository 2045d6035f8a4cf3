package schedule

import (
	"context"
	"sync"

	"github.com/dmitrymomot/asynckit/pkg/task"
)

type queueWaiter struct {
	ready      chan struct{}
	dispatched bool
}

// Queue bounds the number of simultaneously executing calls and starts
// waiting calls in arrival order as slots free up. A waiting call whose
// context is cancelled before dispatch is removed from the list and
// rejected with a cancellation outcome without ever invoking fn or
// consuming a slot. A call already dispatched is never force-cancelled by
// this layer; fn observes its own context.
func Queue[P, R any](fn task.Func[P, R], cfg QueueConfig) task.Func[P, R] {
	concurrency := max(cfg.Concurrency, 1)

	var (
		mu      sync.Mutex
		active  int
		waiting []*queueWaiter
	)

	// release hands the freed slot to the head of the waiting list, or
	// decrements the active count when nobody is waiting.
	release := func() {
		mu.Lock()
		if len(waiting) > 0 {
			next := waiting[0]
			waiting = waiting[1:]
			next.dispatched = true
			mu.Unlock()
			close(next.ready)
			return
		}
		active--
		mu.Unlock()
	}

	return func(ctx context.Context, param P) (R, error) {
		mu.Lock()
		if active < concurrency {
			active++
			mu.Unlock()
		} else {
			w := &queueWaiter{ready: make(chan struct{})}
			waiting = append(waiting, w)
			mu.Unlock()

			select {
			case <-w.ready:
			case <-ctx.Done():
				mu.Lock()
				if !w.dispatched {
					for i, queued := range waiting {
						if queued == w {
							waiting = append(waiting[:i], waiting[i+1:]...)
							break
						}
					}
					mu.Unlock()
					var zero R
					return zero, task.ErrCancelled
				}
				// Dispatch raced the cancellation; the slot is already
				// ours, so take it and let fn observe the context.
				mu.Unlock()
				<-w.ready
			}
		}

		defer release()
		return fn(ctx, param)
	}
}
