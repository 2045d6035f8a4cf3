package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/task"
)

type throttleCall[R any] struct {
	done  chan struct{}
	value R
	err   error
}

// Throttle shares one underlying execution per time window. The first call
// of a window invokes fn and records the window start; every call arriving
// within cfg.Window of that start blocks on the same settlement and returns
// its result, its own context and argument ignored. A call arriving after
// the window has elapsed starts a new underlying call even if the previous
// one has not settled yet.
func Throttle[P, R any](fn task.Func[P, R], cfg ThrottleConfig) task.Func[P, R] {
	var (
		mu          sync.Mutex
		windowStart time.Time
		current     *throttleCall[R]
	)

	return func(ctx context.Context, param P) (R, error) {
		mu.Lock()
		if current != nil && time.Since(windowStart) < cfg.Window {
			shared := current
			mu.Unlock()
			<-shared.done
			return shared.value, shared.err
		}

		call := &throttleCall[R]{done: make(chan struct{})}
		current = call
		windowStart = time.Now()
		mu.Unlock()

		call.value, call.err = fn(ctx, param)
		close(call.done)
		return call.value, call.err
	}
}
