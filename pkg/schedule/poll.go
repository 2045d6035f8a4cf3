package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/task"
)

// Poll repeatedly invokes tsk.Run with param. The first tick fires
// without delay unless disabled via WithDelayedStart or a config with
// Immediate=false; each subsequent tick is scheduled one interval after the
// previous call settles, never overlapping it. The returned stop function
// prevents any further tick; a call already in flight is not cancelled, but
// no new one follows. Stopping is idempotent.
//
// A synchronous panic out of Run (a task with no function set) halts the
// loop without rescheduling. The panic is recovered so it cannot take down
// the host process, and the halt is reported only at debug level.
func Poll[P, R any](ctx context.Context, tsk *task.Task[P, R], param P, opts ...PollOption) func() {
	if ctx == nil {
		ctx = context.Background()
	}
	options := defaultPollOptions()
	for _, opt := range opts {
		opt(options)
	}
	log := options.logger

	stop := make(chan struct{})
	var once sync.Once
	stopFn := func() {
		once.Do(func() { close(stop) })
	}

	go func() {
		tick := func() (ok bool) {
			defer func() {
				if r := recover(); r != nil {
					log.Debug("poll tick raised synchronously; polling halted",
						slog.Any("panic", r))
					ok = false
				}
			}()
			future := tsk.Run(ctx, param)
			<-future.Done()
			return true
		}

		wait := func() bool {
			timer := time.NewTimer(options.interval)
			defer timer.Stop()
			select {
			case <-timer.C:
				return true
			case <-stop:
				return false
			case <-ctx.Done():
				return false
			}
		}

		if !options.immediate && !wait() {
			return
		}
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			default:
			}
			if !tick() {
				return
			}
			if !wait() {
				return
			}
		}
	}()

	return stopFn
}
