// Package schedule provides stateful wrappers that gate when and how many
// underlying calls execute, and a polling driver that invokes a task on an
// interval.
//
// The wrappers transform a task.Func into another task.Func with the same
// calling convention, so they compose with the combinators in pkg/task:
//
//   - Debounce — delay execution until a quiescent period with no new
//     calls; the newest call wins, superseded callers are rejected with a
//     cancellation outcome.
//   - Throttle — share one execution per fixed time window; calls inside
//     the window receive the window leader's settlement.
//   - Queue — bound concurrent executions and start waiting calls in
//     arrival order; a waiting call whose context is cancelled before
//     dispatch never executes and never consumes a slot.
//
// Poll drives a task.Task on an interval, scheduling each tick only after
// the previous call settles so ticks never overlap.
//
// Each wrapper takes a small config struct. The structs carry env tags and
// can be populated from the environment with LoadConfig, optionally after
// loading a dotenv file with LoadEnv:
//
//	import "github.com/dmitrymomot/asynckit/pkg/schedule"
//
//	cfg, err := schedule.LoadConfig[schedule.PollConfig]()
//	if err != nil {
//	    return err
//	}
//
//	stop := schedule.Poll(ctx, searchTask, query,
//	    schedule.WithPollConfig(cfg))
//	defer stop()
//
// Cancellation everywhere in this package is cooperative and classified:
// abandoned calls settle with task.ErrCancelled, never with a synthesized
// application failure.
package schedule
