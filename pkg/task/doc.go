// Package task provides a primitive for representing a single unit of
// cancellable, supersedable asynchronous work, together with a layer of
// combinators for composing such work.
//
// The package is organised around two ideas:
//
//   - Func — the shared calling convention for cancellable work: a function
//     that observes a context for abandonment and returns a value or a
//     classified failure. Combinators (Map, FlatMap, Tap, TapError,
//     MapError, Catch, Retry, Timeout, Validate, Log) transform one Func
//     into another and compose with Pipe.
//   - Task — the stateful coordinator for one logical call site. It holds
//     the current State snapshot (data, error, loading, staleness), owns the
//     authoritative call sequence, and publishes every committed transition
//     to subscribers. Repeated Run calls supersede each other: only the
//     newest call's outcome may reach observable state, no matter in which
//     order calls settle.
//
// # Error taxonomy
//
// Outcomes are classified as cancellation (ErrCancelled, context.Canceled),
// timeout (ErrTimeout, raised only by the Timeout combinator), validation
// failure (ErrValidation, raised only by Validate), or application failure
// (anything else). Combinators recover or transform only non-cancellation
// failures; cancellation propagates unchanged through every layer. The Task
// itself recovers cancellation locally: it clears the loading flag and never
// writes cancellation into the error field.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/dmitrymomot/asynckit/pkg/task"
//	)
//
//	fetch := func(ctx context.Context, id int) (string, error) {
//	    // issue a request, observing ctx for abandonment
//	    return loadUser(ctx, id)
//	}
//
//	users := task.New(task.Pipe(fetch,
//	    func(fn task.Func[int, string]) task.Func[int, string] { return task.Retry(fn, 2) },
//	    func(fn task.Func[int, string]) task.Func[int, string] { return task.Timeout(fn, 5*time.Second) },
//	))
//
//	unsubscribe := users.Subscribe(func(s task.State[string]) {
//	    // render s
//	})
//	defer unsubscribe()
//
//	if v, ok := users.Run(ctx, 42).Await(); ok {
//	    // v holds the freshest, non-superseded result
//	}
//
// Cancellation is cooperative throughout: signalling a call's context never
// interrupts running code, it only reroutes the outcome and lets the
// function abandon its own work.
package task
