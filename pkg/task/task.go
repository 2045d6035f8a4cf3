package task

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Task coordinates the asynchronous calls of one logical call site: it owns
// the current State snapshot, the authoritative call sequence, the in-flight
// cancellation scope, and the subscriber registry. Only the newest call's
// outcome may reach observable state; an older call settling later is
// discarded (latest wins).
//
// All methods are safe for concurrent use. Bookkeeping runs under a single
// mutex; listeners are invoked outside it with the committed snapshot.
type Task[P, R any] struct {
	mu        sync.Mutex
	fn        Func[P, R]
	seq       uint64
	cancel    context.CancelFunc
	cancelSeq uint64
	state     State[R]
	listeners map[uuid.UUID]func(State[R])

	logger *slog.Logger
	name   string
}

// New constructs a Task around fn. fn may be nil and supplied later via
// SetFunc, but Run panics while no function is set.
func New[P, R any](fn Func[P, R], opts ...Option) *Task[P, R] {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Task[P, R]{
		fn:        fn,
		state:     initialState[R](),
		listeners: make(map[uuid.UUID]func(State[R])),
		logger:    options.logger,
		name:      options.name,
	}
}

// Run starts a new call with a fresh cancellation scope derived from ctx.
// A previous call still in flight has its scope cancelled first, so at most
// one call is authoritative at a time. Loading=true is committed
// synchronously, before Run returns. The returned Future settles with the
// value on a successful, non-superseded resolution and with the no-result
// marker otherwise.
func (t *Task[P, R]) Run(ctx context.Context, param P) *Future[R] {
	if ctx == nil {
		ctx = context.Background()
	}
	future := newFuture[R]()

	t.mu.Lock()
	fn := t.fn
	if fn == nil {
		t.mu.Unlock()
		panic("task: Run called without a function set")
	}
	if t.cancel != nil {
		t.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	t.seq++
	seq := t.seq
	t.cancel = cancel
	t.cancelSeq = seq

	next := t.state
	next.Loading = true
	listeners := t.commitLocked(next)
	t.mu.Unlock()
	notify(listeners, next)

	callID := uuid.New().String()
	t.logger.DebugContext(ctx, "task call started",
		slog.String("task", t.name),
		slog.String("call_id", callID),
		slog.Uint64("seq", seq))

	go func() {
		value, err := fn(callCtx, param)
		t.settle(seq, callID, cancel, value, err, future)
	}()

	return future
}

func (t *Task[P, R]) settle(seq uint64, callID string, cancel context.CancelFunc, value R, err error, future *Future[R]) {
	// Release the call's context resources regardless of outcome.
	cancel()

	t.mu.Lock()
	if seq != t.seq {
		if t.cancelSeq == seq {
			t.cancel = nil
		}
		t.mu.Unlock()
		future.discard()
		t.logger.Debug("task call superseded",
			slog.String("task", t.name),
			slog.String("call_id", callID))
		return
	}
	t.cancel = nil

	next := t.state
	next.Loading = false
	switch {
	case err == nil:
		next.Data = value
		next.Err = nil
		next.Stale = false
	case IsCancellation(err):
		// Data and Err stay as they were; cancellation only clears Loading.
	default:
		next.Err = err
	}
	listeners := t.commitLocked(next)
	t.mu.Unlock()
	notify(listeners, next)

	switch {
	case err == nil:
		future.resolve(value)
		t.logger.Debug("task call succeeded",
			slog.String("task", t.name),
			slog.String("call_id", callID))
	case IsCancellation(err):
		future.discard()
		t.logger.Debug("task call cancelled",
			slog.String("task", t.name),
			slog.String("call_id", callID))
	default:
		future.discard()
		t.logger.Debug("task call failed",
			slog.String("task", t.name),
			slog.String("call_id", callID),
			slog.String("error", err.Error()))
	}
}

// Cancel signals the in-flight call's cancellation scope, if any. It is
// idempotent and a no-op when nothing is in flight. Running work is not
// interrupted; the function observes its context and abandons itself.
func (t *Task[P, R]) Cancel() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Reset cancels any in-flight call and restores the initial state. The
// sequence advances, so a prior call still settling is guaranteed to be
// treated as superseded.
func (t *Task[P, R]) Reset() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
	next := initialState[R]()
	listeners := t.commitLocked(next)
	t.mu.Unlock()
	notify(listeners, next)
}

// Fulfill commits data synchronously without running the underlying
// function. The sequence advances so the manual value always wins over a
// call still in flight; that call keeps running and its outcome is
// discarded on settlement.
func (t *Task[P, R]) Fulfill(data R) {
	t.mu.Lock()
	t.seq++
	next := State[R]{Data: data, Stale: false}
	listeners := t.commitLocked(next)
	t.mu.Unlock()
	notify(listeners, next)
}

// SetFunc replaces the underlying function used by subsequent Run calls.
// Calls already in flight keep the function they started with.
func (t *Task[P, R]) SetFunc(fn Func[P, R]) {
	t.mu.Lock()
	t.fn = fn
	t.mu.Unlock()
}

// State returns the current immutable snapshot.
func (t *Task[P, R]) State() State[R] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Subscribe registers a listener invoked after every committed state
// transition with the transition's snapshot. The returned function removes
// the listener; a listener unsubscribed before any transition is never
// invoked.
func (t *Task[P, R]) Subscribe(listener func(State[R])) func() {
	if listener == nil {
		return func() {}
	}

	id := uuid.New()
	t.mu.Lock()
	t.listeners[id] = listener
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// commitLocked stores the next snapshot and returns the listeners to
// notify. Callers must hold t.mu and invoke notify after unlocking so a
// listener can safely call back into the task.
func (t *Task[P, R]) commitLocked(next State[R]) []func(State[R]) {
	t.state = next
	if len(t.listeners) == 0 {
		return nil
	}
	listeners := make([]func(State[R]), 0, len(t.listeners))
	for _, l := range t.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func notify[R any](listeners []func(State[R]), s State[R]) {
	for _, l := range listeners {
		l(s)
	}
}
