package task

// Future is the caller-facing handle returned by Task.Run. It settles
// exactly once: with the call's value when the call succeeded and was not
// superseded, or with ok=false, the "no result" marker, when the call was
// cancelled, superseded, or failed. Failures themselves surface through the
// task state, never here, so awaiting a routine cancellation cannot leave
// the caller with an unhandled error.
type Future[R any] struct {
	value R
	ok    bool
	done  chan struct{}
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// Await blocks until the call settles and returns its value. ok is false
// when the call produced no observable result.
func (f *Future[R]) Await() (R, bool) {
	<-f.done
	return f.value, f.ok
}

// Done returns a channel closed once the call has settled.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the call has settled, without blocking.
func (f *Future[R]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[R]) resolve(value R) {
	f.value = value
	f.ok = true
	close(f.done)
}

func (f *Future[R]) discard() {
	close(f.done)
}
