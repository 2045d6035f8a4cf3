package task

// State is an immutable snapshot of a Task at one committed transition.
// Subscribers always receive a complete copy; a torn combination of fields
// is never observable.
type State[R any] struct {
	// Data holds the last successfully resolved value. It is meaningful
	// only once Stale is false.
	Data R

	// Err holds the last surfaced non-cancellation failure, cleared by the
	// next success, Fulfill, or Reset. Cancellation never populates it.
	Err error

	// Loading reports that a call is currently in flight.
	Loading bool

	// Stale is true until the first successful, non-superseded resolution
	// and again after Reset.
	Stale bool
}

func initialState[R any]() State[R] {
	return State[R]{Stale: true}
}
