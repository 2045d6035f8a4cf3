package task_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/task"
)

func TestTaskRunSuccess(t *testing.T) {
	t.Parallel()

	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	v, ok := tsk.Run(context.Background(), 21).Await()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	s := tsk.State()
	assert.Equal(t, 42, s.Data)
	assert.NoError(t, s.Err)
	assert.False(t, s.Loading)
	assert.False(t, s.Stale)
}

func TestTaskRunFailure(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		return 0, errBoom
	})

	_, ok := tsk.Run(context.Background(), 1).Await()
	require.False(t, ok, "a failed call must settle with the no-result marker")

	s := tsk.State()
	assert.ErrorIs(t, s.Err, errBoom)
	assert.False(t, s.Loading)
	assert.True(t, s.Stale, "a task with no successful resolution stays stale")
}

func TestTaskFailureKeepsPreviousData(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		if n < 0 {
			return 0, errBoom
		}
		return n, nil
	})
	ctx := context.Background()

	_, ok := tsk.Run(ctx, 7).Await()
	require.True(t, ok)

	_, ok = tsk.Run(ctx, -1).Await()
	require.False(t, ok)

	s := tsk.State()
	assert.Equal(t, 7, s.Data, "failure must not clear the last good value")
	assert.ErrorIs(t, s.Err, errBoom)
	assert.False(t, s.Stale)
}

func TestTaskLatestWins(t *testing.T) {
	t.Parallel()

	gates := map[int]chan struct{}{
		1: make(chan struct{}),
		2: make(chan struct{}),
	}
	// Ignores its context on purpose: supersession must discard the stale
	// result even when the old call refuses to abandon itself.
	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		<-gates[n]
		return n, nil
	})
	ctx := context.Background()

	first := tsk.Run(ctx, 1)
	second := tsk.Run(ctx, 2)

	close(gates[2])
	v, ok := second.Await()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	close(gates[1])
	_, ok = first.Await()
	require.False(t, ok, "the superseded call settles with the no-result marker")

	s := tsk.State()
	assert.Equal(t, 2, s.Data, "an earlier call settling later must not overwrite fresher data")
	assert.NoError(t, s.Err)
	assert.False(t, s.Loading)
}

func TestTaskCancel(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	tsk := task.New(func(ctx context.Context, _ struct{}) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	future := tsk.Run(context.Background(), struct{}{})
	<-started
	tsk.Cancel()
	tsk.Cancel() // idempotent

	_, ok := future.Await()
	require.False(t, ok)

	s := tsk.State()
	assert.NoError(t, s.Err, "cancellation never populates the error field")
	assert.False(t, s.Loading)
}

func TestTaskCancelWithoutInflightCall(t *testing.T) {
	t.Parallel()

	tsk := task.New(func(ctx context.Context, n int) (int, error) { return n, nil })
	assert.NotPanics(t, func() { tsk.Cancel() })
}

func TestTaskReset(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		if n == 2 {
			<-release
		}
		return n, nil
	})
	ctx := context.Background()

	_, ok := tsk.Run(ctx, 1).Await()
	require.True(t, ok)
	require.False(t, tsk.State().Stale)

	future := tsk.Run(ctx, 2)
	tsk.Reset()

	s := tsk.State()
	assert.Zero(t, s.Data)
	assert.NoError(t, s.Err)
	assert.False(t, s.Loading)
	assert.True(t, s.Stale)

	// The in-flight call settling after Reset has no effect on state.
	close(release)
	_, ok = future.Await()
	require.False(t, ok)
	assert.True(t, tsk.State().Stale)
	assert.Zero(t, tsk.State().Data)
}

func TestTaskFulfill(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	tsk := task.New(func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	future := tsk.Run(context.Background(), 7)
	tsk.Fulfill(42)

	s := tsk.State()
	assert.Equal(t, 42, s.Data)
	assert.NoError(t, s.Err)
	assert.False(t, s.Loading)
	assert.False(t, s.Stale)

	// The manual value is fresher than the in-flight call.
	close(release)
	_, ok := future.Await()
	require.False(t, ok)
	assert.Equal(t, 42, tsk.State().Data)
}

func TestTaskSubscribe(t *testing.T) {
	t.Parallel()

	tsk := task.New(func(ctx context.Context, n int) (int, error) { return n, nil })

	var mu sync.Mutex
	var transitions []task.State[int]
	unsubscribe := tsk.Subscribe(func(s task.State[int]) {
		mu.Lock()
		transitions = append(transitions, s)
		mu.Unlock()
	})
	defer unsubscribe()

	_, ok := tsk.Run(context.Background(), 5).Await()
	require.True(t, ok)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, transitions, 2)
	assert.True(t, transitions[0].Loading)
	assert.True(t, transitions[0].Stale)
	assert.False(t, transitions[1].Loading)
	assert.Equal(t, 5, transitions[1].Data)
}

func TestTaskUnsubscribeBeforeTransition(t *testing.T) {
	t.Parallel()

	tsk := task.New(func(ctx context.Context, n int) (int, error) { return n, nil })

	called := false
	unsubscribe := tsk.Subscribe(func(task.State[int]) { called = true })
	unsubscribe()

	_, ok := tsk.Run(context.Background(), 1).Await()
	require.True(t, ok)
	assert.False(t, called, "a listener removed before any transition is never invoked")
}

func TestTaskRunPanicsWithoutFunc(t *testing.T) {
	t.Parallel()

	tsk := task.New[int, int](nil)
	require.Panics(t, func() { tsk.Run(context.Background(), 1) })
}

func TestTaskSetFunc(t *testing.T) {
	t.Parallel()

	tsk := task.New[int, int](nil)
	tsk.SetFunc(func(ctx context.Context, n int) (int, error) { return n + 1, nil })

	v, ok := tsk.Run(context.Background(), 1).Await()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	tsk.SetFunc(func(ctx context.Context, n int) (int, error) { return n * 10, nil })
	v, ok = tsk.Run(context.Background(), 3).Await()
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestTaskRunNilContext(t *testing.T) {
	t.Parallel()

	tsk := task.New(func(ctx context.Context, n int) (int, error) { return n, nil })
	future := tsk.Run(nil, 9) //nolint:staticcheck // nil ctx falls back to Background
	value, ok := future.Await()
	require.True(t, ok)
	assert.Equal(t, 9, value)
}
