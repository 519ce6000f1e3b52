package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	var mu sync.Mutex
	done := map[string]bool{}

	tasks := []Task{}
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		tasks = append(tasks, Task{Name: name, Run: func(ctx context.Context) error {
			mu.Lock()
			done[name] = true
			mu.Unlock()
			return nil
		}})
	}

	require.NoError(t, NewPool(2).Run(context.Background(), tasks))
	assert.Len(t, done, 4)
}

func TestPoolReturnsNamedError(t *testing.T) {
	boom := errors.New("boom")
	tasks := []Task{
		{Name: "ok", Run: func(ctx context.Context) error { return nil }},
		{Name: "bad", Run: func(ctx context.Context) error { return boom }},
	}

	err := NewPool(1).Run(context.Background(), tasks)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
}

func TestPoolSkipsQueuedTasksAfterFailure(t *testing.T) {
	var ran atomic.Int32
	tasks := []Task{
		{Name: "fail", Run: func(ctx context.Context) error { return errors.New("fail") }},
		{Name: "later", Run: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		}},
	}

	err := NewPool(1).Run(context.Background(), tasks)
	require.Error(t, err)
	assert.Equal(t, int32(0), ran.Load())
}

func TestPoolHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	tasks := []Task{{Name: "task", Run: func(ctx context.Context) error {
		ran.Add(1)
		return nil
	}}}

	err := NewPool(2).Run(ctx, tasks)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), ran.Load())
}

func TestPoolEmptyTaskList(t *testing.T) {
	assert.NoError(t, NewPool(3).Run(context.Background(), nil))
}

func TestPoolClampsWorkerCount(t *testing.T) {
	// A nonpositive worker count still runs everything.
	var ran atomic.Int32
	tasks := []Task{{Name: "only", Run: func(ctx context.Context) error {
		ran.Add(1)
		return nil
	}}}
	require.NoError(t, NewPool(0).Run(context.Background(), tasks))
	assert.Equal(t, int32(1), ran.Load())
}
