// Package worker runs independent pipeline tasks over a bounded pool
// of goroutines.
package worker

import (
	"context"
	"fmt"
	"sync"
)

// Task is one named unit of pipeline work.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pool executes tasks with bounded concurrency.
type Pool struct {
	workers int
}

// NewPool creates a pool running at most workers tasks at once.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes every task and returns the first failure. A failing
// task cancels the shared context so queued tasks are skipped, but
// tasks already running are allowed to finish.
func (p *Pool) Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan Task)
	errs := make(chan error, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				if ctx.Err() != nil {
					continue
				}
				if err := task.Run(ctx); err != nil {
					errs <- fmt.Errorf("%s: %w", task.Name, err)
					cancel()
				}
			}
		}()
	}

	for _, task := range tasks {
		queue <- task
	}
	close(queue)
	wg.Wait()
	close(errs)

	if err, ok := <-errs; ok {
		return err
	}
	return ctx.Err()
}
