package reconcile

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task is one source adapter call to run during a gather.
type Task[T Candidate] struct {
	// Source is the adapter name reported in the outcome.
	Source string

	// Fetch performs the adapter call. It must honor ctx cancellation.
	Fetch func(ctx context.Context) ([]T, error)
}

// Gather runs all tasks concurrently and waits for every one of them.
//
// Each task gets its own timeout (zero means no extra deadline); a task that
// errors, times out or panics produces a failed Outcome without affecting
// the others. Outcomes are returned in task order so source priority is kept.
func Gather[T Candidate](ctx context.Context, timeout time.Duration, tasks []Task[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(tasks))

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			outcomes[i] = run(ctx, timeout, task)
			// Never propagate: one failing source must not cancel the rest
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

type fetched[T Candidate] struct {
	items []T
	err   error
}

func run[T Candidate](ctx context.Context, timeout time.Duration, task Task[T]) Outcome[T] {
	out := Outcome[T]{Source: task.Source}
	start := time.Now()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Buffered so the fetch goroutine never leaks on a blocked send after a timeout
	done := make(chan fetched[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fetched[T]{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		items, err := task.Fetch(ctx)
		done <- fetched[T]{items: items, err: err}
	}()

	var res fetched[T]
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	out.Elapsed = time.Since(start)
	if res.err != nil {
		out.Err = fmt.Errorf("source %s: %w", task.Source, res.err)
		return out
	}

	out.Items = res.items
	return out
}
