// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Outcome pairs a work item with the error its processing produced, if any.
type Outcome[T any] struct {
	Item T
	Err  error
}

// Collect runs a worker pool over the provided work items and reports every
// item's outcome in input order. One item's failure does not stop the others;
// only context cancellation does, in which case unprocessed items carry the
// context error.
func Collect[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) []Outcome[T] {
	outcomes := make([]Outcome[T], len(items))
	for i, item := range items {
		outcomes[i].Item = item
	}

	if workerCount < 1 {
		workerCount = 1
	}

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					outcomes[idx].Err = err
					continue
				}
				outcomes[idx].Err = process(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return outcomes
}
