package service

import (
	"context"
	"sync"

	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/domain"
	"github.com/matan-workneh7/BFS-Searching-Algorithm-2nd-trial/internal/roadnet"
)

// NetworkWriter is the storage contract the bulk loader writes through.
type NetworkWriter interface {
	UpsertJunction(ctx context.Context, j domain.Junction) error
	UpsertRoad(ctx context.Context, road domain.Road) error
}

// TaskError accumulates errors produced during bulk loading.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BulkLoader writes road-network snapshots into the graph store with a
// worker pool. Junctions load first so road upserts always find their
// endpoints.
type BulkLoader struct {
	writer  NetworkWriter
	workers int
}

// NewBulkLoader creates a BulkLoader with the provided concurrency.
func NewBulkLoader(writer NetworkWriter, workers int) *BulkLoader {
	if workers <= 0 {
		workers = 4
	}
	return &BulkLoader{writer: writer, workers: workers}
}

// LoadSnapshot ingests all junctions, then all roads.
func (l *BulkLoader) LoadSnapshot(ctx context.Context, snap roadnet.Snapshot) error {
	if err := runPool(ctx, l.workers, snap.Junctions, l.writer.UpsertJunction); err != nil {
		return err
	}
	return runPool(ctx, l.workers, snap.Roads, l.writer.UpsertRoad)
}

func runPool[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	tasks := make(chan T)
	taskErr := &TaskError{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := ctx.Err(); err != nil {
					mu.Lock()
					taskErr.append(err)
					mu.Unlock()
					return
				}
				if err := fn(ctx, item); err != nil {
					mu.Lock()
					taskErr.append(err)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if err := taskErr.asError(); err != nil {
		return err
	}
	return ctx.Err()
}
