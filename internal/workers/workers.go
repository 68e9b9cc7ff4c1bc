package workers

import (
	"context"
	"sync"
)

// Workers is the set of background jobs started with the server.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts every worker in its own goroutine and returns after all of them
// have stopped.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
