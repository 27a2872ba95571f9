package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers is a set of workers run together with at most limit in flight.
type Workers struct {
	workers []Worker
	limit   int
}

// New returns an empty set. A limit below 1 runs one worker at a time.
func New(limit int) *Workers {
	if limit < 1 {
		limit = 1
	}
	return &Workers{limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. errs[i] is the result
// of the i-th added worker. A failing worker does not stop the others;
// workers not yet started when ctx is canceled get ctx.Err().
func (w *Workers) Run(ctx context.Context) []error {
	errs := make([]error, len(w.workers))

	var g errgroup.Group
	g.SetLimit(w.limit)
	for i, worker := range w.workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}
