// Package workers runs independent jobs with bounded concurrency. The CLI
// uses it to fetch several assets at once.
package workers

import "context"

// Worker is one unit of work. Run must return when ctx is canceled.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
