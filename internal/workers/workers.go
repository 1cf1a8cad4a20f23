package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers preserving their order.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
