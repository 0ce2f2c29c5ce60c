// SPDX-License-Identifier: Apache-2.0

// Package workers runs the client's background workers in a unified way.
// It defines the Worker interface and a Workers aggregate that starts each
// registered worker in order.
package workers

// Worker is a background worker of the gallery client. Run starts the
// worker; implementations either block for the duration of their work or
// spawn goroutines internally.
type Worker interface {
	Run()
}

// Workers starts a fixed set of workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate over the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker, in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
