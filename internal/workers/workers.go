// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "sync"

// Worker is the interface implemented by any background worker.
// Run blocks for the duration of the worker's work; Stop requests
// termination and must be idempotent.
type Worker interface {
	Run()
	Stop()
}

// Workers aggregates background workers so the composition root can start
// and tear them all down together.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs an aggregate over the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run launches every worker in its own goroutine and returns immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		go worker.Run()
	}
}

// Stop requests termination of every worker.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// closeOnce returns a function that closes ch exactly once, guarding
// repeated Stop calls.
func closeOnce(ch chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() { close(ch) })
	}
}
