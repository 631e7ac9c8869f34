// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Group that starts workers and
// short-lived tasks under one cancellable context and waits for all of them
// to finish on Stop.
package workers

import "context"

// Worker is the interface that must be implemented by any long-lived
// background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
