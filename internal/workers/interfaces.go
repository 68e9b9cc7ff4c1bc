// Package workers runs the background jobs of the server alongside the
// HTTP listener.
//
// It defines the Worker interface and a Workers aggregate that starts every
// worker and waits for all of them to stop once the context is canceled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is canceled.
//
// Example implementation:
//
//	type tickWorker struct{}
//
//	func (w *tickWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionPurger removes expired login sessions from storage.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
