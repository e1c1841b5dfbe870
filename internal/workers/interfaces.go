// Package workers runs background jobs next to the HTTP and gRPC servers.
//
// A job implements Worker. Workers starts a set of them and waits until all
// of them have returned, which happens once the context they were started
// with is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is done. Implementations log their own failures;
// nothing is reported back to the caller.
type Worker interface {
	Run(ctx context.Context)
}
