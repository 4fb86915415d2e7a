// Package workers runs the service's background jobs.
//
// Each job implements [Worker]: a ticker-driven goroutine started once at
// boot and stopped during graceful shutdown. The only job today is the media
// sweeper, which reclaims encrypted blobs whose metadata row is gone or was
// never referenced by a message.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/worker_mock.go -package=mock

// Worker is the lifecycle contract of a background job.
type Worker interface {
	// Start launches the job's background goroutine. Starting a running
	// job restarts it. The goroutine exits when ctx is cancelled or Stop
	// is called.
	Start(ctx context.Context)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()
}
