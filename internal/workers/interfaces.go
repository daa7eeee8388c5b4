// Package workers provides the model-safe work dispatchers of the sync
// engine. Each concurrency group is serviced by exactly one worker; a
// command's per-group phase is handed to that group's worker so entries of
// the group's model types are only ever mutated on the thread responsible
// for them.
package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/model_safe_worker_mock.go -package=mock

import "github.com/driftline/syncer/models"

// WorkCallback is one unit of group-restricted work.
type WorkCallback func() models.SyncerError

// ModelSafeWorker runs work callbacks on the goroutine owning a group.
//
// Implementations must be safe for concurrent DoWorkAndWaitUntilDone calls
// and must run callbacks one at a time.
type ModelSafeWorker interface {
	// DoWorkAndWaitUntilDone runs work on the worker's goroutine and
	// blocks until it has finished, returning the callback's result.
	DoWorkAndWaitUntilDone(work WorkCallback) models.SyncerError

	// Group returns the concurrency group this worker services.
	Group() models.Group
}
