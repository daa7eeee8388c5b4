package workers

import "github.com/driftline/syncer/models"

// PassiveWorker implements [ModelSafeWorker] for GroupPassive: types with
// no thread affinity are safe to mutate from the syncer's own goroutine, so
// the callback runs inline.
type PassiveWorker struct{}

// NewPassiveWorker constructs a [PassiveWorker].
func NewPassiveWorker() *PassiveWorker {
	return &PassiveWorker{}
}

// DoWorkAndWaitUntilDone implements [ModelSafeWorker].
func (w *PassiveWorker) DoWorkAndWaitUntilDone(work WorkCallback) models.SyncerError {
	return work()
}

// Group implements [ModelSafeWorker].
func (w *PassiveWorker) Group() models.Group { return models.GroupPassive }
