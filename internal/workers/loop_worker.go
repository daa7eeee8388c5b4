package workers

import (
	"sync"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/models"
)

type workItem struct {
	work WorkCallback
	done chan models.SyncerError
}

// LoopWorker implements [ModelSafeWorker] for groups with thread affinity.
// It owns a dedicated goroutine; every callback handed to
// DoWorkAndWaitUntilDone is executed on that goroutine, one at a time, in
// arrival order.
type LoopWorker struct {
	group models.Group
	items chan workItem
	log   *logger.Logger

	stopOnce sync.Once
	stopped  chan struct{}
}

// NewLoopWorker constructs and starts a [LoopWorker] for the given group.
func NewLoopWorker(group models.Group, log *logger.Logger) *LoopWorker {
	w := &LoopWorker{
		group:   group,
		items:   make(chan workItem),
		log:     log,
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *LoopWorker) run() {
	for {
		select {
		case item := <-w.items:
			item.done <- item.work()
		case <-w.stopped:
			return
		}
	}
}

// DoWorkAndWaitUntilDone implements [ModelSafeWorker]. After Stop it
// reports GroupStepFailed without running the callback.
func (w *LoopWorker) DoWorkAndWaitUntilDone(work WorkCallback) models.SyncerError {
	item := workItem{work: work, done: make(chan models.SyncerError, 1)}
	select {
	case w.items <- item:
		return <-item.done
	case <-w.stopped:
		w.log.Warn().
			Str("func", "LoopWorker.DoWorkAndWaitUntilDone").
			Stringer("group", w.group).
			Msg("work submitted to stopped worker")
		return models.GroupStepFailed
	}
}

// Group implements [ModelSafeWorker].
func (w *LoopWorker) Group() models.Group { return w.group }

// Stop terminates the worker goroutine. Pending callers are released with
// GroupStepFailed. Stopping twice is a no-op.
func (w *LoopWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopped) })
}
