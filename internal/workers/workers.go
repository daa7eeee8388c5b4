package workers

import (
	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/models"
)

// WorkerSet aggregates one worker per enabled group.
type WorkerSet struct {
	byGroup map[models.Group]ModelSafeWorker
}

// NewWorkerSet builds a worker for every group present in the routing
// table: GroupPassive gets a [PassiveWorker], every other group a running
// [LoopWorker].
func NewWorkerSet(routing models.RoutingInfo, log *logger.Logger) *WorkerSet {
	set := &WorkerSet{byGroup: make(map[models.Group]ModelSafeWorker)}
	for _, group := range routing.Groups() {
		if group == models.GroupPassive {
			set.byGroup[group] = NewPassiveWorker()
			continue
		}
		set.byGroup[group] = NewLoopWorker(group, log)
	}
	return set
}

// NewWorkerSetFromWorkers builds a set from explicit workers, keyed by the
// group each worker reports. Used when the caller constructs workers itself.
func NewWorkerSetFromWorkers(ws ...ModelSafeWorker) *WorkerSet {
	set := &WorkerSet{byGroup: make(map[models.Group]ModelSafeWorker, len(ws))}
	for _, w := range ws {
		set.byGroup[w.Group()] = w
	}
	return set
}

// Worker returns the worker for group, or nil if the group is not enabled.
func (s *WorkerSet) Worker(group models.Group) ModelSafeWorker {
	return s.byGroup[group]
}

// EnabledGroups returns every group that has a worker.
func (s *WorkerSet) EnabledGroups() []models.Group {
	groups := make([]models.Group, 0, len(s.byGroup))
	for group := range s.byGroup {
		groups = append(groups, group)
	}
	return groups
}

// Stop terminates every loop worker in the set.
func (s *WorkerSet) Stop() {
	for _, worker := range s.byGroup {
		if lw, ok := worker.(*LoopWorker); ok {
			lw.Stop()
		}
	}
}
