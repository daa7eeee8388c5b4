// Package sessions holds the per-cycle state of the sync engine: the
// session object threaded through every command, the status controller with
// its counters and progress trackers, and the group restriction mechanism.
package sessions

import (
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/internal/workers"
	"github.com/driftline/syncer/models"
)

// SyncSession carries everything one sync cycle needs: the directory
// handle, the type-to-group routing table, the per-group workers, the
// downloaded-updates batch, and the status controller. It is created by the
// outer scheduler and threaded through every command invocation.
type SyncSession struct {
	dir     *syncable.Directory
	routing models.RoutingInfo
	workers *workers.WorkerSet
	status  *StatusController

	downloadedUpdates []models.SyncEntity
	requestedTypes    models.ModelTypeSet
}

// NewSyncSession builds a session for one cycle. dir may be nil when the
// directory failed to open; commands observe that as DirectoryLookupFailed.
func NewSyncSession(
	dir *syncable.Directory,
	routing models.RoutingInfo,
	workerSet *workers.WorkerSet,
	status *StatusController,
) *SyncSession {
	return &SyncSession{
		dir:     dir,
		routing: routing,
		workers: workerSet,
		status:  status,
	}
}

// Directory returns the entry store handle. ok is false when the directory
// lookup failed.
func (s *SyncSession) Directory() (dir *syncable.Directory, ok bool) {
	return s.dir, s.dir != nil
}

// Routing returns the model type → group routing table.
func (s *SyncSession) Routing() models.RoutingInfo { return s.routing }

// Status returns the cycle's status controller.
func (s *SyncSession) Status() *StatusController { return s.status }

// Worker returns the worker servicing group, or nil if the group is not
// enabled in this session.
func (s *SyncSession) Worker(group models.Group) workers.ModelSafeWorker {
	return s.workers.Worker(group)
}

// EnabledGroups returns the groups this session has workers for.
func (s *SyncSession) EnabledGroups() []models.Group {
	return s.workers.EnabledGroups()
}

// EnabledGroupsWithConflicts returns the enabled groups whose conflict
// trackers hold at least one conflicting entry, in ascending group order.
func (s *SyncSession) EnabledGroupsWithConflicts() []models.Group {
	enabled := make(map[models.Group]struct{})
	for _, group := range s.EnabledGroups() {
		enabled[group] = struct{}{}
	}

	groups := make([]models.Group, 0, 2)
	for _, group := range s.status.GroupsWithConflicts() {
		if _, ok := enabled[group]; ok {
			groups = append(groups, group)
		}
	}
	return groups
}

// SetDownloadedUpdates installs the batch of server entities for this cycle
// together with the set of model types the GetUpdates round actually asked
// for.
func (s *SyncSession) SetDownloadedUpdates(entities []models.SyncEntity, requested models.ModelTypeSet) {
	s.downloadedUpdates = entities
	s.requestedTypes = requested
}

// DownloadedUpdates returns the cycle's batch in server-delivery order.
func (s *SyncSession) DownloadedUpdates() []models.SyncEntity {
	return s.downloadedUpdates
}

// RequestedTypes returns the model types requested in this GetUpdates
// round.
func (s *SyncSession) RequestedTypes() models.ModelTypeSet {
	return s.requestedTypes
}
