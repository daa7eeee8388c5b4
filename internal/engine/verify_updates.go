package engine

import (
	"context"
	"sort"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

// VerifyUpdatesCommand classifies every entity in the downloaded-updates
// batch and buffers the outcome in the owning group's update progress. A
// failing entity is recorded and skipped; it never aborts the batch.
type VerifyUpdatesCommand struct {
	log *logger.Logger
}

// NewVerifyUpdatesCommand builds the verification stage.
func NewVerifyUpdatesCommand(log *logger.Logger) *VerifyUpdatesCommand {
	return &VerifyUpdatesCommand{log: log}
}

func (c *VerifyUpdatesCommand) Name() string { return "verify_updates" }

// ModelNeutralExecute implements [ModelChangingCommand]. Verification has no
// cross-group setup.
func (c *VerifyUpdatesCommand) ModelNeutralExecute(ctx context.Context, session *sessions.SyncSession) error {
	return nil
}

// GroupsToChange returns, in ascending order, every group at least one
// batch entity is placed in. Placement of tombstones needs the local entry,
// so the computation runs under a read transaction.
func (c *VerifyUpdatesCommand) GroupsToChange(session *sessions.SyncSession) []models.Group {
	dir, ok := session.Directory()
	if !ok {
		return nil
	}

	trans := syncable.NewReadTransaction(dir)
	defer trans.Close()

	seen := make(map[models.Group]struct{})
	for _, entity := range session.DownloadedUpdates() {
		group := placementGroup(&trans.BaseTransaction, entity, session.Routing())
		seen[group] = struct{}{}
	}

	groups := make([]models.Group, 0, len(seen))
	for group := range seen {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// ModelChangingExecute implements [ModelChangingCommand]: it verifies the
// subset of the batch placed in the active group, in arrival order.
func (c *VerifyUpdatesCommand) ModelChangingExecute(ctx context.Context, session *sessions.SyncSession, group models.Group) models.SyncerError {
	dir, ok := session.Directory()
	if !ok {
		return models.DirectoryLookupFailed
	}
	status := session.Status()

	trans := syncable.NewReadTransaction(dir)
	defer trans.Close()

	for _, entity := range session.DownloadedUpdates() {
		if placementGroup(&trans.BaseTransaction, entity, session.Routing()) != group {
			continue
		}

		result := verifyUpdate(&trans.BaseTransaction, entity, session.RequestedTypes())
		status.MutableUpdateProgress(group).AddVerifyResult(result, entity)

		status.AddUpdatesReceived(1)
		if entity.Deleted {
			status.AddTombstoneUpdates(1)
		}
		if !updateContainsNewVersion(&trans.BaseTransaction, entity) {
			status.AddReflectedUpdates(1)
		}

		if result != models.VerifySuccess {
			c.log.Debug().
				Str("func", "VerifyUpdatesCommand.ModelChangingExecute").
				Stringer("id", entity.ID).
				Stringer("result", result).
				Msg("update not verified as success")
		}
	}

	return models.SyncerOK
}

// placementGroup derives the group that must change the entity: the new
// entity's type if the update is not a deletion, otherwise the existing
// local entry's type, otherwise unspecified (which routes passive).
func placementGroup(trans *syncable.BaseTransaction, entity models.SyncEntity, routing models.RoutingInfo) models.Group {
	return models.GroupForModelType(placementType(trans, entity), routing)
}

func placementType(trans *syncable.BaseTransaction, entity models.SyncEntity) models.ModelType {
	if !entity.Deleted {
		return entity.ModelType()
	}
	if t := entity.ModelType(); t != models.Unspecified {
		return t
	}
	local := syncable.GetEntryByID(trans, entity.ID)
	if local.Good() {
		return local.ModelType()
	}
	return models.Unspecified
}

// verifyUpdate runs the verification rules in decision order. The first
// rule that decides wins; an update no rule rejects is a success.
func verifyUpdate(trans *syncable.BaseTransaction, entity models.SyncEntity, requested models.ModelTypeSet) models.VerifyResult {
	if entity.ID.IsNull() || !entity.ID.ServerKnows() {
		return models.VerifyFail
	}
	if entity.ID.IsRoot() {
		// The root is never the subject of an update.
		return models.VerifyFail
	}
	if !entity.Deleted && entity.Name == "" {
		return models.VerifyFail
	}
	if !entity.Deleted && entity.ModelType() == models.Unspecified {
		return models.VerifyCorrupt
	}

	local := syncable.GetEntryByID(trans, entity.ID)
	if local.Good() && local.UniqueClientTag() != "" && entity.UniqueClientTag != "" &&
		local.UniqueClientTag() != entity.UniqueClientTag {
		return models.VerifyFail
	}

	if entity.Deleted && !requested.Has(placementType(trans, entity)) {
		// A tombstone for a datatype this round never asked for is
		// ignored, not an error.
		return models.VerifySkip
	}

	if local.Good() && !entity.Deleted {
		if local.ModelType() != models.Unspecified && local.ModelType() != entity.ModelType() {
			return models.VerifyInconsistent
		}
		if !local.IsDel() && local.IsDir() != entity.Folder {
			return models.VerifyInconsistent
		}
		if local.IsDel() {
			return models.VerifyUndelete
		}
	}

	return models.VerifySuccess
}

// updateContainsNewVersion reports whether the update carries state the
// client has not seen. Its inverse is the "reflected update" counter: an
// update that is most likely an echo of this client's own prior commit.
//
// The heuristic is knowingly imprecise around ID reassignment and
// unique-tag collisions; those cases are rare and miscounting them only
// skews a counter, never correctness.
func updateContainsNewVersion(trans *syncable.BaseTransaction, entity models.SyncEntity) bool {
	local := syncable.GetEntryByID(trans, entity.ID)
	if !local.Good() {
		// Redelivered deletions for entries already purged locally (or a
		// first-time sync) carry nothing new.
		if entity.Deleted {
			return false
		}
		return true
	}

	if local.UniqueClientTag() != "" && local.IsDel() && entity.Deleted {
		// Tagged tombstones have their versions zeroed on deletion, so the
		// version comparison below is meaningless for them.
		return true
	}

	return entity.Version > local.BaseVersion()
}
