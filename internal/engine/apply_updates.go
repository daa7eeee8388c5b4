package engine

import (
	"context"
	"sort"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

// ApplyUpdatesCommand folds verified updates into the entry store. Each
// accepted update lands in the entry's server shadow; if the entry has no
// uncommitted local edit the shadow is applied immediately, otherwise the
// entry is flagged as conflicting and left for the resolver.
type ApplyUpdatesCommand struct {
	log *logger.Logger
}

// NewApplyUpdatesCommand builds the application stage.
func NewApplyUpdatesCommand(log *logger.Logger) *ApplyUpdatesCommand {
	return &ApplyUpdatesCommand{log: log}
}

func (c *ApplyUpdatesCommand) Name() string { return "apply_updates" }

// ModelNeutralExecute implements [ModelChangingCommand]. Application has no
// cross-group setup.
func (c *ApplyUpdatesCommand) ModelNeutralExecute(ctx context.Context, session *sessions.SyncSession) error {
	return nil
}

// GroupsToChange returns every enabled group that buffered at least one
// verified update this cycle, in ascending order.
func (c *ApplyUpdatesCommand) GroupsToChange(session *sessions.SyncSession) []models.Group {
	groups := make([]models.Group, 0, 2)
	for _, group := range session.EnabledGroups() {
		progress := session.Status().UpdateProgress(group)
		if progress != nil && progress.VerifiedUpdatesSize() > 0 {
			groups = append(groups, group)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// ModelChangingExecute implements [ModelChangingCommand]: it consumes the
// group's verified-updates buffer in arrival order under one write
// transaction.
func (c *ApplyUpdatesCommand) ModelChangingExecute(ctx context.Context, session *sessions.SyncSession, group models.Group) models.SyncerError {
	dir, ok := session.Directory()
	if !ok {
		return models.DirectoryLookupFailed
	}
	status := session.Status()

	progress := status.UpdateProgress(group)
	if progress == nil {
		return models.SyncerOK
	}

	trans := syncable.NewWriteTransaction(dir)
	defer trans.Close()

	for _, verified := range progress.VerifiedUpdates() {
		switch verified.Result {
		case models.VerifySuccess, models.VerifyUndelete:
		default:
			continue
		}

		if err := c.applyUpdate(trans, verified.Entity, status, group); err != nil {
			c.log.Err(err).
				Str("func", "ApplyUpdatesCommand.ModelChangingExecute").
				Stringer("id", verified.Entity.ID).
				Msg("update could not be applied")
			return models.GroupStepFailed
		}
	}

	return models.SyncerOK
}

func (c *ApplyUpdatesCommand) applyUpdate(
	trans *syncable.WriteTransaction,
	update models.SyncEntity,
	status *sessions.StatusController,
	group models.Group,
) error {
	entry := syncable.GetMutableEntryByID(trans, update.ID)
	if !entry.Good() {
		if update.Deleted {
			// A tombstone for an entry we never had needs no work.
			return nil
		}
		created, err := syncable.CreateEntry(trans, update.ID, update.ParentID, update.Name, update.UniqueClientTag)
		if err != nil {
			return err
		}
		entry = created
	}

	entry.PutServerUpdate(update)

	if entry.IsUnsynced() {
		// Local edit and server update on the same entry: leave the
		// server shadow unapplied and hand the entry to the resolver.
		status.MutableConflictProgress(group).AddSimpleConflictingItem(entry.ID())
		return nil
	}

	entry.ApplyServerShadow()
	if progress := status.ConflictProgress(group); progress != nil {
		progress.EraseConflictingItem(entry.ID())
	}
	return nil
}
