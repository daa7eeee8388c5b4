package engine

import (
	"context"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

// BuildConflictSetsCommand merges the flat per-group set of conflicting
// entry IDs into conflict sets that respect structural relationships:
// entries pulled into a parent-chain cycle, children of a to-be-deleted
// non-empty directory, and siblings claiming the same position. Entries in
// one set cannot be resolved independently.
type BuildConflictSetsCommand struct {
	log *logger.Logger
}

// NewBuildConflictSetsCommand builds the conflict-set stage.
func NewBuildConflictSetsCommand(log *logger.Logger) *BuildConflictSetsCommand {
	return &BuildConflictSetsCommand{log: log}
}

func (c *BuildConflictSetsCommand) Name() string { return "build_conflict_sets" }

// ModelNeutralExecute implements [ModelChangingCommand]. Set building has no
// cross-group setup.
func (c *BuildConflictSetsCommand) ModelNeutralExecute(ctx context.Context, session *sessions.SyncSession) error {
	return nil
}

// GroupsToChange returns the enabled groups with at least one conflicting
// entry. Groups without conflicts are skipped entirely; the merge rules
// assume a non-empty conflict set.
func (c *BuildConflictSetsCommand) GroupsToChange(session *sessions.SyncSession) []models.Group {
	return session.EnabledGroupsWithConflicts()
}

// ModelChangingExecute implements [ModelChangingCommand]. The partition is
// rebuilt from scratch on every run, so rerunning with unchanged conflict
// progress yields the same sets.
func (c *BuildConflictSetsCommand) ModelChangingExecute(ctx context.Context, session *sessions.SyncSession, group models.Group) models.SyncerError {
	dir, ok := session.Directory()
	if !ok {
		return models.DirectoryLookupFailed
	}

	progress := session.Status().MutableConflictProgress(group)

	trans := syncable.NewWriteTransaction(dir)
	defer trans.Close()

	progress.ClearConflictSets()
	for _, id := range progress.ConflictingItemIDs() {
		entry := syncable.GetMutableEntryByID(trans, id)
		if !entry.Good() {
			// Stale conflict record; the entry is gone.
			progress.EraseConflictingItem(id)
			continue
		}
		c.mergeIntroducedLoops(trans, entry.Entry, progress)
		c.mergeNonEmptyDirDeletes(trans, entry.Entry, progress)
		c.mergePositionCollisions(trans, entry.Entry, progress)
	}

	c.log.Debug().
		Str("func", "BuildConflictSetsCommand.ModelChangingExecute").
		Stringer("group", group).
		Int("conflicting", progress.ConflictingItemsSize()).
		Int("sets", progress.ConflictSetsSize()).
		Msg("conflict sets built")
	return models.SyncerOK
}

// mergeIntroducedLoops handles parent changes that would create a cycle: it
// walks the local ancestor chain starting from the entry's proposed server
// parent and, if the walk revisits the entry itself, merges every
// conflicting entry on the cycle into one set. The walk is bounded by a
// visited set, never recursive.
func (c *BuildConflictSetsCommand) mergeIntroducedLoops(
	trans *syncable.WriteTransaction,
	entry syncable.Entry,
	progress *sessions.ConflictProgress,
) {
	if !entry.IsUnappliedUpdate() || entry.ServerParentID() == entry.ParentID() {
		return
	}

	visited := make(map[models.ID]struct{})
	chain := make([]models.ID, 0, 8)

	cursor := entry.ServerParentID()
	for !cursor.IsNull() && !cursor.IsRoot() {
		if cursor == entry.ID() {
			// Cycle confirmed: the entries on the chain stand or fall
			// together.
			for _, ancestor := range chain {
				if progress.HasConflictingItem(ancestor) {
					progress.MergeSets(entry.ID(), ancestor)
				}
			}
			return
		}
		if _, seen := visited[cursor]; seen {
			return
		}
		visited[cursor] = struct{}{}

		ancestor := syncable.GetEntryByID(&trans.BaseTransaction, cursor)
		if !ancestor.Good() {
			return
		}
		chain = append(chain, cursor)
		cursor = ancestor.ParentID()
	}
}

// mergeNonEmptyDirDeletes handles a directory the server deletes while it
// still has live local children: the deletion cannot proceed without
// deciding the children's fate, so the directory and each live child are
// merged into one set.
func (c *BuildConflictSetsCommand) mergeNonEmptyDirDeletes(
	trans *syncable.WriteTransaction,
	entry syncable.Entry,
	progress *sessions.ConflictProgress,
) {
	if !entry.IsDir() || !entry.ServerIsDel() {
		return
	}

	for _, childID := range syncable.GetChildIDs(&trans.BaseTransaction, entry.ID()) {
		child := syncable.GetEntryByID(&trans.BaseTransaction, childID)
		if !child.Good() || child.IsDel() {
			continue
		}
		progress.MergeSets(entry.ID(), childID)
	}
}

// mergePositionCollisions handles two conflicting siblings whose pending
// server updates claim the same position under the same parent.
func (c *BuildConflictSetsCommand) mergePositionCollisions(
	trans *syncable.WriteTransaction,
	entry syncable.Entry,
	progress *sessions.ConflictProgress,
) {
	if !entry.IsUnappliedUpdate() {
		return
	}

	for _, otherID := range progress.ConflictingItemIDs() {
		if otherID == entry.ID() {
			continue
		}
		other := syncable.GetEntryByID(&trans.BaseTransaction, otherID)
		if !other.Good() || !other.IsUnappliedUpdate() {
			continue
		}
		if other.ServerParentID() == entry.ServerParentID() &&
			other.ServerPosition() == entry.ServerPosition() {
			progress.MergeSets(entry.ID(), otherID)
		}
	}
}
