package engine

import (
	"context"

	"github.com/driftline/syncer/internal/crypto"
	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

// ResolveConflictsCommand hands each conflicted group's progress snapshot to
// the injected resolver and records whether any resolution made forward
// progress. The outer loop reads that flag to decide whether another
// download/apply/resolve iteration is warranted.
type ResolveConflictsCommand struct {
	resolver      ConflictResolver
	cryptographer crypto.Cryptographer
	log           *logger.Logger
}

// NewResolveConflictsCommand builds the resolution stage.
func NewResolveConflictsCommand(resolver ConflictResolver, cryptographer crypto.Cryptographer, log *logger.Logger) *ResolveConflictsCommand {
	return &ResolveConflictsCommand{
		resolver:      resolver,
		cryptographer: cryptographer,
		log:           log,
	}
}

func (c *ResolveConflictsCommand) Name() string { return "resolve_conflicts" }

// ModelNeutralExecute implements [ModelChangingCommand]. Resolution has no
// cross-group setup.
func (c *ResolveConflictsCommand) ModelNeutralExecute(ctx context.Context, session *sessions.SyncSession) error {
	return nil
}

// GroupsToChange returns the enabled groups with at least one conflicting
// entry.
func (c *ResolveConflictsCommand) GroupsToChange(session *sessions.SyncSession) []models.Group {
	return session.EnabledGroupsWithConflicts()
}

// ModelChangingExecute implements [ModelChangingCommand]. A missing
// directory or a group without conflict progress means there is nothing to
// resolve, which is not an error.
func (c *ResolveConflictsCommand) ModelChangingExecute(ctx context.Context, session *sessions.SyncSession, group models.Group) models.SyncerError {
	dir, ok := session.Directory()
	if !ok {
		c.log.Warn().
			Str("func", "ResolveConflictsCommand.ModelChangingExecute").
			Stringer("group", group).
			Msg("no directory, nothing to resolve")
		return models.SyncerOK
	}

	status := session.Status()
	progress := status.ConflictProgress(group)
	if progress == nil {
		return models.SyncerOK
	}

	trans := syncable.NewWriteTransaction(dir)
	defer trans.Close()

	resolved := c.resolver.ResolveConflicts(trans, c.cryptographer, progress, status)
	status.UpdateConflictsResolved(resolved)

	c.log.Debug().
		Str("func", "ResolveConflictsCommand.ModelChangingExecute").
		Stringer("group", group).
		Bool("resolved", resolved).
		Int("remaining", progress.ConflictingItemsSize()).
		Msg("conflict resolution pass finished")
	return models.SyncerOK
}
