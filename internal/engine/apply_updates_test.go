package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

func TestApplyUpdates_CreatesEntryAndFoldsVersion(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	update := bookmarkUpdate(models.ServerID("b1"), 7)
	session.Status().MutableUpdateProgress(models.GroupUI).AddVerifyResult(models.VerifySuccess, update)

	cmd := NewApplyUpdatesCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	dir, ok := session.Directory()
	require.True(t, ok)
	entry := readEntry(t, dir, update.ID)
	assert.Equal(t, update.Version, entry.BaseVersion())
	assert.Equal(t, update.Name, entry.Name())
	assert.False(t, entry.IsUnappliedUpdate())
	assert.False(t, entry.IsInConflict())
}

func TestApplyUpdates_LocalEditBecomesConflict(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	id := models.ServerID("b1")
	createLocalEntry(t, dir, id, "", func(e syncable.MutableEntry) {
		e.PutSpecifics(models.EntitySpecifics{Type: models.Bookmarks})
		e.PutBaseVersion(3)
		e.PutIsUnsynced(true)
	})

	update := bookmarkUpdate(id, 7)
	session.Status().MutableUpdateProgress(models.GroupUI).AddVerifyResult(models.VerifySuccess, update)

	cmd := NewApplyUpdatesCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	entry := readEntry(t, dir, id)
	assert.True(t, entry.IsInConflict())
	assert.Equal(t, int64(3), entry.BaseVersion(), "base shadow must stay untouched while in conflict")
	assert.Equal(t, int64(7), entry.ServerVersion())

	progress := session.Status().ConflictProgress(models.GroupUI)
	require.NotNil(t, progress)
	assert.True(t, progress.HasConflictingItem(id))
}

func TestApplyUpdates_TombstoneForUnknownEntryIsNoop(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	update := models.SyncEntity{
		ID: models.ServerID("gone"), ParentID: models.Root, Version: 4, Deleted: true,
		Specifics: models.EntitySpecifics{Type: models.Bookmarks},
	}
	session.Status().MutableUpdateProgress(models.GroupUI).AddVerifyResult(models.VerifySuccess, update)

	cmd := NewApplyUpdatesCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	dir, ok := session.Directory()
	require.True(t, ok)
	trans := syncable.NewReadTransaction(dir)
	defer trans.Close()
	assert.False(t, syncable.GetEntryByID(&trans.BaseTransaction, update.ID).Good())
}

func TestApplyUpdates_FailedUpdatesAreNotApplied(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	update := bookmarkUpdate(models.ServerID("bad"), 2)
	session.Status().MutableUpdateProgress(models.GroupUI).AddVerifyResult(models.VerifyFail, update)

	cmd := NewApplyUpdatesCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	dir, ok := session.Directory()
	require.True(t, ok)
	trans := syncable.NewReadTransaction(dir)
	defer trans.Close()
	assert.False(t, syncable.GetEntryByID(&trans.BaseTransaction, update.ID).Good())
}

func TestApplyUpdates_GroupsToChange(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())

	cmd := NewApplyUpdatesCommand(logger.Nop())
	assert.Empty(t, cmd.GroupsToChange(session), "no buffered updates means no groups")

	session.Status().MutableUpdateProgress(models.GroupDB).
		AddVerifyResult(models.VerifySuccess, bookmarkUpdate(models.ServerID("a1"), 1))
	assert.Equal(t, []models.Group{models.GroupDB}, cmd.GroupsToChange(session))
}
