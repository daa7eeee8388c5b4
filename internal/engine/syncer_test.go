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

func passiveRouting() models.RoutingInfo {
	return models.RoutingInfo{models.Bookmarks: models.GroupPassive}
}

func TestSyncer_AppliedUpdateRoundTripsVersion(t *testing.T) {
	session := newTestSession(t, passiveRouting())
	update := bookmarkUpdate(models.ServerID("b1"), 42)
	session.SetDownloadedUpdates([]models.SyncEntity{update}, models.NewModelTypeSet(models.Bookmarks))

	resolver, err := NewConflictResolver(PolicyServerWins, logger.Nop())
	require.NoError(t, err)
	syncer := NewSyncer(resolver, newTestCryptographer(t), logger.Nop())

	result := syncer.SyncShare(context.Background(), session)
	require.True(t, result.IsOK())

	dir, ok := session.Directory()
	require.True(t, ok)
	entry := readEntry(t, dir, update.ID)
	assert.Equal(t, update.Version, entry.BaseVersion())
	assert.False(t, entry.IsInConflict())
	assert.False(t, session.Status().ConflictsResolved(), "a clean apply is not a conflict resolution")
}

func TestSyncer_ConflictResolvedEndToEnd(t *testing.T) {
	session := newTestSession(t, passiveRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	id := models.ServerID("b1")
	createLocalEntry(t, dir, id, "", func(e syncable.MutableEntry) {
		e.PutSpecifics(models.EntitySpecifics{Type: models.Bookmarks})
		e.PutBaseVersion(3)
		e.PutIsUnsynced(true)
	})

	update := bookmarkUpdate(id, 9)
	session.SetDownloadedUpdates([]models.SyncEntity{update}, models.NewModelTypeSet(models.Bookmarks))

	resolver, err := NewConflictResolver(PolicyServerWins, logger.Nop())
	require.NoError(t, err)
	syncer := NewSyncer(resolver, newTestCryptographer(t), logger.Nop())

	result := syncer.SyncShare(context.Background(), session)
	require.True(t, result.IsOK())

	entry := readEntry(t, dir, id)
	assert.Equal(t, int64(9), entry.BaseVersion())
	assert.False(t, entry.IsInConflict())
	assert.True(t, session.Status().ConflictsResolved(),
		"forward progress must be visible to the outer loop")
}

func TestSyncer_IgnorePolicyLeavesConflictStanding(t *testing.T) {
	session := newTestSession(t, passiveRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	id := models.ServerID("b1")
	createLocalEntry(t, dir, id, "", func(e syncable.MutableEntry) {
		e.PutSpecifics(models.EntitySpecifics{Type: models.Bookmarks})
		e.PutBaseVersion(3)
		e.PutIsUnsynced(true)
	})

	session.SetDownloadedUpdates(
		[]models.SyncEntity{bookmarkUpdate(id, 9)},
		models.NewModelTypeSet(models.Bookmarks),
	)

	resolver, err := NewConflictResolver(PolicyIgnore, logger.Nop())
	require.NoError(t, err)
	syncer := NewSyncer(resolver, newTestCryptographer(t), logger.Nop())

	result := syncer.SyncShare(context.Background(), session)
	require.True(t, result.IsOK())

	entry := readEntry(t, dir, id)
	assert.True(t, entry.IsInConflict())
	assert.Equal(t, int64(3), entry.BaseVersion())
	assert.False(t, session.Status().ConflictsResolved())
}
