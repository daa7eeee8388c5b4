package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/internal/workers"
	"github.com/driftline/syncer/models"
)

// bookmarkRouting is the routing table most tests use: two UI types, one DB
// type, everything else falls back to GROUP_PASSIVE.
func bookmarkRouting() models.RoutingInfo {
	return models.RoutingInfo{
		models.Bookmarks:   models.GroupUI,
		models.Preferences: models.GroupUI,
		models.Autofill:    models.GroupDB,
	}
}

func newTestSession(t *testing.T, routing models.RoutingInfo) *sessions.SyncSession {
	t.Helper()

	dir := syncable.NewInMemoryDirectory(logger.Nop())
	set := workers.NewWorkerSet(routing, logger.Nop())
	t.Cleanup(set.Stop)

	return sessions.NewSyncSession(dir, routing, set, sessions.NewStatusController())
}

// createLocalEntry seeds one entry under the root and applies mutate to it
// inside the same write transaction.
func createLocalEntry(t *testing.T, dir *syncable.Directory, id models.ID, tag string, mutate func(syncable.MutableEntry)) {
	t.Helper()

	trans := syncable.NewWriteTransaction(dir)
	defer trans.Close()

	entry, err := syncable.CreateEntry(trans, id, models.Root, "entry-"+id.String(), tag)
	require.NoError(t, err)
	if mutate != nil {
		mutate(entry)
	}
}

// readEntry returns a snapshot handle for assertions.
func readEntry(t *testing.T, dir *syncable.Directory, id models.ID) syncable.Entry {
	t.Helper()

	trans := syncable.NewReadTransaction(dir)
	defer trans.Close()

	entry := syncable.GetEntryByID(&trans.BaseTransaction, id)
	require.True(t, entry.Good(), "entry %s not found", id)
	return entry
}

func bookmarkUpdate(id models.ID, version int64) models.SyncEntity {
	return models.SyncEntity{
		ID:        id,
		ParentID:  models.Root,
		Version:   version,
		Name:      "bookmark-" + id.String(),
		Specifics: models.EntitySpecifics{Type: models.Bookmarks},
	}
}
