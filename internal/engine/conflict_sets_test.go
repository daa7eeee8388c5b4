package engine

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/sessions"
	"github.com/driftline/syncer/internal/syncable"
	"github.com/driftline/syncer/models"
)

func TestBuildConflictSets_NoConflictsMeansNoGroups(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())

	build := NewBuildConflictSetsCommand(logger.Nop())
	resolve := NewResolveConflictsCommand(&ignoreResolver{}, nil, logger.Nop())

	assert.Empty(t, build.GroupsToChange(session))
	assert.Empty(t, resolve.GroupsToChange(session))
}

func TestBuildConflictSets_IntroducedLoop(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	a, b := models.ServerID("a"), models.ServerID("b")
	createLocalEntry(t, dir, a, "", func(e syncable.MutableEntry) {
		e.PutIsDir(true)
		e.PutIsUnsynced(true)
		// Server wants to move a under b, but b already lives under a.
		e.PutServerUpdate(models.SyncEntity{
			ID: a, ParentID: b, Version: 2, Name: "a", Folder: true,
			Specifics: models.EntitySpecifics{Type: models.Bookmarks},
		})
	})
	createLocalEntry(t, dir, b, "", func(e syncable.MutableEntry) {
		e.PutIsDir(true)
		e.PutParentID(a)
	})

	progress := session.Status().MutableConflictProgress(models.GroupUI)
	progress.AddSimpleConflictingItem(a)
	progress.AddSimpleConflictingItem(b)

	cmd := NewBuildConflictSetsCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	set := progress.ConflictSetForID(a)
	require.Len(t, set, 2)
	assert.ElementsMatch(t, []models.ID{a, b}, set)
	assert.Equal(t, 1, progress.ConflictSetsSize())
}

func TestBuildConflictSets_NonEmptyDirectoryDeletion(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	folder, child := models.ServerID("folder"), models.ServerID("child")
	createLocalEntry(t, dir, folder, "", func(e syncable.MutableEntry) {
		e.PutIsDir(true)
		e.PutIsUnsynced(true)
		e.PutServerUpdate(models.SyncEntity{
			ID: folder, ParentID: models.Root, Version: 2, Deleted: true,
			Specifics: models.EntitySpecifics{Type: models.Bookmarks},
		})
	})
	createLocalEntry(t, dir, child, "", func(e syncable.MutableEntry) {
		e.PutParentID(folder)
	})

	progress := session.Status().MutableConflictProgress(models.GroupUI)
	progress.AddSimpleConflictingItem(folder)

	cmd := NewBuildConflictSetsCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	set := progress.ConflictSetForID(folder)
	assert.ElementsMatch(t, []models.ID{folder, child}, set)
}

func TestBuildConflictSets_PositionCollision(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	x, y := models.ServerID("x"), models.ServerID("y")
	for _, id := range []models.ID{x, y} {
		id := id
		createLocalEntry(t, dir, id, "", func(e syncable.MutableEntry) {
			e.PutIsUnsynced(true)
			e.PutServerUpdate(models.SyncEntity{
				ID: id, ParentID: models.Root, Version: 2, Name: id.String(), Position: 7,
				Specifics: models.EntitySpecifics{Type: models.Bookmarks},
			})
		})
	}

	progress := session.Status().MutableConflictProgress(models.GroupUI)
	progress.AddSimpleConflictingItem(x)
	progress.AddSimpleConflictingItem(y)

	cmd := NewBuildConflictSetsCommand(logger.Nop())
	result := cmd.ModelChangingExecute(context.Background(), session, models.GroupUI)
	require.True(t, result.IsOK())

	set := progress.ConflictSetForID(x)
	assert.ElementsMatch(t, []models.ID{x, y}, set)
}

func TestBuildConflictSets_Idempotent(t *testing.T) {
	session := newTestSession(t, bookmarkRouting())
	dir, ok := session.Directory()
	require.True(t, ok)

	a, b := models.ServerID("a"), models.ServerID("b")
	createLocalEntry(t, dir, a, "", func(e syncable.MutableEntry) {
		e.PutIsDir(true)
		e.PutIsUnsynced(true)
		e.PutServerUpdate(models.SyncEntity{
			ID: a, ParentID: b, Version: 2, Name: "a", Folder: true,
			Specifics: models.EntitySpecifics{Type: models.Bookmarks},
		})
	})
	createLocalEntry(t, dir, b, "", func(e syncable.MutableEntry) {
		e.PutIsDir(true)
		e.PutParentID(a)
	})

	progress := session.Status().MutableConflictProgress(models.GroupUI)
	progress.AddSimpleConflictingItem(a)
	progress.AddSimpleConflictingItem(b)

	cmd := NewBuildConflictSetsCommand(logger.Nop())
	ctx := context.Background()

	require.True(t, cmd.ModelChangingExecute(ctx, session, models.GroupUI).IsOK())
	first := snapshotPartition(progress)

	require.True(t, cmd.ModelChangingExecute(ctx, session, models.GroupUI).IsOK())
	second := snapshotPartition(progress)

	assert.Equal(t, first, second)
}

// snapshotPartition normalizes the conflict-set partition for comparison:
// IDs sorted within each set, sets sorted by their first ID.
func snapshotPartition(progress *sessions.ConflictProgress) [][]models.ID {
	sets := progress.ConflictSets()
	for _, set := range sets {
		sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i][0] < sets[j][0] })
	return sets
}
