package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/syncer/models"
)

func TestStatusController_ProgressIsLazy(t *testing.T) {
	c := NewStatusController()

	assert.Nil(t, c.UpdateProgress(models.GroupUI))
	assert.Nil(t, c.ConflictProgress(models.GroupUI))

	created := c.MutableUpdateProgress(models.GroupUI)
	require.NotNil(t, created)
	assert.Same(t, created, c.UpdateProgress(models.GroupUI))
	assert.Same(t, created, c.MutableUpdateProgress(models.GroupUI))

	// Other groups remain untouched.
	assert.Nil(t, c.UpdateProgress(models.GroupDB))
}

func TestStatusController_RestrictionGuardsGroupAccess(t *testing.T) {
	c := NewStatusController()

	release := c.RestrictToGroup(models.GroupUI)
	assert.NotPanics(t, func() { c.MutableConflictProgress(models.GroupUI) })
	assert.Panics(t, func() { c.MutableConflictProgress(models.GroupDB) })
	assert.Panics(t, func() { c.RestrictToGroup(models.GroupDB) }, "restrictions must not nest")
	release()

	assert.NotPanics(t, func() { c.MutableConflictProgress(models.GroupDB) })
}

func TestStatusController_GroupsWithConflictsSorted(t *testing.T) {
	c := NewStatusController()
	c.MutableConflictProgress(models.GroupDB).AddSimpleConflictingItem("s1")
	c.MutableConflictProgress(models.GroupUI).AddSimpleConflictingItem("s2")
	c.MutableConflictProgress(models.GroupHistory) // empty, must not appear

	assert.Equal(t, []models.Group{models.GroupUI, models.GroupDB}, c.GroupsWithConflicts())
}

func TestStatusController_ConflictsResolvedIsSticky(t *testing.T) {
	c := NewStatusController()
	assert.False(t, c.ConflictsResolved())

	c.UpdateConflictsResolved(false)
	assert.False(t, c.ConflictsResolved())

	c.UpdateConflictsResolved(true)
	c.UpdateConflictsResolved(false)
	assert.True(t, c.ConflictsResolved(), "one group's progress must stick for the cycle")
}

func TestStatusController_ResetTransientState(t *testing.T) {
	c := NewStatusController()
	c.AddUpdatesReceived(3)
	c.AddReflectedUpdates(1)
	c.AddTombstoneUpdates(2)
	c.UpdateConflictsResolved(true)
	c.MutableConflictProgress(models.GroupUI).AddSimpleConflictingItem("s1")
	c.MutableUpdateProgress(models.GroupUI)

	c.ResetTransientState()

	assert.Zero(t, c.UpdatesReceived())
	assert.Zero(t, c.ReflectedUpdates())
	assert.Zero(t, c.TombstoneUpdates())
	assert.False(t, c.ConflictsResolved())
	assert.Nil(t, c.UpdateProgress(models.GroupUI))
	assert.Nil(t, c.ConflictProgress(models.GroupUI))
	assert.Empty(t, c.GroupsWithConflicts())
}
