package sessions

import (
	"fmt"
	"sort"
	"sync"

	"github.com/driftline/syncer/models"
)

// StatusController owns all mutable per-cycle state: the update and
// conflict progress of every group, the download counters, and the
// conflicts-resolved flag the outer loop reads to decide whether another
// iteration is warranted.
//
// Groups may execute concurrently on different workers, so the controller
// is internally locked and is threaded explicitly through every command
// invocation instead of living in package-level state.
//
// Group-scoped accessors enforce the active group restriction: while a
// restriction is in force, touching another group's progress is a
// programming error and panics.
type StatusController struct {
	mu sync.Mutex

	updatesReceived  int64
	reflectedUpdates int64
	tombstoneUpdates int64

	conflictsResolved bool

	updateProgress   map[models.Group]*UpdateProgress
	conflictProgress map[models.Group]*ConflictProgress

	restricted  bool
	activeGroup models.Group
}

// NewStatusController builds a controller with no progress recorded.
func NewStatusController() *StatusController {
	return &StatusController{
		updateProgress:   make(map[models.Group]*UpdateProgress),
		conflictProgress: make(map[models.Group]*ConflictProgress),
	}
}

// RestrictToGroup narrows the controller to group and returns the release
// function. The command dispatch loop wraps every per-group phase in a
// restriction so a command can never mutate another group's state, even on
// early-return paths (callers defer the release).
func (c *StatusController) RestrictToGroup(group models.Group) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restricted {
		panic("sessions: nested group restriction")
	}
	c.restricted = true
	c.activeGroup = group

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.restricted = false
	}
}

// checkGroup panics when a group-scoped access violates the active
// restriction. Must be called with c.mu held.
func (c *StatusController) checkGroup(group models.Group) {
	if c.restricted && c.activeGroup != group {
		panic(fmt.Sprintf("sessions: access to %v while restricted to %v", group, c.activeGroup))
	}
}

// MutableUpdateProgress returns group's verified-updates buffer, creating
// it on first use.
func (c *StatusController) MutableUpdateProgress(group models.Group) *UpdateProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkGroup(group)

	progress, ok := c.updateProgress[group]
	if !ok {
		progress = NewUpdateProgress()
		c.updateProgress[group] = progress
	}
	return progress
}

// UpdateProgress returns group's verified-updates buffer, or nil if the
// group never received one this cycle.
func (c *StatusController) UpdateProgress(group models.Group) *UpdateProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateProgress[group]
}

// MutableConflictProgress returns group's conflict tracker, creating it on
// first use.
func (c *StatusController) MutableConflictProgress(group models.Group) *ConflictProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkGroup(group)

	progress, ok := c.conflictProgress[group]
	if !ok {
		progress = NewConflictProgress()
		c.conflictProgress[group] = progress
	}
	return progress
}

// ConflictProgress returns group's conflict tracker, or nil if no conflict
// has been recorded for the group this cycle.
func (c *StatusController) ConflictProgress(group models.Group) *ConflictProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflictProgress[group]
}

// GroupsWithConflicts returns, in ascending group order, every group whose
// conflict tracker holds at least one conflicting ID.
func (c *StatusController) GroupsWithConflicts() []models.Group {
	c.mu.Lock()
	defer c.mu.Unlock()

	groups := make([]models.Group, 0, len(c.conflictProgress))
	for group, progress := range c.conflictProgress {
		if progress.ConflictingItemsSize() > 0 {
			groups = append(groups, group)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}

// AddUpdatesReceived bumps the total-downloaded counter.
func (c *StatusController) AddUpdatesReceived(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updatesReceived += n
}

// AddReflectedUpdates bumps the counter of updates judged to be echoes of
// this client's own prior commits.
func (c *StatusController) AddReflectedUpdates(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reflectedUpdates += n
}

// AddTombstoneUpdates bumps the deletion-update counter.
func (c *StatusController) AddTombstoneUpdates(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tombstoneUpdates += n
}

func (c *StatusController) UpdatesReceived() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatesReceived
}

func (c *StatusController) ReflectedUpdates() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reflectedUpdates
}

func (c *StatusController) TombstoneUpdates() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tombstoneUpdates
}

// UpdateConflictsResolved ORs resolved into the cycle's progress flag: once
// any group reports forward progress the flag stays set for the cycle.
func (c *StatusController) UpdateConflictsResolved(resolved bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conflictsResolved = c.conflictsResolved || resolved
}

// ConflictsResolved reports whether any conflict resolution made forward
// progress this cycle.
func (c *StatusController) ConflictsResolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflictsResolved
}

// ResetTransientState clears everything scoped to one cycle: progress
// buffers, counters, and the conflicts-resolved flag. The outer loop calls
// it between cycles so stale conflict state never leaks forward.
func (c *StatusController) ResetTransientState() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updateProgress = make(map[models.Group]*UpdateProgress)
	c.conflictProgress = make(map[models.Group]*ConflictProgress)
	c.updatesReceived = 0
	c.reflectedUpdates = 0
	c.tombstoneUpdates = 0
	c.conflictsResolved = false
}
