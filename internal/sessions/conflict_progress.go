package sessions

import (
	"sort"

	"github.com/driftline/syncer/models"
)

// ConflictProgress tracks, for one concurrency group, the set of entry IDs
// currently known to be in conflict plus any conflict sets they have been
// merged into. It is owned by the status controller for the duration of one
// sync cycle and reset between cycles; it is never persisted.
type ConflictProgress struct {
	simple  map[models.ID]struct{}
	idToSet map[models.ID]*conflictSet
}

// conflictSet is an ordered collection of entry IDs that must be resolved
// together.
type conflictSet struct {
	ids []models.ID
}

// NewConflictProgress builds an empty progress tracker.
func NewConflictProgress() *ConflictProgress {
	return &ConflictProgress{
		simple:  make(map[models.ID]struct{}),
		idToSet: make(map[models.ID]*conflictSet),
	}
}

// AddSimpleConflictingItem records id as conflicting. Adding an ID twice is
// a no-op.
func (p *ConflictProgress) AddSimpleConflictingItem(id models.ID) {
	p.simple[id] = struct{}{}
}

// EraseConflictingItem removes id from the simple-conflict set. Erasing an
// unknown ID is a no-op.
func (p *ConflictProgress) EraseConflictingItem(id models.ID) {
	delete(p.simple, id)
}

// HasConflictingItem reports whether id is currently flagged as conflicting.
func (p *ConflictProgress) HasConflictingItem(id models.ID) bool {
	_, ok := p.simple[id]
	return ok
}

// ConflictingItemsSize returns the number of simple conflicting IDs.
func (p *ConflictProgress) ConflictingItemsSize() int {
	return len(p.simple)
}

// ConflictingItemIDs returns the simple conflicting IDs in sorted order.
func (p *ConflictProgress) ConflictingItemIDs() []models.ID {
	ids := make([]models.ID, 0, len(p.simple))
	for id := range p.simple {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MergeSets records that a and b must be resolved together. Four cases, all
// idempotent: neither is in a set (a fresh set is created), one is (the
// other joins it), both are in the same set (no-op), or both are in
// different sets (the sets are concatenated).
func (p *ConflictProgress) MergeSets(a, b models.ID) {
	setA, okA := p.idToSet[a]
	setB, okB := p.idToSet[b]

	switch {
	case !okA && !okB:
		merged := &conflictSet{ids: []models.ID{a, b}}
		if a == b {
			merged.ids = merged.ids[:1]
		}
		p.idToSet[a] = merged
		p.idToSet[b] = merged

	case okA && !okB:
		setA.ids = append(setA.ids, b)
		p.idToSet[b] = setA

	case !okA && okB:
		setB.ids = append(setB.ids, a)
		p.idToSet[a] = setB

	case setA == setB:
		// Already merged.

	default:
		// Concatenate the smaller set onto the larger one.
		if len(setA.ids) < len(setB.ids) {
			setA, setB = setB, setA
		}
		setA.ids = append(setA.ids, setB.ids...)
		for _, id := range setB.ids {
			p.idToSet[id] = setA
		}
	}
}

// ConflictSetForID returns the IDs of the set containing id, or nil if id
// has not been merged into any set.
func (p *ConflictProgress) ConflictSetForID(id models.ID) []models.ID {
	set, ok := p.idToSet[id]
	if !ok {
		return nil
	}
	out := make([]models.ID, len(set.ids))
	copy(out, set.ids)
	return out
}

// ConflictSetsSize returns the number of distinct conflict sets.
func (p *ConflictProgress) ConflictSetsSize() int {
	seen := make(map[*conflictSet]struct{})
	for _, set := range p.idToSet {
		seen[set] = struct{}{}
	}
	return len(seen)
}

// ConflictSets returns every distinct conflict set, each as a copy. Order
// between sets is unspecified.
func (p *ConflictProgress) ConflictSets() [][]models.ID {
	seen := make(map[*conflictSet]struct{})
	sets := make([][]models.ID, 0, 4)
	for _, set := range p.idToSet {
		if _, ok := seen[set]; ok {
			continue
		}
		seen[set] = struct{}{}
		out := make([]models.ID, len(set.ids))
		copy(out, set.ids)
		sets = append(sets, out)
	}
	return sets
}

// ClearConflictSets drops every merged set while keeping the simple
// conflicting IDs. The resolver calls this after consuming a snapshot.
func (p *ConflictProgress) ClearConflictSets() {
	p.idToSet = make(map[models.ID]*conflictSet)
}
