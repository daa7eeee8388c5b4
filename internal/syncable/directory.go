// Package syncable implements the transactional, versioned entry store the
// sync-cycle pipeline operates on: a table of entries keyed by stable IDs,
// each carrying local and server field shadows, guarded by read/write
// transactions and persisted through a pluggable backing store.
package syncable

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/driftline/syncer/internal/logger"
	"github.com/driftline/syncer/internal/store"
	"github.com/driftline/syncer/models"
)

// Sentinel errors returned by directory operations.
var (
	// ErrEntryExists is returned when CreateEntry collides with an
	// existing entry of the same ID.
	ErrEntryExists = errors.New("entry already exists")
	// ErrTagExists is returned when CreateEntry collides with an existing
	// entry carrying the same unique client tag.
	ErrTagExists = errors.New("unique client tag already taken")
)

// Directory owns the full entry graph in memory. All access goes through a
// transaction: the directory's RW mutex is the sole lock, held exclusively
// by a write transaction for the duration of one command invocation.
type Directory struct {
	mu sync.RWMutex

	entries     map[models.ID]*EntryKernel
	byClientTag map[string]models.ID
	byParent    map[models.ID]map[models.ID]struct{}

	backing store.BackingStore
	log     *logger.Logger
}

// Open loads every persisted entry record from the backing store and builds
// the in-memory indexes.
func Open(ctx context.Context, backing store.BackingStore, log *logger.Logger) (*Directory, error) {
	records, err := backing.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}

	d := &Directory{
		entries:     make(map[models.ID]*EntryKernel, len(records)),
		byClientTag: make(map[string]models.ID),
		byParent:    make(map[models.ID]map[models.ID]struct{}),
		backing:     backing,
		log:         log,
	}
	for _, rec := range records {
		d.insertKernel(kernelFromRecord(rec))
	}

	log.Debug().
		Str("func", "syncable.Open").
		Int("entries", len(records)).
		Msg("directory loaded")
	return d, nil
}

// NewInMemoryDirectory builds an empty directory with no persistence.
// Intended for tests and for callers that manage durability themselves.
func NewInMemoryDirectory(log *logger.Logger) *Directory {
	return &Directory{
		entries:     make(map[models.ID]*EntryKernel),
		byClientTag: make(map[string]models.ID),
		byParent:    make(map[models.ID]map[models.ID]struct{}),
		log:         log,
	}
}

// insertKernel adds k to all indexes. Caller holds the write lock (or is
// still single-threaded during Open).
func (d *Directory) insertKernel(k *EntryKernel) {
	d.entries[k.ID] = k
	if k.UniqueClientTag != "" {
		d.byClientTag[k.UniqueClientTag] = k.ID
	}
	d.linkParent(k.ParentID, k.ID)
}

func (d *Directory) linkParent(parent, child models.ID) {
	if parent.IsNull() {
		return
	}
	children, ok := d.byParent[parent]
	if !ok {
		children = make(map[models.ID]struct{})
		d.byParent[parent] = children
	}
	children[child] = struct{}{}
}

func (d *Directory) unlinkParent(parent, child models.ID) {
	if children, ok := d.byParent[parent]; ok {
		delete(children, child)
		if len(children) == 0 {
			delete(d.byParent, parent)
		}
	}
}

// SaveChanges flushes every dirty kernel to the backing store and clears
// the dirty marks. It takes the snapshot under the read lock, so it must
// not run concurrently with an open write transaction on the same
// goroutine's behalf.
func (d *Directory) SaveChanges(ctx context.Context) error {
	if d.backing == nil {
		return nil
	}

	d.mu.RLock()
	dirty := make([]store.EntryRecord, 0, 16)
	kernels := make([]*EntryKernel, 0, 16)
	for _, k := range d.entries {
		if k.dirty {
			dirty = append(dirty, k.toRecord())
			kernels = append(kernels, k)
		}
	}
	d.mu.RUnlock()

	if len(dirty) == 0 {
		return nil
	}

	if err := d.backing.SaveEntries(ctx, dirty); err != nil {
		return fmt.Errorf("save directory changes: %w", err)
	}

	d.mu.Lock()
	for _, k := range kernels {
		k.dirty = false
	}
	d.mu.Unlock()

	d.log.Debug().
		Str("func", "Directory.SaveChanges").
		Int("flushed", len(dirty)).
		Msg("dirty kernels flushed")
	return nil
}

// UnappliedUpdateIDs returns the IDs of every entry still carrying an
// unapplied server update. Caller must hold a transaction.
func (d *Directory) UnappliedUpdateIDs(trans *BaseTransaction) []models.ID {
	ids := make([]models.ID, 0, 8)
	for id, k := range d.entries {
		if k.IsUnappliedUpdate {
			ids = append(ids, id)
		}
	}
	return ids
}
