package syncable

import (
	"time"

	"github.com/driftline/syncer/models"
)

// Entry is a read-only handle on one entry kernel, valid only while the
// transaction it was obtained from stays open. A zero Entry (failed lookup)
// reports !Good().
type Entry struct {
	kernel *EntryKernel
}

// GetEntryByID looks up an entry by its stable ID.
func GetEntryByID(trans *BaseTransaction, id models.ID) Entry {
	return Entry{kernel: trans.dir.entries[id]}
}

// GetEntryByClientTag looks up an entry by its unique client tag.
func GetEntryByClientTag(trans *BaseTransaction, tag string) Entry {
	if tag == "" {
		return Entry{}
	}
	id, ok := trans.dir.byClientTag[tag]
	if !ok {
		return Entry{}
	}
	return Entry{kernel: trans.dir.entries[id]}
}

// GetChildIDs returns the IDs of the entries whose local parent is parent.
func GetChildIDs(trans *BaseTransaction, parent models.ID) []models.ID {
	children := trans.dir.byParent[parent]
	ids := make([]models.ID, 0, len(children))
	for id := range children {
		ids = append(ids, id)
	}
	return ids
}

// Good reports whether the lookup that produced this handle succeeded.
func (e Entry) Good() bool { return e.kernel != nil }

func (e Entry) ID() models.ID               { return e.kernel.ID }
func (e Entry) ParentID() models.ID         { return e.kernel.ParentID }
func (e Entry) ServerParentID() models.ID   { return e.kernel.ServerParentID }
func (e Entry) BaseVersion() int64          { return e.kernel.BaseVersion }
func (e Entry) ServerVersion() int64        { return e.kernel.ServerVersion }
func (e Entry) Name() string                { return e.kernel.Name }
func (e Entry) ServerName() string          { return e.kernel.ServerName }
func (e Entry) IsDir() bool                 { return e.kernel.IsDir }
func (e Entry) ServerIsDir() bool           { return e.kernel.ServerIsDir }
func (e Entry) IsDel() bool                 { return e.kernel.IsDel }
func (e Entry) ServerIsDel() bool           { return e.kernel.ServerIsDel }
func (e Entry) IsUnsynced() bool            { return e.kernel.IsUnsynced }
func (e Entry) IsUnappliedUpdate() bool     { return e.kernel.IsUnappliedUpdate }
func (e Entry) UniqueClientTag() string     { return e.kernel.UniqueClientTag }
func (e Entry) Position() int64             { return e.kernel.Position }
func (e Entry) ServerPosition() int64       { return e.kernel.ServerPosition }
func (e Entry) ModelType() models.ModelType { return e.kernel.ModelType() }
func (e Entry) MTime() time.Time            { return e.kernel.MTime }

// Specifics returns the base-shadow payload.
func (e Entry) Specifics() models.EntitySpecifics { return e.kernel.Specifics }

// ServerSpecifics returns the server-shadow payload.
func (e Entry) ServerSpecifics() models.EntitySpecifics { return e.kernel.ServerSpecifics }

// ServerModelType returns the datatype of the server shadow.
func (e Entry) ServerModelType() models.ModelType { return e.kernel.ServerModelType() }

// IsInConflict reports whether the entry carries both an uncommitted local
// edit and an unapplied server update.
func (e Entry) IsInConflict() bool { return e.kernel.isInConflict() }

// MutableEntry extends Entry with setters. It can only be obtained through
// a write transaction; every setter marks the kernel dirty so the next
// SaveChanges flushes it.
type MutableEntry struct {
	Entry
	trans *WriteTransaction
}

// GetMutableEntryByID looks up an entry for mutation.
func GetMutableEntryByID(trans *WriteTransaction, id models.ID) MutableEntry {
	return MutableEntry{
		Entry: Entry{kernel: trans.dir.entries[id]},
		trans: trans,
	}
}

// CreateEntry inserts a fresh entry with the given identity and local
// placement. Fails if the ID or the (non-empty) client tag is taken.
func CreateEntry(trans *WriteTransaction, id, parentID models.ID, name, clientTag string) (MutableEntry, error) {
	dir := trans.dir
	if _, exists := dir.entries[id]; exists {
		return MutableEntry{}, ErrEntryExists
	}
	if clientTag != "" {
		if _, exists := dir.byClientTag[clientTag]; exists {
			return MutableEntry{}, ErrTagExists
		}
	}

	now := time.Now().UTC()
	kernel := &EntryKernel{
		ID:              id,
		ParentID:        parentID,
		ServerParentID:  parentID,
		Name:            name,
		UniqueClientTag: clientTag,
		CTime:           now,
		MTime:           now,
		dirty:           true,
	}
	dir.insertKernel(kernel)

	return MutableEntry{Entry: Entry{kernel: kernel}, trans: trans}, nil
}

func (m MutableEntry) markDirty() { m.kernel.dirty = true }

// PutServerUpdate copies the downloaded entity into the server shadow and
// flags the entry as carrying an unapplied update.
func (m MutableEntry) PutServerUpdate(update models.SyncEntity) {
	k := m.kernel
	k.ServerParentID = update.ParentID
	k.ServerVersion = update.Version
	k.ServerName = update.Name
	k.ServerIsDel = update.Deleted
	k.ServerIsDir = update.Folder
	k.ServerPosition = update.Position
	k.ServerSpecifics = update.Specifics
	k.IsUnappliedUpdate = true
	m.markDirty()
}

// ApplyServerShadow folds the server shadow onto the base fields and clears
// the unapplied-update flag. After it returns, BaseVersion equals
// ServerVersion.
func (m MutableEntry) ApplyServerShadow() {
	k := m.kernel
	if k.ParentID != k.ServerParentID {
		m.trans.dir.unlinkParent(k.ParentID, k.ID)
		m.trans.dir.linkParent(k.ServerParentID, k.ID)
		k.ParentID = k.ServerParentID
	}
	k.BaseVersion = k.ServerVersion
	k.Name = k.ServerName
	k.IsDel = k.ServerIsDel
	k.IsDir = k.ServerIsDir
	k.Position = k.ServerPosition
	k.Specifics = k.ServerSpecifics
	k.IsUnappliedUpdate = false
	m.markDirty()
}

// OverwriteServerShadowFromLocal discards the server shadow in favour of
// the local fields, leaving the entry unsynced so the local state is
// committed on the next cycle.
func (m MutableEntry) OverwriteServerShadowFromLocal() {
	k := m.kernel
	k.ServerParentID = k.ParentID
	k.ServerName = k.Name
	k.ServerIsDel = k.IsDel
	k.ServerIsDir = k.IsDir
	k.ServerPosition = k.Position
	k.ServerSpecifics = k.Specifics
	k.IsUnappliedUpdate = false
	k.IsUnsynced = true
	m.markDirty()
}

// PutParentID moves the entry under a new local parent, keeping the
// children index consistent.
func (m MutableEntry) PutParentID(parent models.ID) {
	k := m.kernel
	if k.ParentID == parent {
		return
	}
	m.trans.dir.unlinkParent(k.ParentID, k.ID)
	m.trans.dir.linkParent(parent, k.ID)
	k.ParentID = parent
	m.markDirty()
}

func (m MutableEntry) PutBaseVersion(v int64) {
	m.kernel.BaseVersion = v
	m.markDirty()
}

func (m MutableEntry) PutIsDel(del bool) {
	m.kernel.IsDel = del
	m.markDirty()
}

func (m MutableEntry) PutIsDir(dir bool) {
	m.kernel.IsDir = dir
	m.markDirty()
}

func (m MutableEntry) PutIsUnsynced(unsynced bool) {
	m.kernel.IsUnsynced = unsynced
	m.markDirty()
}

func (m MutableEntry) PutIsUnappliedUpdate(unapplied bool) {
	m.kernel.IsUnappliedUpdate = unapplied
	m.markDirty()
}

func (m MutableEntry) PutName(name string) {
	m.kernel.Name = name
	m.markDirty()
}

func (m MutableEntry) PutPosition(pos int64) {
	m.kernel.Position = pos
	m.markDirty()
}

func (m MutableEntry) PutSpecifics(specifics models.EntitySpecifics) {
	m.kernel.Specifics = specifics
	m.markDirty()
}

func (m MutableEntry) PutMTime(t time.Time) {
	m.kernel.MTime = t
	m.markDirty()
}
