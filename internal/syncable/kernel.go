package syncable

import (
	"time"

	"github.com/driftline/syncer/internal/store"
	"github.com/driftline/syncer/models"
)

// EntryKernel is the in-memory representation of one synchronized entry.
// Every field exists in two shadows: the local (base) shadow reflects the
// state last confirmed consistent with the server plus any local edits, and
// the server shadow reflects the most recent downloaded update.
//
// Kernels are owned by the directory and must only be touched while a
// transaction on that directory is open.
type EntryKernel struct {
	ID             models.ID
	ParentID       models.ID
	ServerParentID models.ID

	// BaseVersion is the version last confirmed consistent with the
	// server; ServerVersion is the version carried by the most recent
	// server update.
	BaseVersion   int64
	ServerVersion int64

	Name       string
	ServerName string

	IsDir       bool
	ServerIsDir bool

	// IsDel / ServerIsDel are tombstone markers for the two shadows.
	IsDel       bool
	ServerIsDel bool

	// IsUnsynced marks a local edit that has not been committed.
	// IsUnappliedUpdate marks a downloaded update that has not been folded
	// into the base shadow. An entry with both set is in conflict.
	IsUnsynced        bool
	IsUnappliedUpdate bool

	UniqueClientTag string

	Position       int64
	ServerPosition int64

	Specifics       models.EntitySpecifics
	ServerSpecifics models.EntitySpecifics

	CTime time.Time
	MTime time.Time

	// dirty marks the kernel as needing a flush on the next SaveChanges.
	dirty bool
}

// ModelType returns the datatype of the base shadow.
func (k *EntryKernel) ModelType() models.ModelType {
	return k.Specifics.Type
}

// ServerModelType returns the datatype of the server shadow.
func (k *EntryKernel) ServerModelType() models.ModelType {
	return k.ServerSpecifics.Type
}

// isInConflict reports whether the kernel carries both an uncommitted local
// edit and an unapplied server update.
func (k *EntryKernel) isInConflict() bool {
	return k.IsUnsynced && k.IsUnappliedUpdate
}

func kernelFromRecord(rec store.EntryRecord) *EntryKernel {
	return &EntryKernel{
		ID:                rec.ID,
		ParentID:          rec.ParentID,
		ServerParentID:    rec.ServerParentID,
		BaseVersion:       rec.BaseVersion,
		ServerVersion:     rec.ServerVersion,
		Name:              rec.Name,
		ServerName:        rec.ServerName,
		IsDir:             rec.IsDir,
		ServerIsDir:       rec.ServerIsDir,
		IsDel:             rec.IsDel,
		ServerIsDel:       rec.ServerIsDel,
		IsUnsynced:        rec.IsUnsynced,
		IsUnappliedUpdate: rec.IsUnappliedUpdate,
		UniqueClientTag:   rec.UniqueClientTag,
		Position:          rec.Position,
		ServerPosition:    rec.ServerPosition,
		Specifics:         rec.Specifics,
		ServerSpecifics:   rec.ServerSpecifics,
		CTime:             rec.CTime,
		MTime:             rec.MTime,
	}
}

func (k *EntryKernel) toRecord() store.EntryRecord {
	return store.EntryRecord{
		ID:                k.ID,
		ParentID:          k.ParentID,
		ServerParentID:    k.ServerParentID,
		BaseVersion:       k.BaseVersion,
		ServerVersion:     k.ServerVersion,
		Name:              k.Name,
		ServerName:        k.ServerName,
		IsDir:             k.IsDir,
		ServerIsDir:       k.ServerIsDir,
		IsDel:             k.IsDel,
		ServerIsDel:       k.ServerIsDel,
		IsUnsynced:        k.IsUnsynced,
		IsUnappliedUpdate: k.IsUnappliedUpdate,
		UniqueClientTag:   k.UniqueClientTag,
		Position:          k.Position,
		ServerPosition:    k.ServerPosition,
		Specifics:         k.Specifics,
		ServerSpecifics:   k.ServerSpecifics,
		CTime:             k.CTime,
		MTime:             k.MTime,
	}
}
