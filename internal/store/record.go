package store

import (
	"time"

	"github.com/driftline/syncer/models"
)

// EntryRecord is the persisted form of one directory entry kernel: both the
// local (Base*) and server (Server*) field shadows, flattened for the
// entries table.
type EntryRecord struct {
	ID             models.ID
	ParentID       models.ID
	ServerParentID models.ID

	BaseVersion   int64
	ServerVersion int64

	Name       string
	ServerName string

	IsDir       bool
	ServerIsDir bool
	IsDel       bool
	ServerIsDel bool

	IsUnsynced        bool
	IsUnappliedUpdate bool

	UniqueClientTag string

	Position       int64
	ServerPosition int64

	Specifics       models.EntitySpecifics
	ServerSpecifics models.EntitySpecifics

	CTime time.Time
	MTime time.Time
}
