package models

import "time"

// EntitySpecifics is the opaque per-datatype payload of an entry. The engine
// never interprets Data; it only needs the datatype marker and, for encrypted
// types, the name of the key the payload was sealed with.
type EntitySpecifics struct {
	Type ModelType `json:"type"`

	// Data is the serialized datatype payload (e.g. bookmark fields).
	// When KeyName is non-empty, Data is ciphertext.
	Data []byte `json:"data,omitempty"`

	// KeyName names the cryptographer key that sealed Data. Empty for
	// plaintext specifics.
	KeyName string `json:"key_name,omitempty"`
}

// Equals reports whether two specifics carry the same payload.
func (s EntitySpecifics) Equals(other EntitySpecifics) bool {
	if s.Type != other.Type || s.KeyName != other.KeyName {
		return false
	}
	if len(s.Data) != len(other.Data) {
		return false
	}
	for i := range s.Data {
		if s.Data[i] != other.Data[i] {
			return false
		}
	}
	return true
}

// IsEncrypted reports whether the payload is sealed.
func (s EntitySpecifics) IsEncrypted() bool { return s.KeyName != "" }

// SyncEntity is one entity from a downloaded-updates batch, as delivered by
// the server for the current cycle.
type SyncEntity struct {
	ID       ID `json:"id"`
	ParentID ID `json:"parent_id"`

	// Version is the server-side version counter carried by this update.
	Version int64 `json:"version"`

	// Name is the entity's display name. Must be non-empty unless the
	// update is a deletion.
	Name string `json:"name"`

	// Deleted marks the update as a tombstone.
	Deleted bool `json:"deleted"`

	// UniqueClientTag is the optional client-assigned stable tag used to
	// dedupe concurrent creations across devices.
	UniqueClientTag string `json:"unique_client_tag,omitempty"`

	// Position orders the entity among its siblings. Only meaningful for
	// positionable types (bookmarks).
	Position int64 `json:"position"`

	// Folder marks the entity as a container for other entities.
	Folder bool `json:"folder"`

	Specifics EntitySpecifics `json:"specifics"`

	CTime time.Time `json:"ctime"`
	MTime time.Time `json:"mtime"`
}

// ModelType returns the datatype of the entity as carried by its payload.
// Tombstones often arrive without specifics, in which case the type is
// Unspecified and placement falls back to the local entry, if any.
func (e SyncEntity) ModelType() ModelType {
	return e.Specifics.Type
}
