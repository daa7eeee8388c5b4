package models

import (
	"strings"

	"github.com/google/uuid"
)

// ID is the stable identifier of a synchronized entry.
//
// The wire form mirrors the server's convention: server-assigned IDs carry
// an "s" prefix, client-local IDs (entries created locally and not yet
// committed) carry a "c" prefix, and the tree root is "r". An empty ID is
// the null ID.
type ID string

// Root is the ID of the root of the entry tree. It is never transmitted
// in a server payload.
const Root ID = "r"

// ServerID wraps a server-assigned identifier.
func ServerID(raw string) ID {
	return ID("s" + raw)
}

// NewClientID generates a fresh client-local ID. Client-local IDs are only
// meaningful on the device that minted them; the server replaces them with
// a server ID at commit time.
func NewClientID() ID {
	return ID("c" + uuid.NewString())
}

// ServerKnows reports whether the server has ever seen this ID. Client-local
// and null IDs are unknown to the server and are illegal in server payloads.
func (id ID) ServerKnows() bool {
	return id == Root || strings.HasPrefix(string(id), "s")
}

// IsRoot reports whether id addresses the root of the entry tree.
func (id ID) IsRoot() bool { return id == Root }

// IsNull reports whether id is the null ID.
func (id ID) IsNull() bool { return id == "" }

func (id ID) String() string { return string(id) }
