package models

import (
	"strings"

	"github.com/google/uuid"
)

// localIDPrefix marks identifiers that were generated on this device and have
// never been seen by the remote store.
const localIDPrefix = "temp-"

// RecordID identifies a record in one entity collection. It is either a
// server-assigned id or a locally generated temporary id; construct values
// only through NewLocalID and RemoteID so the two cannot be confused.
type RecordID string

// NewLocalID returns a fresh temporary id for a record created offline.
func NewLocalID() RecordID {
	return RecordID(localIDPrefix + uuid.NewString())
}

// RemoteID wraps an identifier received from the remote store.
func RemoteID(s string) RecordID {
	return RecordID(s)
}

func (id RecordID) String() string { return string(id) }

func (id RecordID) IsZero() bool { return id == "" }

// IsLocal reports whether the id was generated on this device and is not yet
// known to the remote store.
func (id RecordID) IsLocal() bool {
	return strings.HasPrefix(string(id), localIDPrefix)
}

// ForRemote returns the identifier usable as a remote key or foreign key.
// Local ids have no remote meaning, so ok is false for them; callers building
// remote payloads must drop the field instead.
func (id RecordID) ForRemote() (string, bool) {
	if id.IsZero() || id.IsLocal() {
		return "", false
	}
	return string(id), true
}
