// README: Identifier type for saved trips.
package types

import (
	"crypto/rand"
	"encoding/hex"
)

// ID identifies a saved trip: 16 random bytes, hex-encoded, so it is
// safe to put in URLs without escaping.
type ID string

const idLen = 32

// NewID draws a fresh identifier.
func NewID() ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return ID(hex.EncodeToString(b[:]))
}

func (id ID) String() string { return string(id) }

// Valid reports whether id has the exact shape NewID produces, which is
// the only shape the stores ever persist. Anything else can be rejected
// before touching the database.
func (id ID) Valid() bool {
	if len(id) != idLen {
		return false
	}
	for _, c := range id {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		return false
	}
	return true
}
