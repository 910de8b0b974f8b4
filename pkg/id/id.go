// Package id generates record identifiers.
package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. ULIDs sort lexicographically by creation
// time, so trade and strategy IDs line up with insertion order in
// listings and exports.
func New() string {
	return ulid.Make().String()
}
