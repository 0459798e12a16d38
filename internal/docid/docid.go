// Package docid assigns a compact, deterministic id to a document's text
// when the caller does not supply one, by content-addressing it the same
// way thehowl/diffy's upload handler derives a short id for an uploaded
// archive: a truncated sha256 sum, base32-encoded with cford32.
package docid

import (
	"crypto/sha256"

	"github.com/thehowl/cford32"
)

// idBytes is the number of leading hash bytes encoded into the id,
// matching the 5-byte prefix thehowl/diffy uses for its upload ids - long
// enough to make accidental collisions across a single run's document
// stream practically impossible, short enough to stay readable.
const idBytes = 5

// For derives a short, deterministic id from text's content. Identical
// text always produces the same id; this is intentional and lets a
// caller re-run the same document stream and get the same ids back.
func For(text string) string {
	sum := sha256.Sum256([]byte(text))
	return cford32.EncodeToStringLower(sum[:idBytes])
}
