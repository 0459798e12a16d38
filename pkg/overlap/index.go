// Package overlap implements the "overlap index" trait from the duplicate
// finder's design notes: a small closed set of interchangeable backends
// answering "which spans overlap this query span?" over a mutable
// collection of payload-tagged spans.
package overlap

import "github.com/equipe22/hegpdup/pkg/span"

// Backend selects an Index implementation. All three produce identical
// query results; they differ only in performance characteristics.
type Backend int

const (
	// NONE is a linear scan over every item. Cheapest to build, slowest
	// to query on large inputs.
	NONE Backend = iota
	// IntervalTree is an unbalanced augmented interval tree supporting
	// insert, remove and overlap queries; queries prune subtrees by their
	// maximum End, and their cost grows with the tree's depth.
	IntervalTree
	// NCLS is a nested containment list: a static build sorted by Start
	// with a running maximum End, queried by binary search plus a forward
	// scan. Trims do not update the structure; the caller re-checks each
	// candidate against its current, possibly trimmed span instead.
	NCLS
)

// Default is NCLS if available, else IntervalTree, else NONE. Both NCLS
// and IntervalTree are always available in this package, so Default is
// NCLS.
const Default = NCLS

// Item is a span tagged with an opaque caller-defined payload, typically
// an index into a slice of candidate duplicates.
type Item struct {
	Span    span.Span
	Payload int
}

// Index answers overlap queries over a collection of Items keyed by
// TargetSpan. Only IntervalTree removes nodes from its structure; NCLS is
// built once and its arrays never change, NONE needs no structure at all
// beyond the backing slice.
type Index interface {
	// Remove drops the item with the given payload, if present, so later
	// queries no longer return it. IntervalTree deletes the node; NCLS and
	// NONE mark the payload dead and skip it during queries.
	Remove(payload int)
	// Overlapping returns the payloads of every live item whose span
	// overlaps q.
	Overlapping(q span.Span) []int
}

// New builds an Index of the requested backend over items.
func New(backend Backend, items []Item) (Index, error) {
	switch backend {
	case NONE:
		return newLinearIndex(items), nil
	case IntervalTree:
		return newIntervalTree(items), nil
	case NCLS:
		return newNCLS(items), nil
	default:
		return nil, &UnavailableBackendError{Backend: backend}
	}
}

// UnavailableBackendError is returned when a caller requests a backend New
// does not recognize. It is a ConfigurationError-class failure, mirroring
// spec.md section 6's "backend unavailable" validation error, even though
// in this implementation all three declared backends are always available.
type UnavailableBackendError struct {
	Backend Backend
}

func (e *UnavailableBackendError) Error() string {
	return "overlap: unavailable backend requested"
}
