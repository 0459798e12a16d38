package overlap

import (
	"sort"

	"github.com/equipe22/hegpdup/pkg/span"
)

// ncls is a nested containment list: items sorted by Start with a
// running maximum of End carried alongside, so Overlapping can binary
// search to the first item whose End-so-far exceeds the query's Start and
// then scan forward until an item starts at or after the query's End. It
// is a static
// structure — built once from the initial item set, per the design
// notes' statement that "trims do not update the tree." Remove is a
// soft delete so callers can still filter stale payloads out of their
// own bookkeeping, but the underlying arrays never shrink or reorder.
type ncls struct {
	items  []Item
	maxEnd []uint32 // maxEnd[i] = max(items[0..i].Span.End)
	dead   map[int]bool
}

func newNCLS(items []Item) *ncls {
	sorted := append([]Item(nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	maxEnd := make([]uint32, len(sorted))
	var running uint32
	for i, it := range sorted {
		if it.Span.End > running {
			running = it.Span.End
		}
		maxEnd[i] = running
	}
	return &ncls{items: sorted, maxEnd: maxEnd, dead: make(map[int]bool)}
}

// Remove marks payload dead; NCLS never rebuilds its arrays.
func (n *ncls) Remove(payload int) {
	n.dead[payload] = true
}

// Overlapping returns every live payload whose span overlaps q.
func (n *ncls) Overlapping(q span.Span) []int {
	// Every item at index >= firstPossible could still overlap q, since
	// maxEnd is non-decreasing and only items with End > q.Start matter.
	firstPossible := sort.Search(len(n.maxEnd), func(i int) bool {
		return n.maxEnd[i] > q.Start
	})

	var out []int
	for i := firstPossible; i < len(n.items); i++ {
		it := n.items[i]
		if it.Span.Start >= q.End {
			break
		}
		if n.dead[it.Payload] {
			continue
		}
		if it.Span.Overlaps(q) {
			out = append(out, it.Payload)
		}
	}
	return out
}
