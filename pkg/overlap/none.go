package overlap

import "github.com/equipe22/hegpdup/pkg/span"

// linearIndex is the NONE backend: a plain slice scanned in full on every
// query. Remove marks the slot dead rather than shrinking the slice, so
// payload identity stays stable for callers holding onto indices.
type linearIndex struct {
	items []Item
	dead  map[int]bool
}

func newLinearIndex(items []Item) *linearIndex {
	return &linearIndex{items: append([]Item(nil), items...), dead: make(map[int]bool)}
}

func (l *linearIndex) Remove(payload int) {
	l.dead[payload] = true
}

func (l *linearIndex) Overlapping(q span.Span) []int {
	var out []int
	for _, it := range l.items {
		if l.dead[it.Payload] {
			continue
		}
		if it.Span.Overlaps(q) {
			out = append(out, it.Payload)
		}
	}
	return out
}
