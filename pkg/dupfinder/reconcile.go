package dupfinder

import (
	"sort"

	"github.com/equipe22/hegpdup/pkg/overlap"
	"github.com/equipe22/hegpdup/pkg/span"
)

// reconcileOverlaps implements section 4.4: among raw (possibly
// target-span-overlapping) duplicates, the longer of any two overlapping
// duplicates wins outright and the shorter is trimmed to the
// non-overlapping remainder, or dropped if that remainder is empty or
// below minDuplicateLength.
//
// The overlap index built here is a snapshot of the untrimmed spans. That
// is safe for every backend, including the static NCLS build: trimming
// only ever shrinks a span, so the snapshot's candidate set is always a
// superset of the true current overlaps, and trimOrDrop re-checks the
// live (possibly already-trimmed) span before acting on a candidate.
func reconcileOverlaps(raw []Duplicate, minDuplicateLength uint32, backend overlap.Backend) ([]Duplicate, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	live := make([]*Duplicate, len(raw))
	items := make([]overlap.Item, 0, len(raw))
	for i := range raw {
		d := raw[i]
		live[i] = &d
		items = append(items, overlap.Item{Span: d.TargetSpan, Payload: i})
	}

	idx, err := overlap.New(backend, items)
	if err != nil {
		return nil, err
	}

	remaining := make([]int, 0, len(raw))
	for i := range live {
		remaining = append(remaining, i)
	}
	sortByLengthAscending(remaining, live)

	var kept []Duplicate

	for len(remaining) > 0 {
		wIdx := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		w := *live[wIdx]
		kept = append(kept, w)
		idx.Remove(wIdx)

		candidates := idx.Overlapping(w.TargetSpan)
		isCandidate := make(map[int]bool, len(candidates))
		for _, c := range candidates {
			isCandidate[c] = true
		}

		trimmed := false
		next := remaining[:0]
		for _, i := range remaining {
			if !isCandidate[i] {
				next = append(next, i)
				continue
			}
			result, drop := trimOrDrop(*live[i], w.TargetSpan, minDuplicateLength)
			if drop {
				idx.Remove(i)
				trimmed = true
				continue
			}
			if result != *live[i] {
				live[i] = &result
				trimmed = true
			}
			next = append(next, i)
		}
		remaining = next

		if trimmed {
			sortByLengthAscending(remaining, live)
		}
	}

	sort.Slice(kept, func(a, b int) bool {
		if kept[a].TargetSpan.Start != kept[b].TargetSpan.Start {
			return kept[a].TargetSpan.Start < kept[b].TargetSpan.Start
		}
		return kept[a].TargetSpan.End < kept[b].TargetSpan.End
	})

	return kept, nil
}

func sortByLengthAscending(indices []int, live []*Duplicate) {
	sort.Slice(indices, func(a, b int) bool {
		return live[indices[a]].Length() < live[indices[b]].Length()
	})
}

// trimOrDrop implements the trim semantics of section 4.4 for a single
// candidate dup against the target span of the winning (longer) duplicate
// that was just kept.
func trimOrDrop(dup Duplicate, trimTarget span.Span, minDuplicateLength uint32) (result Duplicate, drop bool) {
	ts, te := trimTarget.Start, trimTarget.End
	d := dup.TargetSpan

	switch {
	case ts <= d.Start && d.End <= te:
		// dup.targetSpan subset-of T: drop outright.
		return Duplicate{}, true

	case ts < d.End && d.End <= te:
		// Right-overlap: keep the portion of dup before ts.
		newLen := ts - d.Start
		if newLen < minDuplicateLength {
			return Duplicate{}, true
		}
		newTarget := span.New(d.Start, ts)
		newSource := span.New(dup.SourceSpan.Start, dup.SourceSpan.Start+newLen)
		return Duplicate{SourceDocID: dup.SourceDocID, SourceSpan: newSource, TargetSpan: newTarget}, false

	case ts <= d.Start && d.Start < te:
		// Left-overlap: keep the portion of dup after te.
		newLen := d.End - te
		if newLen < minDuplicateLength {
			return Duplicate{}, true
		}
		newTarget := span.New(te, d.End)
		newSource := span.New(dup.SourceSpan.End-newLen, dup.SourceSpan.End)
		return Duplicate{SourceDocID: dup.SourceDocID, SourceSpan: newSource, TargetSpan: newTarget}, false

	default:
		return dup, false
	}
}
