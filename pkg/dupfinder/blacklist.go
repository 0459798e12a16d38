package dupfinder

import (
	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/overlap"
)

// blacklist implements section 4.5: it returns the subset of targetSpans
// whose span does not overlap (even partially) any of duplicates'
// targetSpans, for storage as the just-ingested document's future source
// index. An identical region copied A -> B -> C is thereby reported in C
// as a duplicate of A, never of the intermediate B.
func blacklist(targetSpans []fingerprint.SpanID, duplicates []Duplicate, backend overlap.Backend) ([]fingerprint.SpanID, error) {
	if len(duplicates) == 0 {
		return targetSpans, nil
	}

	items := make([]overlap.Item, len(duplicates))
	for i, d := range duplicates {
		items[i] = overlap.Item{Span: d.TargetSpan, Payload: i}
	}
	idx, err := overlap.New(backend, items)
	if err != nil {
		return nil, err
	}

	kept := make([]fingerprint.SpanID, 0, len(targetSpans))
	for _, sid := range targetSpans {
		if len(idx.Overlapping(sid.Span)) == 0 {
			kept = append(kept, sid)
		}
	}
	return kept, nil
}
