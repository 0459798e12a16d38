package dupfinder

import (
	"sort"

	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/span"
)

// document is the finder's internal record of a previously ingested text:
// an id plus the fingerprint spans still available as comparison sources,
// i.e. those not already explained as a duplicate of something earlier
// (see blacklist.go). Never mutated after insertion.
type document struct {
	id                   string
	spansByFingerprintID map[fingerprint.ID][]span.Span
}

// newDocument builds a document from the subset of spanIDs that survive
// blacklisting, grouping by fingerprint id and sorting each group
// ascending by Start as the data model requires.
func newDocument(id string, spanIDs []fingerprint.SpanID) *document {
	byID := make(map[fingerprint.ID][]span.Span)
	for _, sid := range spanIDs {
		byID[sid.ID] = append(byID[sid.ID], sid.Span)
	}
	for fid, spans := range byID {
		sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
		byID[fid] = spans
	}
	return &document{id: id, spansByFingerprintID: byID}
}
