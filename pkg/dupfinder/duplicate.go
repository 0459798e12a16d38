package dupfinder

import "github.com/equipe22/hegpdup/pkg/span"

// Duplicate pairs a range in a previously ingested source document with an
// equal-length range in the document currently being analyzed. It carries
// no fingerprint provenance: earlier generations of this engine exposed a
// fingerprintIds field on Duplicate, but it was never observable through
// the test-case format and is dropped here (see DESIGN.md).
type Duplicate struct {
	SourceDocID string
	SourceSpan  span.Span
	TargetSpan  span.Span
}

// Length is the shared length of SourceSpan and TargetSpan.
func (d Duplicate) Length() uint32 {
	return d.TargetSpan.Length
}
