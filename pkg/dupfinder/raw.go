package dupfinder

import (
	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/span"
)

// buildRawDuplicates runs the per-source-document inner algorithm of
// section 4.3: it extends runs of shared fingerprints between
// targetSpans and source into maximal equal-length Duplicates. The
// result may contain pairwise-overlapping targetSpans; overlap
// reconciliation (section 4.4) happens separately.
func buildRawDuplicates(targetSpans []fingerprint.SpanID, source *document, minDuplicateLength uint32) []Duplicate {
	var inProgress []Duplicate
	var final []Duplicate

	for _, ts := range targetSpans {
		sourceSpans := source.spansByFingerprintID[ts.ID]
		if len(sourceSpans) == 0 {
			continue
		}

		extended := make([]Duplicate, 0, len(inProgress))
		merged := make(map[span.Span]struct{}, len(sourceSpans))

		for _, d := range inProgress {
			assertInvariant(ts.Span.Start >= d.TargetSpan.Start,
				"target span must not start before the duplicate it might extend")

			wasExtended := false
			if ts.Span.Start <= d.TargetSpan.End {
				for _, ss := range sourceSpans {
					eT, eS, ok := extendPair(d, ts.Span, ss)
					if !ok {
						continue
					}
					extended = append(extended, Duplicate{SourceDocID: source.id, SourceSpan: eS, TargetSpan: eT})
					wasExtended = true
					merged[ss] = struct{}{}
				}
			}
			if !wasExtended && d.Length() >= minDuplicateLength {
				final = append(final, d)
			}
		}

		inProgress = extended

		for _, ss := range sourceSpans {
			if _, ok := merged[ss]; ok {
				continue
			}
			inProgress = append(inProgress, Duplicate{SourceDocID: source.id, SourceSpan: ss, TargetSpan: ts.Span})
		}
	}

	for _, d := range inProgress {
		if d.Length() >= minDuplicateLength {
			final = append(final, d)
		}
	}

	return final
}

// extendPair computes the candidate extended target/source spans for
// continuing duplicate d with the new target chunk ts matched against
// source chunk ss, rejecting the extension (ok=false) when the two sides
// would not grow by the same amount - including when ss does not
// actually extend d's source span at all.
func extendPair(d Duplicate, ts span.Span, ss span.Span) (eT, eS span.Span, ok bool) {
	if ss.End <= d.SourceSpan.Start {
		return span.Span{}, span.Span{}, false
	}
	targetLen := ts.End - d.TargetSpan.Start
	sourceLen := ss.End - d.SourceSpan.Start
	if targetLen != sourceLen {
		return span.Span{}, span.Span{}, false
	}
	return span.New(d.TargetSpan.Start, ts.End), span.New(d.SourceSpan.Start, ss.End), true
}
