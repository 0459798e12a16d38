// Package fingerprint turns text into a deterministic stream of
// integer-identified chunks with character spans, in both a character-level
// and a word-level variant.
package fingerprint

import "github.com/equipe22/hegpdup/pkg/span"

// ID is a compact integer assigned to a unique chunk of text on first
// sight. It is dense-sequential (0, 1, 2, ...) within a single builder and
// never reassigned; distinct builders have independent id spaces.
type ID uint32

// SpanID pairs a Span with the ID of the chunk it covers.
type SpanID struct {
	Span span.Span
	ID   ID
}

// Builder turns text into an ordered sequence of (Span, ID) pairs. Calling
// the same builder with the same text at any point returns an equivalent
// sequence, since ids are stable once assigned. A Builder is not safe for
// concurrent use: its chunk table grows monotonically with every call.
type Builder interface {
	BuildFingerprints(text string) []SpanID
}
