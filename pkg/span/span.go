// Package span defines the half-open character range shared by the
// fingerprint builders, the overlap index and the duplicate finder.
package span

import "fmt"

// Span is a half-open character range [Start, End). It is a plain value
// type: comparable, immutable, hashable by (Start, End).
type Span struct {
	Start  uint32
	End    uint32
	Length uint32
}

// New builds a Span, deriving Length from Start/End. It panics if end <=
// start, mirroring the assertion in the reference implementation's Span
// constructor (end > start).
func New(start, end uint32) Span {
	if end <= start {
		panic(fmt.Sprintf("span: invalid range [%d, %d)", start, end))
	}
	return Span{Start: start, End: end, Length: end - start}
}

// Overlaps reports whether s and o share at least one character position.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether o is entirely contained within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
