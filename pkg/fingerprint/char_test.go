package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipe22/hegpdup/pkg/fingerprint"
)

func newCharBuilder(t *testing.T, opts fingerprint.CharOptions) *fingerprint.CharBuilder {
	t.Helper()
	b, err := fingerprint.NewCharBuilder(opts)
	require.NoError(t, err)
	return b
}

func TestCharBuilder_BasicWindowing(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 5, ORF: 1, CaseSensitive: true, AllowMultiline: true})
	out := b.BuildFingerprints("hello world")
	require.NotEmpty(t, out)
	assert.True(t, sortedAscending(out))
	// tail chunk shorter than fingerprintLength is still emitted once.
	last := out[len(out)-1]
	assert.Equal(t, uint32(11), last.Span.End)
}

func TestCharBuilder_EmptyText(t *testing.T) {
	b := newCharBuilder(t, fingerprint.DefaultCharOptions())
	assert.Empty(t, b.BuildFingerprints(""))
}

func TestCharBuilder_StableIdsAcrossCalls(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 5, ORF: 1, CaseSensitive: true, AllowMultiline: true})
	first := b.BuildFingerprints("hello world")
	second := b.BuildFingerprints("hello world")
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Span, second[i].Span)
	}
}

func TestCharBuilder_DistinctChunksDistinctIds(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 3, ORF: 1, CaseSensitive: true, AllowMultiline: true})
	out := b.BuildFingerprints("aaabbb")
	ids := map[fingerprint.ID]bool{}
	for _, sp := range out {
		ids[sp.ID] = true
	}
	assert.GreaterOrEqual(t, len(ids), 2)
}

func TestCharBuilder_CaseInsensitive(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 5, ORF: 1, CaseSensitive: false, AllowMultiline: true})
	lower := b.BuildFingerprints("hello")
	upper := b.BuildFingerprints("HELLO")
	require.Len(t, lower, 1)
	require.Len(t, upper, 1)
	assert.Equal(t, lower[0].ID, upper[0].ID)
}

func TestCharBuilder_SkipsLineSeparatorChunks(t *testing.T) {
	// fingerprintLength=1 makes the lone "\n" its own chunk, which must be
	// skipped rather than terminating the line (spec.md section 9(iii)).
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 1, ORF: 1, CaseSensitive: true, AllowMultiline: true})
	out := b.BuildFingerprints("a\nb")
	var sawNewline bool
	for _, sp := range out {
		if sp.Span.Start == 1 {
			sawNewline = true
		}
	}
	assert.False(t, sawNewline, "newline chunk must be skipped, not fingerprinted")
	// both "a" and "b" must still be present - continue, not return.
	assert.Len(t, out, 2)
}

func TestCharBuilder_MultilineDisabledRestartsPerLine(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 3, ORF: 1, CaseSensitive: true, AllowMultiline: false})
	out := b.BuildFingerprints("ab\ncd")
	for _, sp := range out {
		// no fingerprint crosses the line boundary at offset 2.
		assert.False(t, sp.Span.Start < 2 && sp.Span.End > 2)
	}
}

func TestCharBuilder_ScenarioAbcdabcWholeString(t *testing.T) {
	b := newCharBuilder(t, fingerprint.CharOptions{FingerprintLength: 2, ORF: 1, CaseSensitive: true, AllowMultiline: true})
	out := b.BuildFingerprints("abcdabc")
	require.NotEmpty(t, out)
	assert.True(t, sortedAscending(out))
	// the fingerprints cover the whole string, from offset 0 to 7.
	assert.Equal(t, uint32(0), out[0].Span.Start)
	assert.Equal(t, uint32(7), out[len(out)-1].Span.End)
}

func sortedAscending(out []fingerprint.SpanID) bool {
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1].Span, out[i].Span
		if prev.Start > cur.Start || (prev.Start == cur.Start && prev.End > cur.End) {
			return false
		}
	}
	return true
}
