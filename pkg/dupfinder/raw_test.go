package dupfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/span"
)

func TestBuildRawDuplicates_ExtendsAcrossMultipleFingerprints(t *testing.T) {
	// source has fingerprints 0,1,2 at spans [0,5)[5,10)[10,15), matching
	// target fingerprints at the same relative offsets elsewhere.
	source := newDocument("src", []fingerprint.SpanID{
		{Span: span.New(0, 5), ID: 0},
		{Span: span.New(5, 10), ID: 1},
		{Span: span.New(10, 15), ID: 2},
	})

	target := []fingerprint.SpanID{
		{Span: span.New(100, 105), ID: 0},
		{Span: span.New(105, 110), ID: 1},
		{Span: span.New(110, 115), ID: 2},
	}

	got := buildRawDuplicates(target, source, 5)
	require.Len(t, got, 1)
	assert.EqualValues(t, 100, got[0].TargetSpan.Start)
	assert.EqualValues(t, 115, got[0].TargetSpan.End)
	assert.EqualValues(t, 0, got[0].SourceSpan.Start)
	assert.EqualValues(t, 15, got[0].SourceSpan.End)
}

func TestBuildRawDuplicates_NoMatchingFingerprintsYieldsNothing(t *testing.T) {
	source := newDocument("src", []fingerprint.SpanID{
		{Span: span.New(0, 5), ID: 0},
	})
	target := []fingerprint.SpanID{
		{Span: span.New(0, 5), ID: 7},
	}
	assert.Empty(t, buildRawDuplicates(target, source, 5))
}

func TestBuildRawDuplicates_BelowMinLengthDropped(t *testing.T) {
	source := newDocument("src", []fingerprint.SpanID{
		{Span: span.New(0, 3), ID: 0},
	})
	target := []fingerprint.SpanID{
		{Span: span.New(50, 53), ID: 0},
	}
	assert.Empty(t, buildRawDuplicates(target, source, 5))
}

func TestBuildRawDuplicates_MultipleSourceSpansForSameFingerprint(t *testing.T) {
	source := newDocument("src", []fingerprint.SpanID{
		{Span: span.New(0, 5), ID: 0},
		{Span: span.New(20, 25), ID: 0},
	})
	target := []fingerprint.SpanID{
		{Span: span.New(100, 105), ID: 0},
	}
	got := buildRawDuplicates(target, source, 5)
	require.Len(t, got, 2)
}
