package dupfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipe22/hegpdup/pkg/dupfinder"
	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/overlap"
)

func newCharFinder(t *testing.T, fingerprintLength, minDuplicateLength int, backend overlap.Backend) *dupfinder.DuplicateFinder {
	t.Helper()
	builder, err := fingerprint.NewCharBuilder(fingerprint.CharOptions{
		FingerprintLength: fingerprintLength,
		ORF:               1,
		CaseSensitive:      true,
		AllowMultiline:     true,
	})
	require.NoError(t, err)
	f, err := dupfinder.New(builder, dupfinder.Options{
		MinDuplicateLength: minDuplicateLength,
		TreeBackend:        backend,
	})
	require.NoError(t, err)
	return f
}

func TestFindDuplicates_FirstDocumentIsEmpty(t *testing.T) {
	f := newCharFinder(t, 5, 5, overlap.NCLS)
	dups, err := f.FindDuplicates("D0", "hello world")
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestFindDuplicates_EmptyText(t *testing.T) {
	f := newCharFinder(t, 5, 5, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "")
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestFindDuplicates_DuplicateDocumentID(t *testing.T) {
	f := newCharFinder(t, 5, 5, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "hello world")
	require.NoError(t, err)
	_, err = f.FindDuplicates("D0", "anything")
	assert.ErrorIs(t, err, dupfinder.ErrDuplicateDocumentID)
}

func TestFindDuplicates_Scenario1_ExactRepeat(t *testing.T) {
	f := newCharFinder(t, 5, 5, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "hello world")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "hello world")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.Equal(t, "D0", dups[0].SourceDocID)
	assert.EqualValues(t, 0, dups[0].SourceSpan.Start)
	assert.EqualValues(t, 11, dups[0].SourceSpan.End)
	assert.EqualValues(t, 0, dups[0].TargetSpan.Start)
	assert.EqualValues(t, 11, dups[0].TargetSpan.End)
}

func TestFindDuplicates_Scenario2_HelloFrank(t *testing.T) {
	f := newCharFinder(t, 5, 11, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "Hello Alice, how are you? Hello Frank, how are you?")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "Hello Frank, what's up?")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.EqualValues(t, 0, dups[0].TargetSpan.Start)
	assert.EqualValues(t, 13, dups[0].TargetSpan.End)
	assert.EqualValues(t, 26, dups[0].SourceSpan.Start)
}

func TestFindDuplicates_Scenario3_TwoHalves(t *testing.T) {
	f := newCharFinder(t, 5, 11, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "Hello Frank, what's up, what's up, how are you?")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "Hello Frank, what's up, how are you?")
	require.NoError(t, err)
	require.Len(t, dups, 2)
	assert.EqualValues(t, 0, dups[0].TargetSpan.Start)
	assert.EqualValues(t, 11, dups[0].TargetSpan.End)
	assert.EqualValues(t, 11, dups[1].TargetSpan.Start)
	assert.EqualValues(t, 36, dups[1].TargetSpan.End)
}

func TestFindDuplicates_Scenario4_ChainBlacklisting(t *testing.T) {
	f := newCharFinder(t, 5, 5, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "the quick brown fox")
	require.NoError(t, err)
	_, err = f.FindDuplicates("D1", "xxx the quick brown fox yyy")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D2", "zzz the quick brown fox www")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.Equal(t, "D0", dups[0].SourceDocID)
}

func TestFindDuplicates_Scenario5_FingerprintLength2(t *testing.T) {
	f := newCharFinder(t, 2, 7, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "abcdabc")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "abcdabc")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.EqualValues(t, 0, dups[0].TargetSpan.Start)
	assert.EqualValues(t, 7, dups[0].TargetSpan.End)
}

func TestFindDuplicates_Scenario6_PartialMatch(t *testing.T) {
	f := newCharFinder(t, 4, 4, overlap.NCLS)
	_, err := f.FindDuplicates("D0", "Hi Bob")
	require.NoError(t, err)
	dups, err := f.FindDuplicates("D1", "Hello Bob")
	require.NoError(t, err)
	require.Len(t, dups, 1)
	assert.EqualValues(t, 5, dups[0].TargetSpan.Start)
	assert.EqualValues(t, 9, dups[0].TargetSpan.End)
	assert.EqualValues(t, 2, dups[0].SourceSpan.Start)
	assert.EqualValues(t, 6, dups[0].SourceSpan.End)
}

func TestFindDuplicates_BackendsAgree(t *testing.T) {
	text0 := "the quick brown fox jumps over the lazy dog repeatedly and again"
	text1 := "something else entirely the quick brown fox jumps over the lazy dog and more text after it"

	var results [][]dupfinder.Duplicate
	for _, backend := range []overlap.Backend{overlap.NONE, overlap.IntervalTree, overlap.NCLS} {
		f := newCharFinder(t, 5, 5, backend)
		_, err := f.FindDuplicates("D0", text0)
		require.NoError(t, err)
		dups, err := f.FindDuplicates("D1", text1)
		require.NoError(t, err)
		results = append(results, dups)
	}
	for i := 1; i < len(results); i++ {
		assert.Equal(t, results[0], results[i])
	}
}
