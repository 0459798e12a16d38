package dupfinder

import (
	"errors"
	"fmt"

	"github.com/equipe22/hegpdup/pkg/fingerprint"
)

// ConfigurationError reports invalid DuplicateFinder options. It reuses
// fingerprint.ConfigurationError's shape rather than introducing a second
// type, since both report the same kind of failure (one or more invalid
// option values) through the same multierr-aggregated Err field.
type ConfigurationError = fingerprint.ConfigurationError

// ErrDuplicateDocumentID is returned by FindDuplicates when docID was
// already submitted to this finder. Check with errors.Is.
var ErrDuplicateDocumentID = errors.New("dupfinder: document id already submitted")

// duplicateDocumentIDError wraps ErrDuplicateDocumentID with the offending
// id so callers that want it can extract it, while errors.Is(err,
// ErrDuplicateDocumentID) keeps working for callers that only care about
// the error kind.
type duplicateDocumentIDError struct {
	docID string
}

func (e *duplicateDocumentIDError) Error() string {
	return fmt.Sprintf("dupfinder: document id %q already submitted", e.docID)
}

func (e *duplicateDocumentIDError) Unwrap() error {
	return ErrDuplicateDocumentID
}

// DebugAssertions gates the InternalInvariantViolation-class check
// described in spec section 7: that a target span never starts before
// the target span of the in-progress duplicate it might extend. Off by
// default: release builds assume the invariant holds. Tests that want to
// catch a regression in the raw duplicate-building algorithm should set
// this to true.
//
// The length-equality check section 4.3 also describes is not gated
// here: it is unconditional production logic (raw.go's extendPair
// rejects a mismatched extension outright), not a debug-only assertion -
// a target/source pair failing it is an expected, routine outcome, not
// an invariant violation.
var DebugAssertions = false

func assertInvariant(cond bool, msg string) {
	if DebugAssertions && !cond {
		panic("dupfinder: invariant violation: " + msg)
	}
}
