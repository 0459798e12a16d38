package dupfinder

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/equipe22/hegpdup/pkg/fingerprint"
	"github.com/equipe22/hegpdup/pkg/overlap"
)

var validate = validator.New()

// Options configures a DuplicateFinder.
type Options struct {
	// MinDuplicateLength is the minimum length, in characters (span
	// length), a Duplicate must have to be returned. Shorter raw
	// duplicates are dropped, and reconciliation drops any duplicate
	// trimmed below it.
	MinDuplicateLength int `validate:"min=1"`
	// TreeBackend selects the overlap.Backend used during reconciliation
	// and blacklisting. It is used as given: the zero value is
	// overlap.NONE, and overlap.Default is not substituted for it.
	TreeBackend overlap.Backend
	// Logger receives a debug entry for every ingested document. Defaults
	// to a no-op logger.
	Logger *zap.Logger
}

func (o Options) validate() error {
	var errs error
	if err := validate.Struct(o); err != nil {
		errs = multierr.Append(errs, err)
	}
	// TreeBackend is part of the same construction-time contract as
	// MinDuplicateLength (spec.md section 6: "if treeBackend ...
	// unavailable -> configuration error"), so it must be rejected here
	// rather than left to surface later the first time overlap.New is
	// actually called - which, for a session with zero duplicates across
	// its whole lifetime, might be never.
	if _, err := overlap.New(o.TreeBackend, nil); err != nil {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return &ConfigurationError{Err: errs}
	}
	return nil
}

// DuplicateFinder owns a FingerprintBuilder and the growing set of
// previously ingested documents it compares every new one against. It is
// not safe for concurrent use: all state mutation happens inside
// FindDuplicates, which is not reentrant on the same DuplicateFinder.
type DuplicateFinder struct {
	builder            fingerprint.Builder
	minDuplicateLength uint32
	treeBackend        overlap.Backend
	logger             *zap.Logger

	docs     []*document
	docIndex map[string]int
}

// New validates opts and returns a DuplicateFinder backed by builder.
func New(builder fingerprint.Builder, opts Options) (*DuplicateFinder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	backend := opts.TreeBackend
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DuplicateFinder{
		builder:            builder,
		minDuplicateLength: uint32(opts.MinDuplicateLength),
		treeBackend:        backend,
		logger:             logger,
		docIndex:           make(map[string]int),
	}, nil
}

// FindDuplicates fingerprints docText, compares it against every
// previously submitted document (in submission order), reconciles
// overlapping candidate duplicates per source, then registers docID as a
// source for future calls with its already-explained spans blacklisted.
//
// Returned duplicates are sorted first by source document insertion
// order, then within each source by (TargetSpan.Start, TargetSpan.End).
func (f *DuplicateFinder) FindDuplicates(docID string, docText string) ([]Duplicate, error) {
	if _, exists := f.docIndex[docID]; exists {
		return nil, &duplicateDocumentIDError{docID: docID}
	}

	targetSpans := f.builder.BuildFingerprints(docText)

	var all []Duplicate
	for _, source := range f.docs {
		raw := buildRawDuplicates(targetSpans, source, f.minDuplicateLength)
		reconciled, err := reconcileOverlaps(raw, f.minDuplicateLength, f.treeBackend)
		if err != nil {
			return nil, err
		}
		all = append(all, reconciled...)
	}

	storedSpans, err := blacklist(targetSpans, all, f.treeBackend)
	if err != nil {
		return nil, err
	}

	doc := newDocument(docID, storedSpans)
	f.docIndex[docID] = len(f.docs)
	f.docs = append(f.docs, doc)

	f.logger.Debug("ingested document",
		zap.String("doc_id", docID),
		zap.Int("duplicate_count", len(all)),
		zap.Int("stored_span_count", len(storedSpans)))

	return all, nil
}
