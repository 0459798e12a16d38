package fingerprint

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var validate = validator.New()

// CharOptions configures a CharBuilder.
type CharOptions struct {
	// FingerprintLength is the chunk size in characters. Must be >= 1;
	// values below 2 still validate but emit a warning, since a
	// one-character fingerprint defeats the point of fingerprinting.
	FingerprintLength int `validate:"min=1"`
	// ORF (open reading frame) is the stride between successive chunk
	// start offsets. Must be >= 1; values above 1 emit a warning, since
	// they risk missing duplicates aligned on a different offset.
	ORF int `validate:"min=1"`
	// CaseSensitive, when false, lowercases text before fingerprinting.
	CaseSensitive bool
	// AllowMultiline, when false, restarts fingerprinting at every line
	// break so no fingerprint span crosses a line boundary.
	AllowMultiline bool

	// Logger receives configuration warnings. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultCharOptions returns the conventional char-variant configuration:
// fingerprintLength=5, orf=1, case-sensitive, multiline allowed.
func DefaultCharOptions() CharOptions {
	return CharOptions{
		FingerprintLength: 5,
		ORF:               1,
		CaseSensitive:      true,
		AllowMultiline:     true,
	}
}

func (o CharOptions) validate() error {
	var errs error
	if err := validate.Struct(o); err != nil {
		errs = multierr.Append(errs, err)
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if o.FingerprintLength >= 1 && o.FingerprintLength < 2 {
		logger.Warn("fingerprint length below 2 defeats the point of fingerprinting",
			zap.Int("fingerprint_length", o.FingerprintLength))
	}
	if o.ORF > 1 {
		logger.Warn("orf greater than 1 may miss duplicates aligned on a different offset",
			zap.Int("orf", o.ORF))
	}
	if errs != nil {
		return &ConfigurationError{Err: errs}
	}
	return nil
}

// WordRegexp is the default regexp used by WordOptions to split text into
// words: maximal runs of word/digit characters.
var WordRegexp = regexp.MustCompile(`[\w\d]+`)

// WordOptions configures a WordBuilder.
type WordOptions struct {
	// FingerprintLength is the chunk size in words. Must be >= 2,
	// otherwise gaps would appear between fingerprints.
	FingerprintLength int `validate:"min=2"`
	// ORF is the stride between successive chunk start word-indices.
	// Must be >= 1; values above 1 emit a warning.
	ORF int `validate:"min=1"`
	// CaseSensitive, when false, lowercases text before fingerprinting.
	CaseSensitive bool
	// AllowMultiline, when false, restarts fingerprinting at every line
	// break.
	AllowMultiline bool
	// WordRegexp identifies word boundaries; defaults to WordRegexp.
	WordRegexp *regexp.Regexp

	// Logger receives configuration warnings. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultWordOptions returns the conventional word-variant configuration:
// fingerprintLength=2, orf=1, case-sensitive, multiline allowed.
func DefaultWordOptions() WordOptions {
	return WordOptions{
		FingerprintLength: 2,
		ORF:               1,
		CaseSensitive:      true,
		AllowMultiline:     true,
	}
}

func (o WordOptions) validate() error {
	var errs error
	if err := validate.Struct(o); err != nil {
		errs = multierr.Append(errs, err)
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if o.ORF > 1 {
		logger.Warn("orf greater than 1 may miss duplicates aligned on a different offset",
			zap.Int("orf", o.ORF))
	}
	if errs != nil {
		return &ConfigurationError{Err: errs}
	}
	return nil
}

func (o WordOptions) wordRegexp() *regexp.Regexp {
	if o.WordRegexp != nil {
		return o.WordRegexp
	}
	return WordRegexp
}
