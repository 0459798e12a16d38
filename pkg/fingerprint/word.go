package fingerprint

import (
	"strings"

	"github.com/equipe22/hegpdup/pkg/span"
)

// WordBuilder fingerprints text in fixed-length runs of words, as located
// by a configurable word regexp. It carries the same kind of monotonic
// chunk->id table as CharBuilder.
type WordBuilder struct {
	opts      WordOptions
	idByChunk map[string]ID
}

// NewWordBuilder validates opts and returns a ready WordBuilder.
func NewWordBuilder(opts WordOptions) (*WordBuilder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &WordBuilder{
		opts:      opts,
		idByChunk: make(map[string]ID),
	}, nil
}

// BuildFingerprints implements Builder.
func (b *WordBuilder) BuildFingerprints(text string) []SpanID {
	if !b.opts.CaseSensitive {
		text = strings.ToLower(text)
	}
	if b.opts.AllowMultiline {
		return b.buildOverRange(text, 0)
	}

	var out []SpanID
	for _, ln := range splitLines(text) {
		out = append(out, b.buildOverRange(ln.text, ln.offset)...)
	}
	return out
}

func (b *WordBuilder) buildOverRange(text string, offset int) []SpanID {
	idx := b.opts.wordRegexp().FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	var out []SpanID
	for i := 0; i < len(idx); i += b.opts.ORF {
		j := i + b.opts.FingerprintLength
		if j > len(idx) {
			j = len(idx)
		}
		start := idx[i][0]
		end := idx[j-1][1]
		chunk := text[start:end]
		id, ok := b.idByChunk[chunk]
		if !ok {
			id = ID(len(b.idByChunk))
			b.idByChunk[chunk] = id
		}
		out = append(out, SpanID{
			Span: span.New(uint32(offset+start), uint32(offset+end)),
			ID:   id,
		})
		if j == len(idx) {
			break
		}
	}
	return out
}
