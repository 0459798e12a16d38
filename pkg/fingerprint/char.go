package fingerprint

import (
	"strings"

	"github.com/equipe22/hegpdup/pkg/span"
)

// CharBuilder fingerprints text in fixed-length character chunks. It
// carries a process-local chunk->id table that grows monotonically across
// every text it ever fingerprints, so identical chunks across documents
// share ids.
type CharBuilder struct {
	opts      CharOptions
	idByChunk map[string]ID
}

// NewCharBuilder validates opts and returns a ready CharBuilder.
func NewCharBuilder(opts CharOptions) (*CharBuilder, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &CharBuilder{
		opts:      opts,
		idByChunk: make(map[string]ID),
	}, nil
}

// BuildFingerprints implements Builder.
func (b *CharBuilder) BuildFingerprints(text string) []SpanID {
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

// buildOverRange fingerprints a single contiguous piece of text, offsetting
// every emitted Span by offset so callers can fingerprint line-by-line
// while keeping spans relative to the whole document.
func (b *CharBuilder) buildOverRange(text string, offset int) []SpanID {
	var out []SpanID
	n := len(text)
	for s := 0; s < n; s += b.opts.ORF {
		e := s + b.opts.FingerprintLength
		if e > n {
			e = n
		}
		chunk := text[s:e]
		if isLineSeparator(chunk) {
			continue
		}
		id, ok := b.idByChunk[chunk]
		if !ok {
			id = ID(len(b.idByChunk))
			b.idByChunk[chunk] = id
		}
		out = append(out, SpanID{
			Span: span.New(uint32(offset+s), uint32(offset+e)),
			ID:   id,
		})
		if e == n {
			break
		}
	}
	return out
}

// isLineSeparator reports whether chunk is exactly a line-separator
// sequence ("\n" or "\r\n"), in which case the chunk must be skipped
// rather than fingerprinted (skip-and-continue, never terminate the rest
// of the line).
func isLineSeparator(chunk string) bool {
	return chunk == "\n" || chunk == "\r\n"
}

type lineSlice struct {
	text   string
	offset int
}

// splitLines splits text into maximal non-newline runs, each tagged with
// its byte offset in the original text.
func splitLines(text string) []lineSlice {
	var out []lineSlice
	start := -1
	for i := 0; i <= len(text); i++ {
		atBreak := i == len(text) || text[i] == '\n' || text[i] == '\r'
		if !atBreak {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, lineSlice{text: text[start:i], offset: start})
			start = -1
		}
	}
	return out
}
