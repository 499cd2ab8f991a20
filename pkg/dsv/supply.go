package dsv

import (
	"io"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// StreamReader adapts a shape-core tokenizer.Stream to io.RuneReader, so
// a stream shared with other Shape parsers can feed the DSV parser.
//
// The adapter consumes the stream one character at a time and reports
// io.EOF once the stream is exhausted; it never fails otherwise. The
// stream's underlying storage stays owned by the caller.
//
// Example:
//
//	stream := tokenizer.NewStreamFromReader(file)
//	sink := &dsv.RecordSink{}
//	p := dsv.NewParser(sink)
//	if err := p.ParseAndFinish(dsv.NewStreamReader(stream)); err != nil {
//	    // handle error
//	}
type StreamReader struct {
	stream tokenizer.Stream
}

// NewStreamReader returns a StreamReader drawing from stream.
func NewStreamReader(stream tokenizer.Stream) *StreamReader {
	return &StreamReader{stream: stream}
}

// ReadRune implements io.RuneReader. It returns io.EOF when the stream
// is exhausted.
func (r *StreamReader) ReadRune() (rune, int, error) {
	c, ok := r.stream.PeekChar()
	if !ok {
		return 0, 0, io.EOF
	}
	r.stream.NextChar()
	return c, utf8.RuneLen(c), nil
}

// IsEOF reports whether the underlying stream is exhausted.
func (r *StreamReader) IsEOF() bool {
	return r.stream.IsEos()
}
