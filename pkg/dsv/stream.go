package dsv

import (
	"bufio"
	"errors"
	"io"
)

// Scanner provides a streaming interface for reading DSV records one at
// a time. It feeds characters to the state machine only until the next
// record completes, so memory use is bounded by the largest record, not
// the input size.
//
// Example usage:
//
//	file, _ := os.Open("/etc/passwd")
//	defer file.Close()
//
//	scanner := dsv.NewScanner(file)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    login, _ := record.Get(0)
//	    fmt.Println(login)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader  *bufio.Reader
	parser  *Typed[*RecordSink]
	sink    *RecordSink
	pending [][]string
	current Record
	err     error
	eof     bool
}

// NewScanner creates a Scanner reading DSV from the given io.Reader with
// the Unix configuration (':' separator, '\' escape).
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerWithOptions(reader, DefaultOptions())
}

// NewScannerWithOptions creates a Scanner with a custom separator and
// escape character.
func NewScannerWithOptions(reader io.Reader, opts Options) *Scanner {
	sink := &RecordSink{}
	return &Scanner{
		reader: bufio.NewReader(reader),
		parser: NewTyped(sink, opts),
		sink:   sink,
	}
}

// Scan advances the scanner to the next record.
// It returns false when the input is exhausted or a read error occurs.
// After Scan returns false, Err returns the error, if any.
//
// A final record without a trailing newline is returned like any other;
// the scanner finishes the parse at end of input.
func (s *Scanner) Scan() bool {
	for len(s.pending) == 0 {
		if s.err != nil || s.eof {
			return false
		}
		c, _, err := s.reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Flush a trailing unterminated record.
				s.eof = true
				s.parser.Finish()
				s.pending = append(s.pending, s.sink.Take()...)
				continue
			}
			s.err = err
			return false
		}
		s.parser.FeedCharacter(c)
		s.pending = append(s.pending, s.sink.Take()...)
	}

	s.current = Record{fields: s.pending[0]}
	s.pending = s.pending[1:]
	return true
}

// Record returns the current record.
// It should only be called after Scan returns true.
func (s *Scanner) Record() Record {
	return s.current
}

// Err returns the first error encountered during scanning.
// It returns nil if scanning stopped at end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Close finishes the underlying parse, making any already-completed
// record available to a final Scan, and stops further reads from the
// input. It implements io.Closer and always returns nil; closing a
// scanner more than once is harmless.
func (s *Scanner) Close() error {
	s.eof = true
	s.parser.Finish()
	s.pending = append(s.pending, s.sink.Take()...)
	return nil
}
