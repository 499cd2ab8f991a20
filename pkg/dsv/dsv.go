// Package dsv parses Unix-style Delimiter-Separated Values text.
//
// DSV is the record format described in chapter five, "Textuality", of
// Eric Steven Raymond, "The Art of Unix Programming": one record per
// line, fields separated by a single delimiter character (classically
// ':'), and a single escape character ('\') that makes the following
// character literal, including separators, the escape character itself,
// and newlines. There is no quoting mechanism, no multi-character
// delimiter, and no header-row convention; fields are purely positional.
// /etc/passwd is the canonical example.
//
// # Parsing model
//
// The core is a small exact state machine that consumes one character at
// a time and notifies a caller-supplied Sink of record and field
// lifecycle events. Everything else in the package (the AST surface,
// the DOM, the Scanner) is a sink layered on that machine.
//
// Three levels of API are available, lowest to highest:
//
//   - Push: construct a Parser (or a statically dispatched Typed) around
//     your own Sink and feed it characters with FeedCharacter. Call
//     Finish before discarding the parser, or a final unterminated
//     record is lost.
//   - Pull: Parser.Parse and Parser.ParseAndFinish drain any
//     io.RuneReader. Scanner iterates records from an io.Reader.
//   - Whole-input: Parse and ParseReader return the input as a Shape AST
//     node; ParseDocument returns a Document DOM.
//
// # Thread safety
//
// Package-level functions are safe for concurrent use; each call builds
// its own parser. A Parser, Typed, or Scanner instance has no internal
// locking and must not be used from multiple goroutines concurrently.
// Sinks are invoked synchronously from the feeding goroutine and must
// not call back into the parser driving them.
//
// # Example usage with Parse
//
//	node, err := dsv.Parse("root:x:0:0:root:/root:/bin/bash\n")
//	if err != nil {
//	    // handle error
//	}
//	// node is a *ast.ArrayDataNode: records of string-literal fields
//
// # Example usage with a custom sink
//
//	type fieldCount struct {
//	    dsv.FieldBuffer
//	    n int
//	}
//
//	func (s *fieldCount) OnRecordStart() {}
//	func (s *fieldCount) OnFieldEnd()    { s.n++; s.ClearField() }
//	func (s *fieldCount) OnRecordEnd()   {}
//
//	sink := &fieldCount{}
//	p := dsv.NewParser(sink)
//	p.FeedString("a:b:c\n")
//	p.Finish()
//	// sink.n == 3
package dsv

import (
	"bufio"
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Parse parses DSV text from a string into an AST using the Unix
// configuration (':' separator, '\' escape).
//
// Returns an ast.SchemaNode representing the input:
//   - *ast.ArrayDataNode for the input (array of records)
//   - each record is an *ast.ArrayDataNode of fields
//   - each field is an *ast.LiteralNode containing a string value
//
// A final record without a trailing newline is included. Blank lines
// produce no record. The grammar is permissive: Parse fails only if a
// supply error occurs, which cannot happen for in-memory strings.
//
// Example:
//
//	node, err := dsv.Parse("root:x:0\ndaemon:x:1\n")
//	arrayNode := node.(*ast.ArrayDataNode)
//	records := arrayNode.Elements() // two records
func Parse(input string) (ast.SchemaNode, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses DSV text from a string with a custom separator
// and escape character.
//
// Example:
//
//	opts := dsv.Options{Separator: '|', Escape: '\\'}
//	node, err := dsv.ParseWithOptions("a|b\n", opts)
func ParseWithOptions(input string, opts Options) (ast.SchemaNode, error) {
	return parseSupply(strings.NewReader(input), opts)
}

// ParseReader parses DSV text from an io.Reader into an AST using the
// Unix configuration.
//
// The reader is consumed incrementally through a buffered rune reader,
// so memory use is bounded by the largest record, not the input size.
// The reader can be any io.Reader: an os.File, a network stream, a
// decompressor, or a shape-core stream wrapped with NewStreamReader.
//
// Example:
//
//	file, err := os.Open("/etc/passwd")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	node, err := dsv.ParseReader(file)
func ParseReader(reader io.Reader) (ast.SchemaNode, error) {
	return ParseReaderWithOptions(reader, DefaultOptions())
}

// ParseReaderWithOptions parses DSV text from an io.Reader with a custom
// separator and escape character.
func ParseReaderWithOptions(reader io.Reader, opts Options) (ast.SchemaNode, error) {
	return parseSupply(bufio.NewReader(reader), opts)
}

// parseSupply drains a character supply through a node-building sink.
func parseSupply(r io.RuneReader, opts Options) (ast.SchemaNode, error) {
	sink := &nodeSink{}
	p := NewTyped(sink, opts)
	if err := p.ParseAndFinish(r); err != nil {
		return nil, err
	}
	return ast.NewArrayDataNode(sink.records, ast.ZeroPosition()), nil
}

// Format returns the format identifier for this parser.
// Returns "DSV" to identify this as the DSV data format parser.
func Format() string {
	return "DSV"
}

// nodeSink assembles parse events into Shape AST nodes.
//
// Positions are not tracked: the sink observes decoded field content,
// never raw input offsets, so every node carries ast.ZeroPosition().
type nodeSink struct {
	FieldBuffer

	fields  []ast.SchemaNode
	records []ast.SchemaNode
}

func (s *nodeSink) OnRecordStart() {
	s.fields = make([]ast.SchemaNode, 0, 8)
}

func (s *nodeSink) OnFieldEnd() {
	s.fields = append(s.fields, ast.NewLiteralNode(s.Field(), ast.ZeroPosition()))
	s.ClearField()
}

func (s *nodeSink) OnRecordEnd() {
	s.records = append(s.records, ast.NewArrayDataNode(s.fields, ast.ZeroPosition()))
	s.fields = nil
}

func (s *nodeSink) OnReset() {
	s.ClearField()
	s.fields = nil
	s.records = nil
}
