// Package dsv provides a user-friendly DOM API for DSV manipulation.
//
// The DOM API provides a fluent interface for building and manipulating
// DSV documents without working with raw AST nodes or writing a Sink.
//
// # Document Type
//
// Document represents a DSV file as an ordered list of records:
//
//	doc := dsv.NewDocument().
//		AddRecord([]string{"root", "x", "0"}).
//		AddRecord([]string{"daemon", "x", "1"})
//
// # Record Type
//
// Record represents a single line with positional field access. DSV has
// no header-row convention, so fields are addressed by index only:
//
//	record, ok := doc.GetRecord(0)
//	login, ok := record.Get(0)
//
// # Round-trip Support
//
// Parse DSV and render back to DSV:
//
//	doc, _ := dsv.ParseDocument("root:x:0\n")
//	out, _ := doc.DSV() // "root:x:0\n"
package dsv

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document represents a DSV file with a fluent API for manipulation.
// Setter methods return *Document to enable method chaining.
type Document struct {
	records [][]string
}

// Record represents a single record in a DSV file with positional field
// access.
type Record struct {
	fields []string
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{
		records: make([][]string, 0),
	}
}

// ParseDocument parses a DSV string into a Document using the Unix
// configuration (':' separator, '\' escape).
//
// Example:
//
//	doc, err := dsv.ParseDocument("root:x:0\ndaemon:x:1\n")
//	if err != nil {
//	    // handle error
//	}
//	doc.RecordCount() // 2
func ParseDocument(input string) (*Document, error) {
	return ParseDocumentWithOptions(input, DefaultOptions())
}

// ParseDocumentWithOptions parses a DSV string into a Document with a
// custom separator and escape character.
func ParseDocumentWithOptions(input string, opts Options) (*Document, error) {
	sink := &RecordSink{}
	p := NewTyped(sink, opts)
	if err := p.ParseAndFinish(strings.NewReader(input)); err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, record := range sink.Records() {
		doc.AddRecord(record)
	}
	return doc, nil
}

// AddRecord appends a record to the document.
// Returns the Document for method chaining.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, fields)
	return d
}

// Records returns all records as Record values, in document order.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields}
	}
	return records
}

// RecordCount returns the number of records in the document.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the record at the specified index.
// Returns (Record, false) if the index is out of bounds.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index]}, true
}

// DSV renders the Document back to a DSV string using the Unix
// configuration. Fields containing the separator, the escape character,
// or newlines are escaped on the way out.
//
// Example:
//
//	doc := dsv.NewDocument().AddRecord([]string{"a:b", "c"})
//	out, _ := doc.DSV()
//	// Output: a\:b:c\n
func (d *Document) DSV() (string, error) {
	return d.DSVWithOptions(DefaultOptions())
}

// DSVWithOptions renders the Document with a custom separator and escape
// character.
func (d *Document) DSVWithOptions(opts Options) (string, error) {
	var sb strings.Builder
	for _, fields := range d.records {
		for i, field := range fields {
			if i > 0 {
				sb.WriteRune(opts.Separator)
			}
			for _, c := range field {
				if c == opts.Separator || c == opts.Escape || c == '\n' {
					sb.WriteRune(opts.Escape)
				}
				sb.WriteRune(c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ============================================================================
// Record Methods (positional field access)
// ============================================================================

// Get returns the field value at the specified index.
// Returns (value, false) if the index is out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// Fields returns a copy of all field values in the record.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// ============================================================================
// AST Conversion (for integration with AST-based APIs)
// ============================================================================

// ToAST converts the Document to an AST ArrayDataNode.
// This is useful for integration with other Shape parsers.
func (d *Document) ToAST() (*ast.ArrayDataNode, error) {
	records := make([]ast.SchemaNode, 0, len(d.records))
	for _, record := range d.records {
		fieldNodes := make([]ast.SchemaNode, len(record))
		for i, f := range record {
			fieldNodes[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(fieldNodes, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// FromAST creates a Document from an AST ArrayDataNode.
// This is useful for integration with other Shape parsers.
func FromAST(node ast.SchemaNode) (*Document, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	doc := NewDocument()
	for _, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, len(recordNode.Elements()))
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}
			fields = append(fields, value)
		}
		doc.AddRecord(fields)
	}
	return doc, nil
}
