// Package dsv provides AST rendering to DSV bytes.
//
// This file implements the rendering half of the package, converting
// Shape AST nodes back into DSV byte representations.
package dsv

import (
	"bytes"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node to DSV bytes using the Unix configuration.
//
// The node should be the result of Parse or ParseReader: an array of
// records, each an array of string-literal fields. A single record node
// or a lone literal is also accepted.
//
// Rendering handles:
//   - Escaping of separator, escape, and newline characters in fields
//   - LF record terminators
//   - Preservation of empty fields
//
// Render is the inverse of Parse, with one format-inherent exception: a
// record whose only field is empty renders as a bare newline, which
// parses back as a blank line and produces no record.
//
// Example:
//
//	node, _ := dsv.Parse("root:x:0\n")
//	out, _ := dsv.Render(node)
//	// out: root:x:0\n
func Render(node ast.SchemaNode) ([]byte, error) {
	return RenderWithOptions(node, DefaultOptions())
}

// RenderWithOptions converts an AST node to DSV bytes with a custom
// separator and escape character.
//
// Example:
//
//	opts := dsv.Options{Separator: '|', Escape: '\\'}
//	out, err := dsv.RenderWithOptions(node, opts)
func RenderWithOptions(node ast.SchemaNode, opts Options) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	if err := renderNode(node, &buf, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderNode renders an AST node to the buffer.
func renderNode(node ast.SchemaNode, buf *bytes.Buffer, opts Options) error {
	switch n := node.(type) {
	case *ast.ArrayDataNode:
		return renderArrayData(n, buf, opts)
	case *ast.LiteralNode:
		// A bare literal renders as a one-field record.
		field, err := literalString(n)
		if err != nil {
			return err
		}
		writeField(buf, field, opts)
		buf.WriteByte('\n')
		return nil
	default:
		return fmt.Errorf("unsupported node type for DSV rendering: %T", node)
	}
}

// renderArrayData renders an ArrayDataNode as DSV. It handles both the
// input level (array of records) and the record level (array of fields).
func renderArrayData(node *ast.ArrayDataNode, buf *bytes.Buffer, opts Options) error {
	elements := node.Elements()
	if len(elements) == 0 {
		return nil
	}

	switch elements[0].(type) {
	case *ast.ArrayDataNode:
		// Array of records.
		for _, elem := range elements {
			record, ok := elem.(*ast.ArrayDataNode)
			if !ok {
				return fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
			}
			if err := renderRecord(record, buf, opts); err != nil {
				return err
			}
		}
		return nil
	case *ast.LiteralNode:
		// A single record.
		return renderRecord(node, buf, opts)
	default:
		return fmt.Errorf("unsupported element type for DSV rendering: %T", elements[0])
	}
}

// renderRecord renders one record node as separator-joined fields
// terminated by a newline.
func renderRecord(record *ast.ArrayDataNode, buf *bytes.Buffer, opts Options) error {
	for i, elem := range record.Elements() {
		literal, ok := elem.(*ast.LiteralNode)
		if !ok {
			return fmt.Errorf("expected field to be *ast.LiteralNode, got %T", elem)
		}
		field, err := literalString(literal)
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteRune(opts.Separator)
		}
		writeField(buf, field, opts)
	}
	buf.WriteByte('\n')
	return nil
}

// writeField writes a field value, escaping every occurrence of the
// separator, the escape character, and newline.
func writeField(buf *bytes.Buffer, field string, opts Options) {
	for _, c := range field {
		if c == opts.Separator || c == opts.Escape || c == '\n' {
			buf.WriteRune(opts.Escape)
		}
		buf.WriteRune(c)
	}
}

// literalString extracts the string value of a field literal.
func literalString(literal *ast.LiteralNode) (string, error) {
	value, ok := literal.Value().(string)
	if !ok {
		return "", fmt.Errorf("expected field value to be string, got %T", literal.Value())
	}
	return value, nil
}
