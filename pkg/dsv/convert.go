// Package dsv provides conversion between AST nodes and Go native types.
package dsv

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shapestone/shape-core/pkg/ast"
)

// NodeToInterface converts an AST node to native Go types.
//
// For DSV, this converts:
//   - *ast.ArrayDataNode (input) → [][]string (slice of records)
//   - *ast.ArrayDataNode (record) → []string (slice of fields)
//   - *ast.LiteralNode (field) → string (field value)
//
// Example:
//
//	node, _ := dsv.Parse("root:x:0\n")
//	data := dsv.NodeToInterface(node)
//	// data is [][]string{{"root", "x", "0"}}
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		val := n.Value()
		// DSV fields are always strings.
		if s, ok := val.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", val)

	case *ast.ArrayDataNode:
		elements := n.Elements()
		if len(elements) == 0 {
			// Empty array could be either level - return an empty
			// record list for DSV input.
			return [][]string{}
		}

		switch elements[0].(type) {
		case *ast.ArrayDataNode:
			// Input level: array of records.
			records := make([][]string, len(elements))
			for i, elem := range elements {
				if record, ok := NodeToInterface(elem).([]string); ok {
					records[i] = record
				} else {
					records[i] = []string{}
				}
			}
			return records

		case *ast.LiteralNode:
			// Record level: array of fields.
			fields := make([]string, len(elements))
			for i, elem := range elements {
				if field, ok := NodeToInterface(elem).(string); ok {
					fields[i] = field
				}
			}
			return fields

		default:
			return [][]string{}
		}

	default:
		return nil
	}
}

// ToJSON converts a parsed AST node to JSON bytes: an array of records,
// each an array of field strings.
//
// Example:
//
//	node, _ := dsv.Parse("root:x:0\n")
//	out, _ := dsv.ToJSON(node)
//	// out: [["root","x","0"]]
func ToJSON(node ast.SchemaNode) ([]byte, error) {
	return json.Marshal(NodeToInterface(node))
}

// JSON renders the Document's records as a JSON array of string arrays.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d.records)
}
