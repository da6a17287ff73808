package dsv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node back to delimited text.
//
// The node is either a chunk (an array of rows, as returned by Chunk.Node)
// or a single row (an array of literals). Each row ends with "\n". An empty
// array renders as nothing.
//
// Fields containing the delimiter, a double quote, or a line break are
// wrapped in double quotes with inner quotes doubled. Tokenize does not
// undo this quoting; it is meant for consumers that speak RFC 4180.
//
// Example:
//
//	out, _ := dsv.Render(chunk.Node(), ";")
func Render(node ast.SchemaNode, delimiter string) ([]byte, error) {
	if delimiter == "" {
		return nil, &ConfigError{Field: "Delimiter", Message: "must not be empty"}
	}
	if node == nil {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("unsupported node type for rendering: %T", node)
	}

	elements := arr.Elements()
	if len(elements) == 0 {
		return []byte{}, nil
	}

	// Chunk level - array of rows
	if _, isRow := elements[0].(*ast.ArrayDataNode); isRow {
		for _, elem := range elements {
			row, ok := elem.(*ast.ArrayDataNode)
			if !ok {
				return nil, fmt.Errorf("unexpected element type in chunk: %T", elem)
			}
			if err := renderRow(row, &buf, delimiter); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	}

	if err := renderRow(arr, &buf, delimiter); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderRow writes one row of literals followed by a newline.
func renderRow(row *ast.ArrayDataNode, buf *bytes.Buffer, delimiter string) error {
	for i, elem := range row.Elements() {
		lit, ok := elem.(*ast.LiteralNode)
		if !ok {
			return fmt.Errorf("unexpected element type in row: %T", elem)
		}
		if i > 0 {
			buf.WriteString(delimiter)
		}
		writeField(buf, literalString(lit), delimiter)
	}
	buf.WriteByte('\n')
	return nil
}

func literalString(node *ast.LiteralNode) string {
	switch v := node.Value().(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeField writes a field, quoting it when it contains the delimiter,
// a quote, or a line break.
func writeField(buf *bytes.Buffer, value, delimiter string) {
	if !strings.Contains(value, delimiter) && !strings.ContainsAny(value, "\"\n\r") {
		buf.WriteString(value)
		return
	}
	buf.WriteByte('"')
	buf.WriteString(strings.ReplaceAll(value, `"`, `""`))
	buf.WriteByte('"')
}
