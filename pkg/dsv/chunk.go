package dsv

import "github.com/shapestone/shape-core/pkg/ast"

// Chunk is a batch of consecutive rows emitted by a Stream.
type Chunk struct {
	// Index is the 0-based position of the chunk in its stream.
	Index int
	// FirstRow is the row ordinal of Rows[0]: its 1-based position after
	// header skipping, counting blank lines.
	FirstRow int
	Rows     []Row
}

// Node returns the chunk as an *ast.ArrayDataNode of rows, each an
// *ast.ArrayDataNode of *ast.LiteralNode string fields. Row and field
// positions are recorded as line and column.
func (c Chunk) Node() *ast.ArrayDataNode {
	rows := make([]ast.SchemaNode, len(c.Rows))
	for i, row := range c.Rows {
		line := c.FirstRow + i
		fields := make([]ast.SchemaNode, len(row))
		for j, f := range row {
			fields[j] = ast.NewLiteralNode(f, ast.NewPosition(0, line, j+1))
		}
		rows[i] = ast.NewArrayDataNode(fields, ast.NewPosition(0, line, 1))
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}
