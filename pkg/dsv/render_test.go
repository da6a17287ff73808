package dsv_test

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		rows  []dsv.Row
		delim string
		want  string
	}{
		{"simple", []dsv.Row{{"a", "b"}, {"c", "d"}}, ",", "a,b\nc,d\n"},
		{"multi-char delimiter", []dsv.Row{{"a", "b"}}, "::", "a::b\n"},
		{"quotes delimiter", []dsv.Row{{"a,b", "c"}}, ",", "\"a,b\",c\n"},
		{"doubles quotes", []dsv.Row{{`say "hi"`}}, ",", "\"say \"\"hi\"\"\"\n"},
		{"quotes newline", []dsv.Row{{"a\nb"}}, "\t", "\"a\nb\"\n"},
		{"no quoting for other delimiter", []dsv.Row{{"a,b", "c"}}, ";", "a,b;c\n"},
		{"empty fields", []dsv.Row{{"", ""}}, "|", "|\n"},
		{"empty chunk", nil, ",", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := dsv.Chunk{FirstRow: 1, Rows: tt.rows}.Node()
			got, err := dsv.Render(node, tt.delim)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_SingleRow(t *testing.T) {
	row := ast.NewArrayDataNode([]ast.SchemaNode{
		ast.NewLiteralNode("x", ast.ZeroPosition()),
		ast.NewLiteralNode(42, ast.ZeroPosition()),
		ast.NewLiteralNode(nil, ast.ZeroPosition()),
	}, ast.ZeroPosition())

	got, err := dsv.Render(row, ",")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "x,42,\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := dsv.Render(dsv.Chunk{}.Node(), ""); err == nil {
		t.Error("Render() with empty delimiter succeeded")
	}
	if _, err := dsv.Render(ast.NewLiteralNode("x", ast.ZeroPosition()), ","); err == nil {
		t.Error("Render() of a bare literal succeeded")
	}
	if out, err := dsv.Render(nil, ","); err != nil || len(out) != 0 {
		t.Errorf("Render(nil) = %q, %v", out, err)
	}
}
