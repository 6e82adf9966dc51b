package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artcompiler/parselatex/ast"
)

func TestPrint_LeafShowsPayload(t *testing.T) {
	out := Print(ast.Var("x"))
	assert.Contains(t, out, `VAR "x"`)
}

func TestPrint_NonLeafIndentsChildren(t *testing.T) {
	node := ast.Binary(ast.OpAdd, ast.Num("1", ast.FormatInteger), ast.Num("2", ast.FormatInteger))
	out := Print(node)
	assert.Contains(t, out, "ADD")
	assert.Contains(t, out, `  NUM "1"`)
	assert.Contains(t, out, `  NUM "2"`)
}

func TestPrint_FractionShowsFlag(t *testing.T) {
	node := ast.Binary(ast.OpFrac, ast.Num("1", ast.FormatInteger), ast.Num("2", ast.FormatInteger))
	node.IsFraction = true
	out := Print(node)
	assert.Contains(t, out, "<fraction>")
}

func TestPrint_BracketShowsDelimiters(t *testing.T) {
	node := ast.Unary(ast.OpParen, ast.Var("x"))
	node.LBrk, node.RBrk = "(", ")"
	out := Print(node)
	assert.Contains(t, out, "[( )]")
}

func TestRaw_SharedSubtreeDumpsNonEmpty(t *testing.T) {
	shared := ast.Var("x")
	node := ast.Binary(ast.OpAdd, shared, shared)
	out := Raw(node)
	assert.NotEmpty(t, out)
}
