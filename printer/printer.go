/*
File    : parselatex/printer/printer.go

Package printer is the debug pretty-printer for *ast.Node, grounded on the
teacher's print_visitor.go (a PrintingVisitor walking the Go-Mix node
hierarchy, indenting by a fixed step and writing one line per node into a
bytes.Buffer). This module's AST is a single Node type rather than a zoo of
visited types, so the walk is a plain recursive function over Op/Children
instead of a double-dispatch Accept/Visit pair — the indent-and-buffer
shape carries over unchanged.
*/
package printer

import (
	"bytes"
	"fmt"

	"github.com/artcompiler/parselatex/ast"
)

const indentSize = 2

// Printer accumulates an indented, one-line-per-node rendering of an AST.
type Printer struct {
	Indent int
	Buf    bytes.Buffer
}

// String returns the accumulated output.
func (p *Printer) String() string {
	return p.Buf.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// Print renders n into a fresh Printer and returns its string output, the
// common case for callers that just want a one-shot dump.
func Print(n *ast.Node) string {
	p := &Printer{}
	p.Visit(n)
	return p.String()
}

// Visit writes one line describing n, then recurses into its children at
// one deeper indent level. Leaves (NUM, VAR, TEXT, NONE) print their
// payload inline; everything else prints its Op and flag summary before
// descending.
func (p *Printer) Visit(n *ast.Node) {
	if n == nil {
		p.writeIndent()
		p.Buf.WriteString("<nil>\n")
		return
	}

	p.writeIndent()
	if n.IsLeaf() {
		fmt.Fprintf(&p.Buf, "%s %q\n", n.Op, n.Payload)
		return
	}

	fmt.Fprintf(&p.Buf, "%s%s\n", n.Op, flagSuffix(n))
	p.Indent += indentSize
	for _, c := range n.Children {
		p.Visit(c)
	}
	p.Indent -= indentSize
}

// flagSuffix renders the bracket delimiters and grammatical-shape flags a
// renderer would need (spec §6), for visibility during debugging.
func flagSuffix(n *ast.Node) string {
	var suffix string
	if n.LBrk != "" || n.RBrk != "" {
		suffix += fmt.Sprintf(" [%s %s]", n.LBrk, n.RBrk)
	}
	for _, f := range []struct {
		set  bool
		name string
	}{
		{n.IsFraction, "fraction"},
		{n.IsMixedNumber, "mixed"},
		{n.IsScientific, "scientific"},
		{n.IsRepeating, "repeating"},
		{n.IsImplicit, "implicit"},
		{n.IsPolynomial, "polynomial"},
		{n.IsSlash, "slash"},
		{n.IsPolynomialTerm, "polyterm"},
	} {
		if f.set {
			suffix += " <" + f.name + ">"
		}
	}
	return suffix
}
