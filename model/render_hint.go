/*
File    : parselatex/model/render_hint.go

ToLaTeXHint is the supplemented feature SPEC_FULL.md §C calls out:
Model.toLaTeX is out of scope (spec §6), but the spec requires "the AST
shapes must be such that the renderer has all data it needs: bracket style
via lbrk/rbrk, mixed-number/scientific/repeating flags, etc." This walks
the tree and reports, per node, which of those fields a real renderer
would have to consult — exercising the AST's self-sufficiency without
implementing the renderer itself.
*/
package model

import (
	"fmt"
	"strings"

	"github.com/artcompiler/parselatex/ast"
)

// ToLaTeXHint walks m.Node and returns one line per node describing the
// renderer-relevant fields a real Model.toLaTeX would need to consult:
// bracket delimiters when present, and any grammatical-shape flag that is
// set. It is a diagnostic aid, not a renderer.
func (m *Model) ToLaTeXHint() string {
	var b strings.Builder
	hintNode(&b, m.Node, 0)
	return b.String()
}

func hintNode(b *strings.Builder, n *ast.Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s", n.Op)

	var needs []string
	if n.LBrk != "" || n.RBrk != "" {
		needs = append(needs, fmt.Sprintf("brackets=%q/%q", n.LBrk, n.RBrk))
	}
	if n.Op == ast.OpNum {
		needs = append(needs, fmt.Sprintf("numberFormat=%s", n.NumberFormat))
	}
	for _, f := range flagHints(n) {
		needs = append(needs, f)
	}
	if len(needs) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(needs, " "))
	}
	b.WriteString("\n")

	for _, c := range n.Children {
		hintNode(b, c, depth+1)
	}
}

func flagHints(n *ast.Node) []string {
	var out []string
	if n.IsFraction {
		out = append(out, "isFraction")
	}
	if n.IsMixedNumber {
		out = append(out, "isMixedNumber")
	}
	if n.IsScientific {
		out = append(out, "isScientific")
	}
	if n.IsRepeating {
		out = append(out, "isRepeating")
	}
	if n.IsImplicit {
		out = append(out, "isImplicit")
	}
	if n.IsPolynomial {
		out = append(out, "isPolynomial")
	}
	if n.IsSlash {
		out = append(out, "isSlash")
	}
	if n.IsPolynomialTerm {
		out = append(out, "isPolynomialTerm")
	}
	return out
}
