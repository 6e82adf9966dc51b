/*
File    : parselatex/parser/fraction.go

fractionExpr is precedence level 8 (spec §4.2): it recognizes \frac{p}{q}
as either a plain fraction or, when both arguments carry the "d<var>"
derivative shape (\frac{d}{dx}, \frac{dy}{dx}), a DERIV node. Anything
else falls straight through to subscriptExpr.
*/
package parser

import (
	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/lexer"
)

func (p *Parser) fractionExpr() *ast.Node {
	if p.tok != lexer.FRAC {
		return p.subscriptExpr()
	}
	p.next()
	num := p.braceGroup()
	den := p.braceGroup()
	if isDerivativeFactor(num) && isDerivativeFactor(den) {
		return ast.Binary(ast.OpDeriv, num, den)
	}
	frac := ast.Binary(ast.OpFrac, num, den)
	frac.IsFraction = true
	return frac
}

// isDerivativeFactor reports whether n has the bare-"d" shape a
// derivative's numerator or denominator carries: the literal variable
// "d" alone, or "d" implicitly multiplied by the variable of
// differentiation ("dx" scanning as two VAR factors inside the braces).
func isDerivativeFactor(n *ast.Node) bool {
	if n.Op == ast.OpVar && n.Payload == "d" {
		return true
	}
	if n.Op == ast.OpMul && len(n.Children) >= 2 {
		first := n.Children[0]
		return first.Op == ast.OpVar && first.Payload == "d"
	}
	return false
}
