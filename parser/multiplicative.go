/*
File    : parselatex/parser/multiplicative.go

multiplicativeExpr is the disambiguation engine of spec §4.3: with an
explicit operator between factors the shape is unambiguous (MUL or DIV);
without one, the parser chooses among mixed number, repeating decimal,
E-notation, scientific form, prime attachment, chemistry molar mass,
degree attachment, or generic implicit multiplication based on the shape
of the already-parsed left factor and the token that follows it.
*/
package parser

import (
	"strings"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/lexer"
)

// multiplicativeExpr parses one or more fractionExpr factors combined by
// explicit or implicit multiplication/division (spec §4.2 level 7).
// implicitOnly, set by trig/log/integral argument parsing, stops the
// level at the first explicit multiplicative operator or function token
// rather than continuing to absorb factors.
func (p *Parser) multiplicativeExpr(implicitOnly bool) *ast.Node {
	node := p.fractionExpr()

	for {
		switch p.tok {
		case lexer.STAR, lexer.CDOT, lexer.TIMES:
			if implicitOnly {
				return node
			}
			p.next()
			right := p.fractionExpr()
			node = p.combineExplicitMul(node, right)
		case lexer.DIV, lexer.SLASH:
			if implicitOnly {
				return node
			}
			isSlash := p.tok == lexer.SLASH
			p.next()
			right := p.fractionExpr()
			div := ast.Binary(ast.OpDiv, node, right)
			div.IsSlash = isSlash
			node = div
		default:
			if !p.canContinueImplicit() {
				return node
			}
			if implicitOnly && p.isFunctionToken() {
				return node
			}
			combined, consumed := p.tryImplicit(node)
			if !consumed {
				return node
			}
			node = combined
		}
	}
}

// combineExplicitMul builds the MUL for an explicit *, \cdot, or \times,
// recognizing the "a \times 10^k" scientific-notation spelling (spec
// §4.3 "scientific form").
func (p *Parser) combineExplicitMul(left, right *ast.Node) *ast.Node {
	mul := ast.FlattenBinary(ast.OpMul, left, right, true)
	if right.Op == ast.OpPow && right.Children[0].Op == ast.OpNum && right.Children[0].Payload == "10" {
		mul.IsScientific = true
	}
	return mul
}

// canContinueImplicit reports whether the current lookahead token can
// begin another implicit-multiplication factor; it returns false for
// anything that terminates the multiplicative level (an explicit
// additive/relational/structural operator, a closing delimiter, or EOS).
func (p *Parser) canContinueImplicit() bool {
	switch p.tok {
	case lexer.EOS, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE, lexer.RIGHTBRACESET,
		lexer.RIGHT, lexer.END, lexer.COMMA, lexer.SEMICOLON, lexer.COLON, lexer.IMPLIES,
		lexer.PLUS, lexer.MINUS, lexer.PM, lexer.SETMINUS, lexer.CUP, lexer.CAP,
		lexer.AMP, lexer.NEWROW, lexer.CARET, lexer.UNDERSCRE, lexer.BANG, lexer.PERCENT,
		lexer.STAR, lexer.CDOT, lexer.TIMES, lexer.DIV, lexer.SLASH, lexer.NOT:
		return false
	}
	if _, ok := equalOps[p.tok]; ok {
		return false
	}
	if _, ok := relationalOps[p.tok]; ok {
		return false
	}
	if p.tok == lexer.PIPE {
		return p.pipeTokenCount == 0
	}
	return true
}

// isFunctionToken reports whether the current token introduces one of
// the specialized-primary function forms (spec §4.3 "implicit-only mode
// ... stops on any explicit multiplicative operator or function token").
func (p *Parser) isFunctionToken() bool {
	switch p.tok {
	case lexer.SIN, lexer.COS, lexer.TAN, lexer.COT, lexer.SEC, lexer.CSC,
		lexer.ARCSIN, lexer.ARCCOS, lexer.ARCTAN, lexer.SINH, lexer.COSH, lexer.TANH,
		lexer.LOG, lexer.LN, lexer.LG, lexer.INT, lexer.IINT, lexer.IIINT,
		lexer.SUM, lexer.PROD, lexer.LIM:
		return true
	default:
		return false
	}
}

// tryImplicit decides which implicit-multiplication shape (if any)
// applies given the already-parsed left factor and the current
// lookahead, parses whatever additional input that shape requires, and
// returns the combined node. consumed is false only when two adjacent
// numeric literals appear with no recognized shape between them, which
// is a fatal error rather than a silent non-match.
func (p *Parser) tryImplicit(node *ast.Node) (*ast.Node, bool) {
	switch {
	case node.Op == ast.OpNum && p.tok == lexer.FRAC:
		frac := p.fractionExpr()
		add := ast.Binary(ast.OpAdd, node, frac)
		add.IsMixedNumber = true
		return add, true

	case node.Op == ast.OpNum && strings.HasSuffix(node.Payload, ".") && p.tok == lexer.OVERLINE:
		overline := p.fractionExpr()
		if overline.Op == ast.OpOverline && len(overline.Children) == 1 {
			left := node.Clone()
			left.IsRepeating = true
			right := overline.Children[0].Clone()
			right.IsRepeating = true
			add := ast.Binary(ast.OpAdd, left, right)
			add.IsRepeating = true
			return add, true
		}
		return ast.FlattenBinary(ast.OpMul, node, overline, true), true

	case node.Op == ast.OpNum && p.tok == lexer.TEXT && (p.lexeme == "e" || p.lexeme == "E"):
		p.next()
		negative := false
		if p.tok == lexer.MINUS {
			negative = true
			p.next()
		} else if p.tok == lexer.PLUS {
			p.next()
		}
		exponent := p.fractionExpr()
		if negative {
			exponent = ast.Unary(ast.OpSub, exponent)
		}
		pow := ast.Binary(ast.OpPow, ast.Num("10", ast.FormatInteger), exponent)
		mul := ast.Binary(ast.OpMul, node, pow)
		mul.IsScientific = true
		return mul, true

	case node.Op == ast.OpNum && p.tok == lexer.NUM:
		p.fail(diag.TwoNumbersNoOperator, node.Payload, p.lexeme)
		return nil, false

	case node.Op == ast.OpVar && node.Payload == "M" && p.tok == lexer.LPAREN && p.env != nil && p.env.IsChemistryMode():
		arg := p.fractionExpr()
		return ast.Unary(ast.OpMolarMass, arg), true

	case node.Op == ast.OpSub && len(node.Children) == 1 && node.Children[0].Op == ast.OpNum && p.tok == lexer.DEGREE:
		p.next()
		deg := ast.Unary(ast.OpDegree, node.Children[0])
		return ast.Unary(ast.OpSub, deg), true

	default:
		right := p.fractionExpr()
		if node.Op == ast.OpVar && right.Op == ast.OpVar && strings.HasPrefix(right.Payload, "'") {
			return ast.Binary(ast.OpPow, node, right), true
		}
		mul := ast.FlattenBinary(ast.OpMul, node, right, true)
		mul.IsImplicit = true
		return mul, true
	}
}

// hasDX reports whether n's right spine ends in a bare "d" factor
// followed by a variable factor — the trailing integration-variable
// marker an integral's integrand must carry (spec §4.3 "hasDX walks the
// right spine through MUL, FRAC (numerator), and function-arg
// positions").
func hasDX(n *ast.Node) bool {
	switch n.Op {
	case ast.OpMul:
		if len(n.Children) >= 2 {
			prev := n.Children[len(n.Children)-2]
			last := n.Children[len(n.Children)-1]
			if prev.Op == ast.OpVar && prev.Payload == "d" && last.Op == ast.OpVar {
				return true
			}
		}
		if len(n.Children) > 0 {
			return hasDX(n.Children[len(n.Children)-1])
		}
	case ast.OpFrac:
		return hasDX(n.Children[0])
	case ast.OpSin, ast.OpCos, ast.OpTan, ast.OpCot, ast.OpSec, ast.OpCsc,
		ast.OpArcsin, ast.OpArccos, ast.OpArctan, ast.OpSinh, ast.OpCosh, ast.OpTanh, ast.OpLog:
		if len(n.Children) > 0 {
			return hasDX(n.Children[len(n.Children)-1])
		}
	}
	return false
}

// stripDX removes the trailing "d<var>" pair hasDX found, returning the
// integrand with it removed and the integration-variable node on its
// own.
func stripDX(n *ast.Node) (*ast.Node, *ast.Node) {
	switch n.Op {
	case ast.OpMul:
		if len(n.Children) >= 2 {
			prev := n.Children[len(n.Children)-2]
			last := n.Children[len(n.Children)-1]
			if prev.Op == ast.OpVar && prev.Payload == "d" && last.Op == ast.OpVar {
				rest := n.Children[:len(n.Children)-2]
				if len(rest) == 1 {
					return rest[0], last
				}
				return ast.Nary(ast.OpMul, rest...), last
			}
		}
		stripped, v := stripDX(n.Children[len(n.Children)-1])
		children := append(append([]*ast.Node{}, n.Children[:len(n.Children)-1]...), stripped)
		return ast.Nary(ast.OpMul, children...), v
	case ast.OpFrac:
		num, v := stripDX(n.Children[0])
		return ast.Binary(ast.OpFrac, num, n.Children[1]), v
	default:
		if len(n.Children) > 0 {
			stripped, v := stripDX(n.Children[len(n.Children)-1])
			children := append(append([]*ast.Node{}, n.Children[:len(n.Children)-1]...), stripped)
			return ast.Nary(n.Op, children...), v
		}
	}
	return n, nil
}
