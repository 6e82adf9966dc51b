/*
File    : parselatex/parser/functions.go

The specialized primaries of spec §4.5: trig/hyperbolic/inverse-trig and
the log family, \int/\iint/\iiint with mandatory trailing d<var>
extraction, \sum/\prod/\bigcup/\bigcap with optional bounds, \lim,
\dot{...}-spelled repeating decimals, \overset/\underset, and \Delta
variable annotation.
*/
package parser

import (
	"strings"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/lexer"
)

var trigOps = map[lexer.Kind]ast.Op{
	lexer.SIN: ast.OpSin, lexer.COS: ast.OpCos, lexer.TAN: ast.OpTan,
	lexer.COT: ast.OpCot, lexer.SEC: ast.OpSec, lexer.CSC: ast.OpCsc,
	lexer.ARCSIN: ast.OpArcsin, lexer.ARCCOS: ast.OpArccos, lexer.ARCTAN: ast.OpArctan,
	lexer.SINH: ast.OpSinh, lexer.COSH: ast.OpCosh, lexer.TANH: ast.OpTanh,
}

// inverseRewrite maps sin/cos/tan to the arc-function their "^{-1}"
// superscript spells, per spec §4.5 "\sin^{-1} rewrites to ARCSIN rather
// than producing POW(SIN(...), -1)".
var inverseRewrite = map[ast.Op]ast.Op{
	ast.OpSin: ast.OpArcsin,
	ast.OpCos: ast.OpArccos,
	ast.OpTan: ast.OpArctan,
}

// functionArgument parses a prefix function's argument in implicit-only
// mode (spec §4.3/§4.5): "\sin x \cos y" stops sin's argument at the
// function token \cos rather than absorbing it as an implicit factor.
func (p *Parser) functionArgument() *ast.Node {
	return p.multiplicativeExpr(true)
}

// trigExpr parses one of the trig/hyperbolic/inverse-trig family tokens,
// honoring a "^{-1}" superscript as an inverse-function rewrite rather
// than a literal exponent, and otherwise wrapping the call in POW when a
// genuine exponent ("\sin^2 x") precedes the argument.
func (p *Parser) trigExpr() *ast.Node {
	op := trigOps[p.tok]
	p.next()

	var pendingPow *ast.Node
	if p.tok == lexer.CARET {
		exp := p.scopedArgument()
		if isNegOne(exp) {
			if rewritten, ok := inverseRewrite[op]; ok {
				op = rewritten
			}
		} else {
			pendingPow = exp
		}
	}

	arg := p.functionArgument()
	node := ast.Unary(op, arg)
	if pendingPow != nil {
		node = ast.Binary(ast.OpPow, node, pendingPow)
	}
	return node
}

func isNegOne(n *ast.Node) bool {
	if n.Op == ast.OpNum && n.Payload == "-1" {
		return true
	}
	if n.Op == ast.OpSub && len(n.Children) == 1 {
		c := n.Children[0]
		return c.Op == ast.OpNum && c.Payload == "1"
	}
	return false
}

// logExpr parses \log (base 10 unless subscripted), \ln (base e), and \lg
// (base 10), producing LOG(base, argument) (spec §4.5).
func (p *Parser) logExpr() *ast.Node {
	kind := p.tok
	p.next()

	var base *ast.Node
	switch kind {
	case lexer.LN:
		base = ast.Var("e")
	case lexer.LG:
		base = ast.Num("10", ast.FormatInteger)
	default: // LOG
		if p.tok == lexer.UNDERSCRE {
			base = p.scopedArgument()
		} else {
			base = ast.Num("10", ast.FormatInteger)
		}
	}

	arg := p.functionArgument()
	return ast.Binary(ast.OpLog, base, arg)
}

// integralExpr parses \int/\iint/\iiint with optional bounds and the
// mandatory trailing d<var> per nesting level (spec §4.5, §5 "every exit
// path from integralExpr must restore the prior ParsingIntegralExpr
// value"), peeling one "d<var>" per integral sign from the parsed
// integrand's right spine via hasDX/stripDX.
func (p *Parser) integralExpr() *ast.Node {
	kind := p.tok
	p.next()

	depth := 1
	switch kind {
	case lexer.IINT:
		depth = 2
	case lexer.IIINT:
		depth = 3
	}

	var lower, upper *ast.Node
	if p.tok == lexer.UNDERSCRE {
		lower = p.scopedArgument()
	}
	if p.tok == lexer.CARET {
		upper = p.scopedArgument()
	}

	var integrand *ast.Node
	p.withIntegralContext(func() {
		integrand = p.additiveExpr()
	})

	return p.buildIntegral(integrand, lower, upper, depth)
}

// buildIntegral peels depth trailing "d<var>" markers off integrand,
// innermost first, and wraps them into nested INTEGRAL nodes with lower/
// upper attached only to the outermost (the one spanning the whole
// multi-integral region).
func (p *Parser) buildIntegral(integrand, lower, upper *ast.Node, depth int) *ast.Node {
	remaining := integrand
	vars := make([]*ast.Node, 0, depth)
	for i := 0; i < depth; i++ {
		if !hasDX(remaining) {
			p.fail(diag.MissingIntegrationVariable)
		}
		rest, v := stripDX(remaining)
		remaining = rest
		vars = append(vars, v)
	}

	node := remaining
	for i, v := range vars {
		lo, hi := ast.None(), ast.None()
		if i == len(vars)-1 {
			lo, hi = orNone(lower), orNone(upper)
		}
		node = ast.Nary(ast.OpIntegral, lo, hi, node, v)
	}
	return node
}

func orNone(n *ast.Node) *ast.Node {
	if n == nil {
		return ast.None()
	}
	return n
}

// bigOpExpr parses \sum/\prod and the big-operator spelling of \cup/\cap
// (\bigcup/\bigcap, which share the CUP/CAP token kind with their infix
// spelling — the two are distinguished purely by grammatical position,
// since this method is only reached from a fresh primaryExpr), each with
// an optional "_lower^upper" bound pair (spec §4.5).
func (p *Parser) bigOpExpr() *ast.Node {
	kind := p.tok
	p.next()

	var lower, upper *ast.Node
	if p.tok == lexer.UNDERSCRE {
		lower = p.scopedArgument()
	}
	if p.tok == lexer.CARET {
		upper = p.scopedArgument()
	}

	body := p.additiveExpr()

	op := ast.OpSum
	switch kind {
	case lexer.PROD:
		op = ast.OpProd
	case lexer.CUP:
		op = ast.OpCup
	case lexer.CAP:
		op = ast.OpCap
	}
	return ast.Nary(op, orNone(lower), orNone(upper), body)
}

// limExpr parses \lim, with an optional "_{x \to a}" approach clause
// (spec §4.5).
func (p *Parser) limExpr() *ast.Node {
	p.next()
	var approach *ast.Node
	if p.tok == lexer.UNDERSCRE {
		approach = p.scopedArgument()
	}
	body := p.additiveExpr()
	return ast.Nary(ast.OpLim, orNone(approach), body)
}

// dotDigitExpr parses the dot-accent spelling of a repeating decimal,
// "\dot{d}234\dot{5}", folding the dotted first/last digit and any plain
// digits between them into a single OVERLINE-wrapped numeral, the same
// shape the overline spelling of a repeating decimal produces (spec
// §4.5).
func (p *Parser) dotDigitExpr() *ast.Node {
	p.next()
	first := p.braceGroup()

	var middle strings.Builder
	for p.tok == lexer.NUM {
		middle.WriteString(p.lexeme)
		p.next()
	}

	var last *ast.Node
	if p.tok == lexer.DOTACCENT {
		p.next()
		last = p.braceGroup()
	}

	var sb strings.Builder
	sb.WriteString(leafDigits(first))
	sb.WriteString(middle.String())
	if last != nil {
		sb.WriteString(leafDigits(last))
	}
	return ast.Unary(ast.OpOverline, ast.Num(sb.String(), ast.FormatInteger))
}

func leafDigits(n *ast.Node) string {
	if n.Op == ast.OpNum {
		return n.Payload
	}
	return ""
}

// oversetExpr parses \overset{annotation}{base} and its \underset mirror
// (spec §4.5), both spelled annotation-brace-first in LaTeX but stored
// (base, annotation) per ast.OpOverset's documented child order.
func (p *Parser) oversetExpr(op ast.Op) *ast.Node {
	p.next()
	annotation := p.braceGroup()
	base := p.braceGroup()
	return ast.Binary(op, base, annotation)
}

// deltaExpr parses "\Delta" optionally followed directly by a variable,
// folding the pair into a single VAR "Delta_<name>" leaf (spec §4.5).
func (p *Parser) deltaExpr() *ast.Node {
	p.next()
	if p.tok == lexer.VAR {
		name := p.lexeme
		p.next()
		return ast.Var("Delta_" + name)
	}
	return ast.Var("Delta")
}
