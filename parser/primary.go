/*
File    : parselatex/parser/primary.go

primaryExpr is the ladder's base case (spec §4.2 level 13): leaves (NUM,
VAR, TEXT), every bracketed grouping, and the specialized-primary
dispatch table of spec §4.5. Anything primaryExpr doesn't recognize is a
fatal ExpressionExpected (spec §7 "a primary expression was required but
absent").
*/
package parser

import (
	"strings"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/lexer"
)

func (p *Parser) primaryExpr() *ast.Node {
	switch p.tok {
	case lexer.NUM:
		return p.numberLeaf()
	case lexer.VAR:
		lex := p.lexeme
		p.next()
		return ast.Var(lex)
	case lexer.TEXT:
		lex := p.lexeme
		p.next()
		return ast.Text(lex)

	case lexer.LBRACE:
		return p.braceGroup()
	case lexer.LEFTBRACESET:
		return p.braceExpr(false)
	case lexer.LPAREN:
		return p.parenExpr(false)
	case lexer.LBRACKET:
		return p.bracketExpr(false)
	case lexer.PIPE:
		return p.absExpr(false)
	case lexer.LEFT:
		return p.leftRightExpr()
	case lexer.LANGLE:
		return p.angleExpr()
	case lexer.BEGIN:
		return p.matrixExpr()

	case lexer.SIN, lexer.COS, lexer.TAN, lexer.COT, lexer.SEC, lexer.CSC,
		lexer.ARCSIN, lexer.ARCCOS, lexer.ARCTAN, lexer.SINH, lexer.COSH, lexer.TANH:
		return p.trigExpr()
	case lexer.LOG, lexer.LN, lexer.LG:
		return p.logExpr()
	case lexer.INT, lexer.IINT, lexer.IIINT:
		return p.integralExpr()
	case lexer.SUM, lexer.PROD, lexer.CUP, lexer.CAP:
		return p.bigOpExpr()
	case lexer.LIM:
		return p.limExpr()
	case lexer.DOTACCENT:
		return p.dotDigitExpr()
	case lexer.OVERSET:
		return p.oversetExpr(ast.OpOverset)
	case lexer.UNDERSET:
		return p.oversetExpr(ast.OpUnderset)
	case lexer.DELTA:
		return p.deltaExpr()

	case lexer.OVERLINE:
		p.next()
		return ast.Unary(ast.OpOverline, p.braceGroupOrSingle())
	case lexer.VEC:
		p.next()
		return ast.Unary(ast.OpVec, p.braceGroupOrSingle())
	case lexer.MATHBF:
		p.next()
		return ast.Unary(ast.OpMathbf, p.braceGroupOrSingle())
	case lexer.CIRC, lexer.DEGREE:
		p.next()
		return ast.Unary(ast.OpDegree, ast.None())

	default:
		// Already unconditionally fatal regardless of Options.Strict: there
		// is no lenient fallback primary to begin with, so strict mode's
		// "makes unknown primary tokens fatal" clause needs no extra gate
		// here (spec §6, reusing this same code 1006).
		p.fail(diag.ExpressionExpected, p.describeTok())
		return nil
	}
}

// numberLeaf builds a NUM leaf from the scanner's current token, carrying
// over the thousands-separator bookkeeping the scanner tracked while
// reading it (spec §3 "SeparatorCount, LastSeparatorIndex"). Two options
// can still reshape the payload after the scanner hands it over:
// DecimalPlaces rounds it, and Strict (absent a rounding request) swaps
// the canonical, separator-stripped spelling back out for the as-typed
// one (spec §6: "decimalPlaces: numeric literals are rounded to this
// scale"; "strict: preserves original literal text in NUM"). The two
// rarely apply together; when DecimalPlaces is also set, rounding wins,
// since Strict's raw text and a rounded value can't both be the payload.
func (p *Parser) numberLeaf() *ast.Node {
	lex := p.lexeme
	raw := p.scanner.RawLexeme()
	sepCount := p.scanner.SeparatorCount()
	lastSepIdx := p.scanner.LastSeparatorIndex()
	isDecimal := p.scanner.IsDecimal()
	p.next()

	format := ast.FormatInteger
	if isDecimal || strings.Contains(lex, ".") {
		format = ast.FormatDecimal
	}

	payload := lex
	switch {
	case p.opts.DecimalPlaces > 0 && format == ast.FormatDecimal:
		payload = roundDecimalString(payload, p.opts.DecimalPlaces)
	case p.opts.Strict:
		payload = raw
	}

	n := ast.Num(payload, format)
	n.SeparatorCount = sepCount
	n.LastSeparatorIndex = lastSepIdx
	return n
}

// roundDecimalString rounds a canonical "digits.digits" lexeme to places
// fractional digits, half-up, carrying into the integer part when
// needed. lex with fewer fractional digits than places (or none at all)
// is returned unchanged.
func roundDecimalString(lex string, places int) string {
	dot := strings.IndexByte(lex, '.')
	if dot < 0 {
		return lex
	}
	intPart, fracPart := lex[:dot], lex[dot+1:]
	if len(fracPart) <= places {
		return lex
	}
	roundUp := fracPart[places] >= '5'
	fracPart = fracPart[:places]
	if roundUp {
		intPart, fracPart = incrementDecimalDigits(intPart, fracPart)
	}
	if places == 0 {
		return intPart
	}
	return intPart + "." + fracPart
}

// incrementDecimalDigits adds 1 to the combined intPart+fracPart digit
// string, propagating carry from the last fractional digit up through
// the integer part (and growing it by a leading "1" on overflow).
func incrementDecimalDigits(intPart, fracPart string) (string, string) {
	digits := []byte(intPart + fracPart)
	carry := byte(1)
	for i := len(digits) - 1; i >= 0 && carry > 0; i-- {
		d := digits[i] - '0' + carry
		digits[i] = d%10 + '0'
		carry = d / 10
	}
	if carry > 0 {
		digits = append([]byte{'1'}, digits...)
	}
	split := len(digits) - len(fracPart)
	return string(digits[:split]), string(digits[split:])
}
