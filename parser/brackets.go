/*
File    : parselatex/parser/brackets.go

Bracket-expression parsing (spec §4.4): braceExpr handles both the bare
"{ ... }" spelling and the "\left\{ ... \right\}" / "\left\{ ... \right."
spellings; parenExpr and bracketExpr share the four-way interval
classification (open/closed/half-open; a bare "(" or "[" group closes on
either ")" or "]"). French notation is recognized only as a "[" closer
reached via "\right" (e.g. "\left( a,b \right["); a bare "]" opener or
bare "[" closer is not parsed as an interval delimiter. absExpr tracks nesting via pipeTokenCount so a nested "|x|" inside an
outer "|y|" doesn't close the outer one prematurely; angleExpr and
evalAtExpr round out the remaining bracketed primaries.

Every pair here shares the viaLeft/atClose/closeDelimiter pattern: a
bracket reached directly (bare "(" / "[" / "|" / "\{") closes on its own
matching token, while one reached via "\left" closes on "\right" followed
by whatever delimiter token follows it — spec §4.4's "any right delimiter
after \right is accepted", which is what lets "\left. ... \right|" spell
an evaluated-at expression with an invisible left delimiter.
*/
package parser

import (
	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/lexer"
)

// atClose reports whether the current token is the closing half of a
// bracket pair reached either directly (plainClose) or via "\left"
// (always closed by "\right").
func (p *Parser) atClose(viaLeft bool, plainClose lexer.Kind) bool {
	if viaLeft {
		return p.tok == lexer.RIGHT
	}
	return p.tok == plainClose
}

// closeDelimiter consumes the closing half of a bracket pair, returning
// its lexeme (the literal delimiter character/word, used to classify
// interval shape and to tag LBrk/RBrk).
func (p *Parser) closeDelimiter(viaLeft bool, plainClose lexer.Kind) string {
	if !viaLeft {
		return p.expect(plainClose)
	}
	p.expect(lexer.RIGHT)
	rbrk := p.lexeme
	p.next()
	return rbrk
}

// closeIntervalDelimiter is closeDelimiter for parenExpr/bracketExpr: a
// bare "(" or "[" group closes on either ")" or "]", so mixed pairs such
// as "[a,b)" reach classifyBracketPair as half-open intervals.
func (p *Parser) closeIntervalDelimiter(viaLeft bool, plainClose lexer.Kind) string {
	if !viaLeft && (p.tok == lexer.RPAREN || p.tok == lexer.RBRACKET) {
		rbrk := p.lexeme
		p.next()
		return rbrk
	}
	return p.closeDelimiter(viaLeft, plainClose)
}

// braceGroup parses a bare "{ ... }" group, used for \frac's arguments,
// "_{...}"/"^{...}" scopes, and \overline/\vec/\mathbf's argument. Empty
// braces yield a COMMA-of-zero-args (spec §4.4).
func (p *Parser) braceGroup() *ast.Node {
	p.expect(lexer.LBRACE)
	if p.tok == lexer.RBRACE {
		p.next()
		return ast.Nary(ast.OpComma)
	}
	inner := p.commaExpr(false)
	p.expect(lexer.RBRACE)
	return inner
}

// braceGroupOrSingle reads a braced group when one is present, else falls
// back to a single unaryExpr — \vec x and \vec{x} are both legal LaTeX.
func (p *Parser) braceGroupOrSingle() *ast.Node {
	if p.tok == lexer.LBRACE {
		return p.braceGroup()
	}
	return p.unaryExpr()
}

// skipBraceGroupRaw consumes a balanced "{ ... }" group without
// interpreting its contents, for \begin{array}{ccc}'s column-spec
// argument, which is typeset layout rather than math content.
func (p *Parser) skipBraceGroupRaw() {
	p.expect(lexer.LBRACE)
	depth := 1
	for depth > 0 {
		if p.tok == lexer.EOS {
			p.fail(diag.MissingCommandArgument, "{")
		}
		switch p.tok {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		}
		p.next()
	}
}

// braceExpr parses a "\{ ... \}" (escaped brace, i.e. set-builder)
// expression, reached either bare or via "\left" (spec §4.4). Its result
// carries LBrk/RBrk so additiveExpr's wrapAsSetIfBraced can recognize it.
func (p *Parser) braceExpr(viaLeft bool) *ast.Node {
	p.expect(lexer.LEFTBRACESET)
	var inner *ast.Node
	if p.atClose(viaLeft, lexer.RIGHTBRACESET) {
		inner = ast.Nary(ast.OpComma)
	} else {
		inner = p.commaExpr(false)
	}
	rbrk := p.closeDelimiter(viaLeft, lexer.RIGHTBRACESET)
	result := inner.Clone()
	result.LBrk, result.RBrk = `\{`, rbrk
	return result
}

// parenExpr parses "( ... )", classifying it as PAREN or one of the four
// interval shapes when its content is exactly a two-element COMMA (spec
// §4.4).
func (p *Parser) parenExpr(viaLeft bool) *ast.Node {
	p.expect(lexer.LPAREN)
	var inner *ast.Node
	if p.atClose(viaLeft, lexer.RPAREN) {
		inner = ast.Nary(ast.OpComma)
	} else {
		inner = p.commaExpr(false)
	}
	rbrk := p.closeIntervalDelimiter(viaLeft, lexer.RPAREN)
	return classifyBracketPair(inner, "(", rbrk)
}

// bracketExpr parses "[ ... ]", the bracket counterpart of parenExpr.
func (p *Parser) bracketExpr(viaLeft bool) *ast.Node {
	p.expect(lexer.LBRACKET)
	var inner *ast.Node
	if p.atClose(viaLeft, lexer.RBRACKET) {
		inner = ast.Nary(ast.OpComma)
	} else {
		inner = p.commaExpr(false)
	}
	rbrk := p.closeIntervalDelimiter(viaLeft, lexer.RBRACKET)
	return classifyBracketPair(inner, "[", rbrk)
}

// classifyBracketPair normalizes French interval notation ("]a,b[" spells
// an open interval with its brackets reversed; callers only pass "(" or
// "[" as lbrk, so in practice only a "[" closer is rewritten) and, when
// the content is a
// two-element COMMA, classifies the pair as one of the four interval
// shapes; otherwise it's a plain grouping, PAREN for "(" and BRACKET for
// "[" (spec §4.4 "bracket expressions").
func classifyBracketPair(inner *ast.Node, lbrk, rbrk string) *ast.Node {
	if lbrk == "]" {
		lbrk = "("
	}
	if rbrk == "[" {
		rbrk = ")"
	}
	openParen := lbrk == "("
	closeParen := rbrk == ")"
	isPair := inner.Op == ast.OpComma && len(inner.Children) == 2

	var op ast.Op
	switch {
	case isPair && openParen && closeParen:
		op = ast.OpIntervalOO
	case isPair && !openParen && !closeParen:
		op = ast.OpIntervalCC
	case isPair && openParen && !closeParen:
		op = ast.OpIntervalCO
	case isPair && !openParen && closeParen:
		op = ast.OpIntervalOC
	case openParen:
		op = ast.OpParen
	default:
		op = ast.OpBracket
	}
	result := ast.Unary(op, inner)
	result.LBrk, result.RBrk = lbrk, rbrk
	return result
}

// absExpr parses "|x|", tracking pipeTokenCount so a nested absolute
// value inside another one (or inside an already-open outer PIPE from an
// enclosing absExpr) doesn't mistake the inner closing "|" for its own.
func (p *Parser) absExpr(viaLeft bool) *ast.Node {
	p.expect(lexer.PIPE)
	p.pipeTokenCount++
	inner := p.commaExpr(false)
	p.pipeTokenCount--
	p.closeDelimiter(viaLeft, lexer.PIPE)
	result := ast.Unary(ast.OpAbs, inner)
	result.LBrk, result.RBrk = "|", "|"
	return result
}

// angleExpr parses "\langle a, b, ... \rangle".
func (p *Parser) angleExpr() *ast.Node {
	p.expect(lexer.LANGLE)
	var inner *ast.Node
	if p.tok == lexer.RANGLE {
		inner = ast.Nary(ast.OpComma)
	} else {
		inner = p.commaExpr(false)
	}
	p.expect(lexer.RANGLE)
	result := ast.Unary(ast.OpAngle, inner)
	result.LBrk, result.RBrk = `\langle`, `\rangle`
	return result
}

// evalAtExpr parses "\left. expr \right|_{sub}", an expression evaluated
// at a point, reached after leftRightExpr has already consumed "\left."
// (spec §4.4 "EVALAT").
func (p *Parser) evalAtExpr() *ast.Node {
	inner := p.commaExpr(false)
	p.expect(lexer.RIGHT)
	p.expect(lexer.PIPE)
	result := ast.Unary(ast.OpEvalAt, inner)
	result.LBrk, result.RBrk = ".", "|"
	if p.tok == lexer.UNDERSCRE {
		sub := p.scopedArgument()
		return ast.Binary(ast.OpSub2, result, sub)
	}
	return result
}

// leftRightExpr dispatches on the delimiter following "\left" to the
// matching bracket parser, or to evalAtExpr for the invisible "\left."
// opener.
func (p *Parser) leftRightExpr() *ast.Node {
	p.expect(lexer.LEFT)
	switch p.tok {
	case lexer.LEFTBRACESET:
		return p.braceExpr(true)
	case lexer.LPAREN:
		return p.parenExpr(true)
	case lexer.LBRACKET:
		return p.bracketExpr(true)
	case lexer.PIPE:
		return p.absExpr(true)
	case lexer.DOT:
		p.next()
		return p.evalAtExpr()
	default:
		p.fail(diag.InvalidGroupingBracket, p.describeTok())
		return nil
	}
}

// matrixExpr parses "\begin{matrix} row \\ row \\ ... \end{matrix}" (and
// the "array" environment's extra column-spec argument), building a
// MATRIX node of ROW nodes of COL-wrapped cells (spec §4.4 "matrixExpr").
func (p *Parser) matrixExpr() *ast.Node {
	envName := p.expect(lexer.BEGIN)
	if envName == "array" && p.tok == lexer.LBRACE {
		p.skipBraceGroupRaw()
	}
	rows := []*ast.Node{p.rowExpr()}
	for p.tok == lexer.NEWROW {
		p.next()
		if p.tok == lexer.END {
			break
		}
		rows = append(rows, p.rowExpr())
	}
	p.expect(lexer.END)
	return ast.Nary(ast.OpMatrix, rows...)
}

// rowExpr parses one matrix row: impliesExpr cells separated by "&".
func (p *Parser) rowExpr() *ast.Node {
	cells := []*ast.Node{p.impliesExpr()}
	for p.tok == lexer.AMP {
		p.next()
		cells = append(cells, p.impliesExpr())
	}
	cols := make([]*ast.Node, len(cells))
	for i, c := range cells {
		cols[i] = ast.Unary(ast.OpCol, c)
	}
	return ast.Nary(ast.OpRow, cols...)
}
