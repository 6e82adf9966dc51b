/*
File    : parselatex/parser/ladder.go

The remainder of the precedence ladder below fractionExpr (spec §4.2
levels 9-12): subscriptExpr folds "_" chains (and an already-consumed "^"
exponent) into the canonical SUBSCRIPT/POW shape; unaryExpr handles
prefix +, -, \not, \pm and the bare "_"/"^" introducer form; postfixExpr
handles trailing %/!; exponentialExpr folds right-associative "^" chains
and the \circ degree-unit spelling. scopedArgument is the shared
one-token-or-braced-group reader every "_"/"^" consumer uses (spec §4.1
"oneCharToken").
*/
package parser

import (
	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/lexer"
)

// subscriptExpr folds a trailing "_" onto the already-parsed unaryExpr
// result. When that result is itself a POW (because "^" was consumed one
// level down, inside exponentialExpr, before control returned here), the
// subscript attaches to the POW's base and the exponent is reapplied on
// the outside, so "x^2_1" and "x_1^2" produce the same tree (spec §4.2
// level 9).
func (p *Parser) subscriptExpr() *ast.Node {
	node := p.unaryExpr()
	if p.tok != lexer.UNDERSCRE {
		return node
	}
	sub := p.scopedArgument()
	if node.Op == ast.OpPow && len(node.Children) == 2 {
		base, exp := node.Children[0], node.Children[1]
		return ast.Binary(ast.OpPow, ast.Binary(ast.OpSub2, base, sub), exp)
	}
	return p.foldExponent(ast.Binary(ast.OpSub2, node, sub))
}

// unaryExpr handles the prefix operators at spec §4.2 level 10: +, -,
// \not, \pm (which re-enters at the multiplicative level, per the
// original's "a leading \pm applies to a full product, not just the next
// factor"), and a bare "_"/"^" with no base (e.g. chemistry's bare ionic
// charge shorthand "_+^-").
func (p *Parser) unaryExpr() *ast.Node {
	switch p.tok {
	case lexer.MINUS:
		p.next()
		return ast.Unary(ast.OpSub, p.unaryExpr())
	case lexer.PLUS:
		p.next()
		return ast.Unary(ast.OpUAdd, p.unaryExpr())
	case lexer.NOT:
		p.next()
		return ast.Unary(ast.OpNot, p.unaryExpr())
	case lexer.PM:
		p.next()
		return ast.Unary(ast.OpPM, p.multiplicativeExpr(false))
	case lexer.UNDERSCRE, lexer.CARET:
		return p.standaloneScriptExpr()
	default:
		return p.postfixExpr()
	}
}

// standaloneScriptExpr builds a SUBSCRIPT/POW pair with no base, for the
// bare "_x^y" shorthand chemistry notation sometimes uses for an implied
// atom.
func (p *Parser) standaloneScriptExpr() *ast.Node {
	var node *ast.Node = ast.None()
	if p.tok == lexer.UNDERSCRE {
		sub := p.scopedArgument()
		node = ast.Binary(ast.OpSub2, node, sub)
	}
	if p.tok == lexer.CARET {
		pow := p.scopedArgument()
		node = ast.Binary(ast.OpPow, node, pow)
	}
	return node
}

// postfixExpr handles trailing "%" and "!" (spec §4.2 level 11).
func (p *Parser) postfixExpr() *ast.Node {
	node := p.exponentialExpr()
	for {
		switch p.tok {
		case lexer.PERCENT:
			p.next()
			node = ast.Unary(ast.OpPercent, node)
		case lexer.BANG:
			p.next()
			node = ast.Unary(ast.OpFact, node)
		default:
			return node
		}
	}
}

// exponentialExpr folds a right-associative "^" chain onto primaryExpr
// (spec §4.2 level 12): "a^b^c" parses as POW(a, POW(b, c)), not
// POW(POW(a,b), c). A "^\circ" exponent is the degree-unit spelling rather
// than real exponentiation: it rewrites the whole node to DEGREE,
// optionally absorbing a following K/C/F unit letter.
func (p *Parser) exponentialExpr() *ast.Node {
	return p.foldExponent(p.primaryExpr())
}

// foldExponent consumes a "^" and its argument onto node, recursing on the
// exponent itself (rather than looping and left-folding) so any further
// "^" chain attached to the exponent binds there first, giving the whole
// chain right-associativity.
func (p *Parser) foldExponent(node *ast.Node) *ast.Node {
	if p.tok != lexer.CARET {
		return node
	}
	exp := p.scopedArgument()
	if exp.Op == ast.OpDegree {
		if p.tok == lexer.TEXT && (p.lexeme == "K" || p.lexeme == "C" || p.lexeme == "F") {
			exp.Payload = p.lexeme
			p.next()
		}
		result := ast.Unary(ast.OpDegree, node)
		result.Payload = exp.Payload
		return p.foldExponent(result)
	}
	return ast.Binary(ast.OpPow, node, p.foldExponent(exp))
}

// scopedArgument consumes the "_" or "^" token at p.tok and reads its
// one-lexical-unit (or braced-group) argument, per spec §4.1
// "oneCharToken restricts the next scan ... used after ^ and _". A
// leading sign is honored as a unary wrapper around a further restricted
// unit, falling back to a bare sign leaf for chemistry's ionic-charge
// shorthand ("Na^+") when nothing numeric follows.
func (p *Parser) scopedArgument() *ast.Node {
	p.nextOneChar()
	switch p.tok {
	case lexer.LBRACE:
		return p.braceGroup()
	case lexer.MINUS, lexer.PLUS:
		sign := p.tok
		p.nextOneChar()
		if p.tok == lexer.NUM || p.tok == lexer.VAR {
			inner := p.primaryLeaf()
			if sign == lexer.MINUS {
				return ast.Unary(ast.OpSub, inner)
			}
			return ast.Unary(ast.OpUAdd, inner)
		}
		if sign == lexer.MINUS {
			return ast.Var("-")
		}
		return ast.Var("+")
	default:
		return p.primaryLeaf()
	}
}

// primaryLeaf consumes the current token as a bare NUM/VAR leaf without
// engaging the full bracket-dispatching machinery of primaryExpr, since a
// restricted one-char scan never produces a bracket token anyway except
// the LBRACE case scopedArgument already special-cases.
func (p *Parser) primaryLeaf() *ast.Node {
	switch p.tok {
	case lexer.NUM:
		lex := p.lexeme
		format := ast.FormatInteger
		for _, r := range lex {
			if r == '.' {
				format = ast.FormatDecimal
				break
			}
		}
		p.next()
		return ast.Num(lex, format)
	case lexer.VAR:
		lex := p.lexeme
		p.next()
		return ast.Var(lex)
	default:
		return p.primaryExpr()
	}
}
