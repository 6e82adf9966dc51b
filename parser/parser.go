/*
File    : parselatex/parser/parser.go

Package parser implements the recursive-descent operator-precedence
ladder of spec §4.2: commaExpr -> impliesExpr -> equalExpr ->
relationalExpr -> ratioExpr -> additiveExpr -> multiplicativeExpr ->
fractionExpr -> subscriptExpr -> unaryExpr -> postfixExpr ->
exponentialExpr -> primaryExpr. Each level is a method on Parser taking no
arguments but the token stream (and occasional disambiguation flags,
passed as ordinary parameters rather than mutable parser fields where the
spec calls one out, e.g. multiplicativeExpr(implicitOnly)).

Grounded on the teacher's parser/parser.go (a single-token-lookahead
recursive-descent parser, hd()/next() cursor, parser_precedence.go's
precedence-climbing style) generalized from the teacher's statement/
expression grammar to this one's pure-expression grammar, and from the
teacher's Parser.Errors-accumulating style to the single-shot
panic/recover boundary described in diag's package doc comment.
*/
package parser

import (
	"fmt"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/environment"
	"github.com/artcompiler/parselatex/lexer"
)

// Parser holds the mutable state of a single parse: the scanner cursor,
// the current lookahead token, and the handful of scoped counters the
// ladder consults (bracket/pipe nesting, integral context).
type Parser struct {
	opts    Options
	scanner *lexer.Scanner
	env     *environment.Environment

	tok    lexer.Kind
	lexeme string
	offset int

	bracketTokenCount int
	pipeTokenCount    int
	notPending        bool
}

// Parse constructs a fresh Parser over src and parses exactly one
// top-level expression, per spec §5 ("each call to parse(...) constructs
// a fresh parser instance"). It never returns a partial tree: any
// diagnostic raised during parsing aborts via panic/recover and comes
// back as err (spec §7).
func Parse(opts Options, src string, env *environment.Environment) (node *ast.Node, err error) {
	if ve := opts.validate(); ve != nil {
		switch ve.code {
		case codeMultipleDecimalSeparators:
			return nil, diag.New(diag.MultipleDecimalSeparators, ve.arg).At(src, 0)
		case codeSeparatorConflict:
			return nil, diag.New(diag.SeparatorConflict, ve.arg, opts.SetDecimalSeparator).At(src, 0)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diag.Error); ok {
				err = de
				return
			}
			panic(r)
		}
	}()

	p := newParser(opts, src, env)
	node = p.expr()
	return node, nil
}

func newParser(opts Options, src string, env *environment.Environment) *Parser {
	p := &Parser{opts: opts, scanner: lexer.NewScanner(src, env), env: env}
	p.next()
	return p
}

// expr is the grammar's start symbol: a full comma expression, or the
// canonical NONE node for empty input (spec §7).
func (p *Parser) expr() *ast.Node {
	if p.tok == lexer.EOS {
		return ast.None()
	}
	node := p.commaExpr(true)
	if p.tok != lexer.EOS {
		p.fail(diag.ExtraInput, p.lexeme)
	}
	return node
}

// hd reports the current lookahead token kind.
func (p *Parser) hd() lexer.Kind { return p.tok }

// next advances the lookahead by one token, under the parser's ambient
// scan options.
func (p *Parser) next() {
	p.tok = p.scanner.Start(p.opts.toScanOptions())
	p.lexeme = p.scanner.Lexeme()
	p.offset = p.scanner.Offset()
}

// nextOneChar advances the lookahead restricted to a single lexical unit
// (spec §4.1 "oneCharToken"), used right after consuming ^ or _.
func (p *Parser) nextOneChar() {
	so := p.opts.toScanOptions()
	so.OneCharToken = true
	p.tok = p.scanner.Start(so)
	p.lexeme = p.scanner.Lexeme()
	p.offset = p.scanner.Offset()
}

// withIntegralContext runs fn with parsingIntegralExpr set, restoring the
// prior value on every exit path including panic (spec §5 "every exit
// path from integralExpr must restore the prior value").
func (p *Parser) withIntegralContext(fn func()) {
	prev := p.opts.ParsingIntegralExpr
	p.opts.ParsingIntegralExpr = true
	defer func() { p.opts.ParsingIntegralExpr = prev }()
	fn()
}

// expect consumes the current token if it matches want, else raises
// SyntaxExpectedFound.
func (p *Parser) expect(want lexer.Kind) string {
	if p.tok != want {
		p.fail(diag.SyntaxExpectedFound, want, p.describeTok())
	}
	lexeme := p.lexeme
	p.next()
	return lexeme
}

func (p *Parser) describeTok() string {
	if p.tok == lexer.EOS {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", p.tok, p.lexeme)
}

func (p *Parser) fail(code diag.Code, args ...any) {
	panic(diag.New(code, args...).At(p.scanner.Source(), p.offset))
}

// atListBreak reports whether the current token ends an implicit list
// (comma/semicolon sequence, row, matrix) rather than introducing another
// element.
func (p *Parser) atListBreak() bool {
	switch p.tok {
	case lexer.EOS, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE,
		lexer.GT, lexer.RANGLE, lexer.NEWROW, lexer.AMP,
		lexer.RIGHT, lexer.RIGHTBRACESET, lexer.END:
		return true
	case lexer.PIPE:
		return p.pipeTokenCount > 0
	default:
		return false
	}
}

// commaExpr is the lowest-precedence level: a left-to-right sequence of
// impliesExpr separated by "," (and ";" when allowSemicolon), stopping at
// any list-break token (spec §4.2 level 1).
func (p *Parser) commaExpr(allowSemicolon bool) *ast.Node {
	first := p.impliesExpr()
	if p.tok != lexer.COMMA && !(allowSemicolon && p.tok == lexer.SEMICOLON) {
		return first
	}

	items := []*ast.Node{first}
	for p.tok == lexer.COMMA || (allowSemicolon && p.tok == lexer.SEMICOLON) {
		p.next()
		if p.atListBreak() {
			break
		}
		items = append(items, p.impliesExpr())
	}
	return ast.Nary(ast.OpComma, items...)
}

// impliesExpr chains equalExpr with \implies/\Rightarrow, left-associative
// (spec §4.2 level 2).
func (p *Parser) impliesExpr() *ast.Node {
	left := p.equalExpr()
	for p.tok == lexer.IMPLIES {
		p.next()
		right := p.equalExpr()
		left = ast.Binary(ast.OpImplies, left, right)
	}
	return left
}

var equalOps = map[lexer.Kind]ast.Op{
	lexer.EQ:         ast.OpEql,
	lexer.NE:         ast.OpNe,
	lexer.APPROX:     ast.OpApprox,
	lexer.RIGHTARROW: ast.OpRightArr,
}

// equalExpr chains "=", "\ne", "\approx", "\rightarrow"; a chain of
// length > 1 reifies as a COMMA of binary pairs sharing (deep-copied)
// middle operands, never flattened itself (spec §4.2 level 3, §9 "chained
// relation re-use of the middle operand").
func (p *Parser) equalExpr() *ast.Node {
	return p.chainExpr(p.relationalExpr, equalOps)
}

var relationalOps = map[lexer.Kind]ast.Op{
	lexer.LT:        ast.OpLt,
	lexer.LE:        ast.OpLe,
	lexer.GT:        ast.OpGt,
	lexer.GE:        ast.OpGe,
	lexer.NGTR:      ast.OpNgtr,
	lexer.NLESS:     ast.OpNless,
	lexer.IN:        ast.OpIn,
	lexer.TO:        ast.OpTo,
	lexer.PERP:      ast.OpPerp,
	lexer.PROPTO:    ast.OpPropto,
	lexer.NI:        ast.OpNi,
	lexer.SUBSET:    ast.OpSubset,
	lexer.SUBSETEQ:  ast.OpSubseteq,
	lexer.SUPSET:    ast.OpSupset,
	lexer.SUPSETEQ:  ast.OpSupseteq,
	lexer.PARALLEL:  ast.OpParallel,
	lexer.NPARALLEL: ast.OpNparallel,
	lexer.SIM:       ast.OpSim,
	lexer.CONG:      ast.OpCong,
}

// notRewrite maps an operator to the operator \not-prefixing it should
// produce (spec §4.2 level 4: "a \not prefix sets a flag that rewrites
// the next operator's name to its n-prefixed variant").
var notRewrite = map[ast.Op]ast.Op{
	ast.OpGt:       ast.OpNgtr,
	ast.OpLt:       ast.OpNless,
	ast.OpParallel: ast.OpNparallel,
}

// relationalExpr chains the comparison/set-membership operators, honoring
// a leading \not (spec §4.2 level 4).
func (p *Parser) relationalExpr() *ast.Node {
	return p.chainExprWithNot(p.ratioExpr, relationalOps)
}

// chainExpr implements the equalExpr/relationalExpr reification pattern:
// next() at each level, chained with ops, reified as a COMMA-of-pairs
// when more than one operator is seen.
func (p *Parser) chainExpr(next func() *ast.Node, ops map[lexer.Kind]ast.Op) *ast.Node {
	return p.chainExprImpl(next, ops, false)
}

func (p *Parser) chainExprWithNot(next func() *ast.Node, ops map[lexer.Kind]ast.Op) *ast.Node {
	return p.chainExprImpl(next, ops, true)
}

func (p *Parser) chainExprImpl(next func() *ast.Node, ops map[lexer.Kind]ast.Op, honorNot bool) *ast.Node {
	first := next()

	var chainOps []ast.Op
	var operands []*ast.Node
	operands = append(operands, first)

	for {
		if honorNot && p.tok == lexer.NOT {
			p.next()
			p.notPending = true
			continue
		}
		op, ok := ops[p.tok]
		if !ok {
			break
		}
		if p.notPending {
			if rewritten, ok2 := notRewrite[op]; ok2 {
				op = rewritten
			}
			p.notPending = false
		}
		p.next()
		right := next()
		chainOps = append(chainOps, op)
		operands = append(operands, right)
	}

	if len(chainOps) == 0 {
		return first
	}
	if len(chainOps) == 1 {
		return ast.Binary(chainOps[0], operands[0], operands[1])
	}

	pairs := make([]*ast.Node, len(chainOps))
	for i, op := range chainOps {
		left := operands[i]
		if i > 0 {
			left = left.Clone()
		}
		pairs[i] = ast.Binary(op, left, operands[i+1])
	}
	return ast.Nary(ast.OpComma, pairs...)
}

// ratioExpr chains ":" into a flattened COLON node (spec §4.2 level 5).
func (p *Parser) ratioExpr() *ast.Node {
	node := p.additiveExpr()
	for p.tok == lexer.COLON {
		p.next()
		right := p.additiveExpr()
		node = ast.FlattenBinary(ast.OpColon, node, right, true)
	}
	return node
}

// additiveExpr handles "+", "-", "\pm", set-difference, union, and
// intersection (spec §4.2 level 6). ADD flattens unless CompareGrouping
// is set or either operand is a mixed number.
func (p *Parser) additiveExpr() *ast.Node {
	node := p.multiplicativeExpr(false)
	for {
		switch p.tok {
		case lexer.PLUS:
			p.next()
			right := p.multiplicativeExpr(false)
			flatten := !p.opts.CompareGrouping && !node.IsMixedNumber && !right.IsMixedNumber
			node = ast.FlattenBinary(ast.OpAdd, node, right, flatten)
		case lexer.MINUS:
			p.next()
			right := p.multiplicativeExpr(false)
			neg := ast.Unary(ast.OpSub, right)
			flatten := !p.opts.CompareGrouping && !node.IsMixedNumber
			node = ast.FlattenBinary(ast.OpAdd, node, neg, flatten)
		case lexer.PM:
			p.next()
			right := p.multiplicativeExpr(false)
			node = ast.Binary(ast.OpPM, node, right)
		case lexer.SETMINUS:
			p.next()
			right := p.multiplicativeExpr(false)
			node = ast.Binary(ast.OpSetMinus, wrapAsSetIfBraced(node), wrapAsSetIfBraced(right))
		case lexer.CUP:
			p.next()
			right := p.multiplicativeExpr(false)
			node = ast.FlattenBinary(ast.OpCup, wrapAsSetIfBraced(node), wrapAsSetIfBraced(right), true)
		case lexer.CAP:
			p.next()
			right := p.multiplicativeExpr(false)
			node = ast.FlattenBinary(ast.OpCap, wrapAsSetIfBraced(node), wrapAsSetIfBraced(right), true)
		default:
			return node
		}
	}
}

// wrapAsSetIfBraced wraps n in a SET node when it originated from a \{
// ... \} group, per spec §4.2 level 6: "When a \cup/\cap/\setminus
// operand has \{ ... \} brackets, wrap it as SET first."
func wrapAsSetIfBraced(n *ast.Node) *ast.Node {
	if n.LBrk == `\{` {
		return ast.Unary(ast.OpSet, n)
	}
	return n
}
