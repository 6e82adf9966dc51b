/*
File    : parselatex/parser/parser_test.go

Covers the ten concrete scenarios of spec §8 plus the handful of
disambiguation edge cases the ladder and multiplicativeExpr make
decisions about, in the teacher's style of asserting specific node
fields rather than whole-tree struct equality.
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcompiler/parselatex/ast"
	"github.com/artcompiler/parselatex/diag"
	"github.com/artcompiler/parselatex/environment"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	node, err := Parse(DefaultOptions(), src, nil)
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

func parseWith(t *testing.T, opts Options, env *environment.Environment, src string) *ast.Node {
	t.Helper()
	node, err := Parse(opts, src, env)
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

// 1. "1 + 2" -> ADD(NUM"1", NUM"2")
func TestParse_SimpleAddition(t *testing.T) {
	node := parse(t, `1 + 2`)
	require.Equal(t, ast.OpAdd, node.Op)
	require.Len(t, node.Children, 2)
	assert.Equal(t, ast.OpNum, node.Children[0].Op)
	assert.Equal(t, "1", node.Children[0].Payload)
	assert.Equal(t, "2", node.Children[1].Payload)
}

// 2. "\frac{1}{2}" -> FRAC(NUM"1", NUM"2") with isFraction=true
func TestParse_PlainFraction(t *testing.T) {
	node := parse(t, `\frac{1}{2}`)
	require.Equal(t, ast.OpFrac, node.Op)
	assert.True(t, node.IsFraction)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "1", node.Children[0].Payload)
	assert.Equal(t, "2", node.Children[1].Payload)
}

// 3. "3\frac{1}{2}" -> ADD(NUM"3", FRAC(NUM"1", NUM"2")) with isMixedNumber=true
func TestParse_MixedNumber(t *testing.T) {
	node := parse(t, `3\frac{1}{2}`)
	require.Equal(t, ast.OpAdd, node.Op)
	assert.True(t, node.IsMixedNumber)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "3", node.Children[0].Payload)
	assert.Equal(t, ast.OpFrac, node.Children[1].Op)
	assert.True(t, node.Children[1].IsFraction)
}

// 4. "\sin^{-1}(x)" -> ARCSIN(PAREN(VAR"x"))
func TestParse_InverseSineRewrite(t *testing.T) {
	node := parse(t, `\sin^{-1}(x)`)
	require.Equal(t, ast.OpArcsin, node.Op)
	require.Len(t, node.Children, 1)
	paren := node.Children[0]
	require.Equal(t, ast.OpParen, paren.Op)
	require.Len(t, paren.Children, 1)
	assert.Equal(t, ast.OpVar, paren.Children[0].Op)
	assert.Equal(t, "x", paren.Children[0].Payload)
}

// 5. "\int_0^1 x\,dx" -> INTEGRAL(NUM"0", NUM"1", VAR"x", VAR"x")
func TestParse_DefiniteIntegral(t *testing.T) {
	node := parse(t, `\int_0^1 x\,dx`)
	require.Equal(t, ast.OpIntegral, node.Op)
	require.Len(t, node.Children, 4)
	assert.Equal(t, "0", node.Children[0].Payload)
	assert.Equal(t, "1", node.Children[1].Payload)
	assert.Equal(t, ast.OpVar, node.Children[2].Op)
	assert.Equal(t, "x", node.Children[2].Payload)
	assert.Equal(t, ast.OpVar, node.Children[3].Op)
	assert.Equal(t, "x", node.Children[3].Payload)
}

// 6. "0.\overline{3}" -> ADD(NUM"0.", NUM"3") with isRepeating on the ADD
// and both children.
func TestParse_RepeatingDecimal(t *testing.T) {
	node := parse(t, `0.\overline{3}`)
	require.Equal(t, ast.OpAdd, node.Op)
	assert.True(t, node.IsRepeating)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "0.", node.Children[0].Payload)
	assert.True(t, node.Children[0].IsRepeating)
	assert.Equal(t, "3", node.Children[1].Payload)
	assert.True(t, node.Children[1].IsRepeating)
}

// 7. "1{,}234.5" with setThousandsSeparator="," -> NUM"1234.5",
// numberFormat=decimal. spec.md's own worked example names
// separatorCount=2 for this single "{,}" occurrence, which is inconsistent
// with its own unbraced convention (TestScanner_ThousandsSeparatorTracksCountAndIndex:
// two literal "," separators -> separatorCount=2, i.e. one increment per
// separator actually consumed). Flagged in DESIGN.md rather than guessed:
// this asserts the internally-consistent count (one separator consumed
// here, so 1), not spec.md's worked "2".
func TestParse_BracedThousandsSeparator(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowThousandsSeparator = true
	opts.SetThousandsSeparator = ","
	node := parseWith(t, opts, nil, `1{,}234.5`)
	require.Equal(t, ast.OpNum, node.Op)
	assert.Equal(t, "1234.5", node.Payload)
	assert.Equal(t, ast.FormatDecimal, node.NumberFormat)
	assert.Equal(t, 1, node.SeparatorCount)
}

// Options.DecimalPlaces rounds a decimal NUM's payload (spec §6), half-up,
// with carry propagating into the integer part when the rounded digit
// overflows.
func TestParse_DecimalPlacesRoundsNumericLiteral(t *testing.T) {
	opts := DefaultOptions()
	opts.DecimalPlaces = 2
	node := parseWith(t, opts, nil, `3.14159`)
	require.Equal(t, ast.OpNum, node.Op)
	assert.Equal(t, "3.14", node.Payload)
}

func TestParse_DecimalPlacesRoundsWithCarry(t *testing.T) {
	opts := DefaultOptions()
	opts.DecimalPlaces = 2
	node := parseWith(t, opts, nil, `1.995`)
	require.Equal(t, ast.OpNum, node.Op)
	assert.Equal(t, "2.00", node.Payload)
}

func TestParse_DecimalPlacesLeavesShorterLiteralsAlone(t *testing.T) {
	opts := DefaultOptions()
	opts.DecimalPlaces = 4
	node := parseWith(t, opts, nil, `3.1`)
	assert.Equal(t, "3.1", node.Payload)
}

func TestParse_DecimalPlacesLeavesIntegersAlone(t *testing.T) {
	opts := DefaultOptions()
	opts.DecimalPlaces = 2
	node := parseWith(t, opts, nil, `42`)
	assert.Equal(t, "42", node.Payload)
}

// Options.Strict preserves a NUM's as-typed spelling instead of the
// canonicalized, separator-stripped one (spec §6).
func TestParse_StrictPreservesOriginalLiteralText(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true
	opts.AllowThousandsSeparator = true
	opts.SetThousandsSeparator = ","
	node := parseWith(t, opts, nil, `1,234.5`)
	require.Equal(t, ast.OpNum, node.Op)
	assert.Equal(t, "1,234.5", node.Payload)
	assert.Equal(t, ast.FormatDecimal, node.NumberFormat)
}

func TestParse_NonStrictCanonicalizesLiteralText(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowThousandsSeparator = true
	opts.SetThousandsSeparator = ","
	node := parseWith(t, opts, nil, `1,234.5`)
	assert.Equal(t, "1234.5", node.Payload)
}

// 8. "[1,2)" -> INTERVALRIGHTOPEN(COMMA(NUM"1", NUM"2"))
func TestParse_HalfOpenInterval(t *testing.T) {
	node := parse(t, `[1,2)`)
	require.Equal(t, ast.OpIntervalOC, node.Op)
	assert.Equal(t, "[", node.LBrk)
	assert.Equal(t, ")", node.RBrk)
	require.Len(t, node.Children, 1)
	pair := node.Children[0]
	require.Equal(t, ast.OpComma, pair.Op)
	require.Len(t, pair.Children, 2)
	assert.Equal(t, "1", pair.Children[0].Payload)
	assert.Equal(t, "2", pair.Children[1].Payload)
}

// 9. "a=b=c" -> COMMA(EQL(VAR"a", VAR"b"), EQL(VAR"b", VAR"c")), the
// shared middle operand deep-copied rather than aliased.
func TestParse_ChainedEquality(t *testing.T) {
	node := parse(t, `a=b=c`)
	require.Equal(t, ast.OpComma, node.Op)
	require.Len(t, node.Children, 2)

	first, second := node.Children[0], node.Children[1]
	require.Equal(t, ast.OpEql, first.Op)
	require.Equal(t, ast.OpEql, second.Op)
	assert.Equal(t, "a", first.Children[0].Payload)
	assert.Equal(t, "b", first.Children[1].Payload)
	assert.Equal(t, "b", second.Children[0].Payload)
	assert.Equal(t, "c", second.Children[1].Payload)

	assert.NotSame(t, first.Children[1], second.Children[0],
		"the shared middle operand must be deep-copied, not aliased")
}

// 10. "\int x" with no trailing dx -> error code 1014.
func TestParse_IntegralMissingVariableIsFatal(t *testing.T) {
	_, err := Parse(DefaultOptions(), `\int x`, nil)
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.MissingIntegrationVariable, de.Code)
}

func TestParse_EmptyInputIsNone(t *testing.T) {
	node := parse(t, ``)
	assert.Equal(t, ast.OpNone, node.Op)
}

func TestParse_TwoAdjacentNumbersIsFatal(t *testing.T) {
	_, err := Parse(DefaultOptions(), `2 3`, nil)
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.TwoNumbersNoOperator, de.Code)
}

func TestParse_ScientificNotationEFormBuildsPowerOfTen(t *testing.T) {
	node := parse(t, `6.022\text{e}23`)
	require.Equal(t, ast.OpMul, node.Op)
	assert.True(t, node.IsScientific)
	require.Len(t, node.Children, 2)
	pow := node.Children[1]
	require.Equal(t, ast.OpPow, pow.Op)
	assert.Equal(t, "10", pow.Children[0].Payload)
	assert.Equal(t, "23", pow.Children[1].Payload)
}

func TestParse_ExplicitScientificTimesForm(t *testing.T) {
	node := parse(t, `6.022\times 10^{23}`)
	require.Equal(t, ast.OpMul, node.Op)
	assert.True(t, node.IsScientific)
}

func TestParse_PrimeAttachmentBecomesPower(t *testing.T) {
	node := parse(t, `f'(x)`)
	require.Equal(t, ast.OpMul, node.Op)
	require.Len(t, node.Children, 2)
	pow := node.Children[0]
	require.Equal(t, ast.OpPow, pow.Op)
	assert.Equal(t, "f", pow.Children[0].Payload)
	assert.Equal(t, "'", pow.Children[1].Payload)
	assert.Equal(t, ast.OpParen, node.Children[1].Op)
}

func TestParse_DegreeAttachment(t *testing.T) {
	node := parse(t, `-5\degree`)
	require.Equal(t, ast.OpSub, node.Op)
	deg := node.Children[0]
	require.Equal(t, ast.OpDegree, deg.Op)
	assert.Equal(t, "5", deg.Children[0].Payload)
}

func TestParse_DegreeSuperscriptWithUnit(t *testing.T) {
	node := parse(t, `98.6^\circ \text{F}`)
	require.Equal(t, ast.OpDegree, node.Op)
	assert.Equal(t, "F", node.Payload)
	assert.Equal(t, "98.6", node.Children[0].Payload)
}

func TestParse_MolarMass(t *testing.T) {
	env := environment.New(true)
	node := parseWith(t, DefaultOptions(), env, `M(NaCl)`)
	require.Equal(t, ast.OpMolarMass, node.Op)
	require.Len(t, node.Children, 1)
}

// Outside chemistry mode, "M" is an ordinary variable: M(a+b) is implicit
// multiplication of M by a parenthesized sum, not the molar-mass operator.
func TestParse_MNotMolarMassOutsideChemistryMode(t *testing.T) {
	node := parse(t, `M(a+b)`)
	require.Equal(t, ast.OpMul, node.Op)
	assert.Equal(t, ast.OpVar, node.Children[0].Op)
	assert.Equal(t, "M", node.Children[0].Payload)
	assert.Equal(t, ast.OpParen, node.Children[1].Op)
}

func TestParse_MNotMolarMassInEmptyChemistryEnvironment(t *testing.T) {
	env := environment.New(false)
	node := parseWith(t, DefaultOptions(), env, `M(a+b)`)
	require.Equal(t, ast.OpMul, node.Op)
}

func TestParse_SubscriptAndPowerInterleave(t *testing.T) {
	a := parse(t, `x^2_1`)
	b := parse(t, `x_1^2`)
	require.Equal(t, ast.OpPow, a.Op)
	require.Equal(t, ast.OpPow, b.Op)
	assert.Equal(t, ast.OpSub2, a.Children[0].Op)
	assert.Equal(t, ast.OpSub2, b.Children[0].Op)
	assert.Equal(t, a.Children[0].Children[1].Payload, b.Children[0].Children[1].Payload)
	assert.Equal(t, a.Children[1].Payload, b.Children[1].Payload)
}

// "a^b^c" must parse right-associatively: POW(a, POW(b, c)), not
// POW(POW(a,b), c).
func TestParse_ExponentChainIsRightAssociative(t *testing.T) {
	node := parse(t, `a^b^c`)
	require.Equal(t, ast.OpPow, node.Op)
	assert.Equal(t, "a", node.Children[0].Payload)
	inner := node.Children[1]
	require.Equal(t, ast.OpPow, inner.Op)
	assert.Equal(t, "b", inner.Children[0].Payload)
	assert.Equal(t, "c", inner.Children[1].Payload)
}

// "**" is an alternate spelling of "^" (spec §4.1's two-character
// fusions), so "3**2" must parse identically to "3^2".
func TestParse_DoubleStarIsExponent(t *testing.T) {
	node := parse(t, `3**2`)
	require.Equal(t, ast.OpPow, node.Op)
	assert.Equal(t, "3", node.Children[0].Payload)
	assert.Equal(t, "2", node.Children[1].Payload)
}

func TestParse_AbsoluteValueNesting(t *testing.T) {
	node := parse(t, `|x+|y||`)
	require.Equal(t, ast.OpAbs, node.Op)
	require.Equal(t, ast.OpAdd, node.Children[0].Op)
	inner := node.Children[0].Children[1]
	require.Equal(t, ast.OpAbs, inner.Op)
	assert.Equal(t, "y", inner.Children[0].Payload)
}

func TestParse_SetUnion(t *testing.T) {
	node := parse(t, `\{1,2\} \cup \{3\}`)
	require.Equal(t, ast.OpCup, node.Op)
	require.Len(t, node.Children, 2)
	assert.Equal(t, ast.OpSet, node.Children[0].Op)
	assert.Equal(t, ast.OpSet, node.Children[1].Op)
}

func TestParse_MatrixBeginEnd(t *testing.T) {
	node := parse(t, `\begin{matrix}1&2\\3&4\end{matrix}`)
	require.Equal(t, ast.OpMatrix, node.Op)
	require.Len(t, node.Children, 2)
	row0 := node.Children[0]
	require.Equal(t, ast.OpRow, row0.Op)
	require.Len(t, row0.Children, 2)
	assert.Equal(t, ast.OpCol, row0.Children[0].Op)
	assert.Equal(t, "1", row0.Children[0].Children[0].Payload)
}

func TestParse_NotRewritesGreaterThan(t *testing.T) {
	node := parse(t, `a \not> b`)
	require.Equal(t, ast.OpNgtr, node.Op)
}
