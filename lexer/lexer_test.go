package lexer

import (
	"testing"

	"github.com/artcompiler/parselatex/environment"
	"github.com/stretchr/testify/assert"
)

func scanAll(t *testing.T, src string, env *environment.Environment, opts ScanOptions) []Token {
	t.Helper()
	s := NewScanner(src, env)
	var toks []Token
	for {
		k := s.Start(opts)
		toks = append(toks, Token{Kind: k, Lexeme: s.Lexeme(), Offset: s.Offset()})
		if k == EOS {
			break
		}
	}
	return toks
}

func TestScanner_PlainIntegerAndOperators(t *testing.T) {
	toks := scanAll(t, "12+x", nil, ScanOptions{})
	assert.Equal(t, []Kind{NUM, PLUS, VAR, EOS}, kindsOf(toks))
	assert.Equal(t, "12", toks[0].Lexeme)
	assert.Equal(t, "x", toks[2].Lexeme)
}

func TestScanner_DecimalNumber(t *testing.T) {
	toks := scanAll(t, "3.14", nil, ScanOptions{})
	assert.Equal(t, NUM, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Lexeme)

	s := NewScanner("3.14", nil)
	k := s.Start(ScanOptions{})
	assert.Equal(t, NUM, k)
	assert.True(t, s.IsDecimal())
}

func TestScanner_LoneDotBeforeOverlineBecomesImplicitZero(t *testing.T) {
	s := NewScanner(`.\overline{3}`, nil)
	k := s.Start(ScanOptions{})
	assert.Equal(t, NUM, k)
	assert.Equal(t, "0.", s.Lexeme())
}

func TestScanner_ThousandsSeparatorTracksCountAndIndex(t *testing.T) {
	s := NewScanner("1,234,567", nil)
	opts := ScanOptions{AllowThousandsSeparator: true, ThousandsSeparators: []rune{','}}
	k := s.Start(opts)
	assert.Equal(t, NUM, k)
	assert.Equal(t, "1234567", s.Lexeme())
	assert.Equal(t, 2, s.SeparatorCount())
}

func TestScanner_BracedThousandsSeparator(t *testing.T) {
	s := NewScanner("1{,}234", nil)
	opts := ScanOptions{AllowThousandsSeparator: true, ThousandsSeparators: []rune{','}}
	k := s.Start(opts)
	assert.Equal(t, NUM, k)
	assert.Equal(t, "1234", s.Lexeme())
	assert.Equal(t, 1, s.SeparatorCount())
}

func TestScanner_RawLexemeKeepsUnstrippedSeparators(t *testing.T) {
	s := NewScanner("1,234.5", nil)
	opts := ScanOptions{AllowThousandsSeparator: true, ThousandsSeparators: []rune{','}}
	k := s.Start(opts)
	assert.Equal(t, NUM, k)
	assert.Equal(t, "1234.5", s.Lexeme())
	assert.Equal(t, "1,234.5", s.RawLexeme())
}

func TestScanner_RawLexemeMatchesLexemeWithNoSeparators(t *testing.T) {
	s := NewScanner("42", nil)
	k := s.Start(ScanOptions{})
	assert.Equal(t, NUM, k)
	assert.Equal(t, "42", s.RawLexeme())
}

func TestScanner_MismatchedThousandsGroupingPanics(t *testing.T) {
	s := NewScanner("1,23,456", nil)
	opts := ScanOptions{AllowThousandsSeparator: true, ThousandsSeparators: []rune{','}}
	assert.Panics(t, func() { s.Start(opts) })
}

func TestScanner_MultipleDecimalSeparatorsPanics(t *testing.T) {
	s := NewScanner("1.2.3", nil)
	assert.Panics(t, func() { s.Start(ScanOptions{}) })
}

func TestScanner_InfinityIsNumeric(t *testing.T) {
	toks := scanAll(t, `\infty`, nil, ScanOptions{})
	assert.Equal(t, NUM, toks[0].Kind)
	assert.Equal(t, `\infty`, toks[0].Lexeme)
}

func TestScanner_UnknownControlSequenceIsVar(t *testing.T) {
	toks := scanAll(t, `\widehat`, nil, ScanOptions{})
	assert.Equal(t, VAR, toks[0].Kind)
	assert.Equal(t, `\widehat`, toks[0].Lexeme)
}

func TestScanner_WhitespaceControlWordsAreSkipped(t *testing.T) {
	toks := scanAll(t, `x\quad+\quad y`, nil, ScanOptions{})
	assert.Equal(t, VAR, toks[0].Kind)
	assert.Equal(t, PLUS, toks[1].Kind)
	assert.Equal(t, VAR, toks[2].Kind)
}

func TestScanner_TextCapturesBraceContent(t *testing.T) {
	toks := scanAll(t, `\text{total cost}`, nil, ScanOptions{})
	assert.Equal(t, TEXT, toks[0].Kind)
	assert.Equal(t, "total cost", toks[0].Lexeme)
}

func TestScanner_IgnoreTextSkipsEntirely(t *testing.T) {
	toks := scanAll(t, `x\text{ignored}+1`, nil, ScanOptions{IgnoreText: true})
	assert.Equal(t, []Kind{VAR, PLUS, NUM, EOS}, kindsOf(toks))
}

func TestScanner_PrimesAreOneToken(t *testing.T) {
	toks := scanAll(t, `f''+1`, nil, ScanOptions{})
	assert.Equal(t, VAR, toks[1].Kind)
	assert.Equal(t, "''", toks[1].Lexeme)
}

func TestScanner_GreedyIdentifierMatchesKnownUnit(t *testing.T) {
	env := environment.New(false)
	env.Define(environment.Symbol{Name: "kg", Kind: environment.KindUnit})

	toks := scanAll(t, "5kg", env, ScanOptions{})
	assert.Equal(t, []Kind{NUM, VAR, EOS}, kindsOf(toks))
	assert.Equal(t, "kg", toks[1].Lexeme)
}

func TestScanner_GreedyIdentifierBacktracksWhenUnknown(t *testing.T) {
	env := environment.New(false)
	env.Define(environment.Symbol{Name: "kg", Kind: environment.KindUnit})

	toks := scanAll(t, "km", env, ScanOptions{})
	assert.Equal(t, VAR, toks[0].Kind)
	assert.Equal(t, "k", toks[0].Lexeme)
}

func TestScanner_OneCharTokenRestrictsNumberAndIdentifier(t *testing.T) {
	s := NewScanner("12", nil)
	k := s.Start(ScanOptions{OneCharToken: true})
	assert.Equal(t, NUM, k)
	assert.Equal(t, "1", s.Lexeme())

	s2 := NewScanner("ab", nil)
	k2 := s2.Start(ScanOptions{OneCharToken: true})
	assert.Equal(t, VAR, k2)
	assert.Equal(t, "a", s2.Lexeme())
}

func TestScanner_DoubleStarFusesToCaret(t *testing.T) {
	toks := scanAll(t, "3**2", nil, ScanOptions{})
	assert.Equal(t, []Kind{NUM, CARET, NUM, EOS}, kindsOf(toks))
	assert.Equal(t, "**", toks[1].Lexeme)
}

func TestScanner_UnicodeArrowNormalizesToControlWord(t *testing.T) {
	toks := scanAll(t, "x→y", nil, ScanOptions{})
	assert.Equal(t, []Kind{VAR, RIGHTARROW, VAR, EOS}, kindsOf(toks))
}

func TestScanner_GreekLetterNormalizesToControlWord(t *testing.T) {
	toks := scanAll(t, "α+1", nil, ScanOptions{})
	assert.Equal(t, VAR, toks[0].Kind)
	assert.Equal(t, `\alpha`, toks[0].Lexeme)
}

func TestScanner_NbspEntityIsWhitespace(t *testing.T) {
	toks := scanAll(t, "1&nbsp;+&nbsp;2", nil, ScanOptions{})
	assert.Equal(t, []Kind{NUM, PLUS, NUM, EOS}, kindsOf(toks))
}

func kindsOf(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
