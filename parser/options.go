/*
File    : parselatex/parser/options.go

Options configures a single call to Parse. It is the user-facing surface;
internal flags the ladder flips transiently (OneCharToken,
ParsingIntegralExpr) are still exposed here because spec §6 lists them as
part of the same Options record, but callers constructing Options from a
config file (see cmd/parselatex) only ever set the non-internal fields.

Grounded on the teacher's interpreter-wide config conventions (flat struct
of booleans/strings consumed at construction time); the yaml tags let
cmd/parselatex load a default Options value from a config file the same
way the teacher loads its own settings, via gopkg.in/yaml.v3.
*/
package parser

import "github.com/artcompiler/parselatex/lexer"

// Options is the exhaustive option set from spec §6.
type Options struct {
	AllowThousandsSeparator bool   `yaml:"allowThousandsSeparator"`
	SetThousandsSeparator   string `yaml:"setThousandsSeparator"`
	SetDecimalSeparator     string `yaml:"setDecimalSeparator"`
	DecimalPlaces           int    `yaml:"decimalPlaces"`
	Strict                  bool   `yaml:"strict"`
	CompareGrouping         bool   `yaml:"compareGrouping"`
	KeepTextWhitespace      bool   `yaml:"keepTextWhitespace"`
	IgnoreText              bool   `yaml:"ignoreText"`

	// ParsingIntegralExpr and OneCharToken are internal, scoped flags the
	// ladder itself pushes/pops (spec §5 "scoped acquisition of the
	// integral-parsing flag"); a caller-supplied Options value should
	// leave both false.
	ParsingIntegralExpr bool `yaml:"-"`
	OneCharToken        bool `yaml:"-"`
}

// DefaultOptions returns the zero-value Options: no separators configured
// (plain "." decimal, no thousands grouping), lenient, flattening ADD.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) decimalSeparators() []rune {
	if o.SetDecimalSeparator == "" {
		return []rune{'.'}
	}
	return []rune(o.SetDecimalSeparator)
}

func (o Options) thousandsSeparators() []rune {
	if o.SetThousandsSeparator == "" {
		return []rune{','}
	}
	return []rune(o.SetThousandsSeparator)
}

// validate checks the cross-option constraints spec §6 calls out by code:
// a decimal separator longer than one rune (1002-adjacent: multiple
// decimal separators configured) and a thousands/decimal separator
// collision (1008).
func (o Options) validate() *validationError {
	dec := o.decimalSeparators()
	if len(dec) != 1 {
		return &validationError{code: codeMultipleDecimalSeparators, arg: o.SetDecimalSeparator}
	}
	if o.AllowThousandsSeparator {
		for _, t := range o.thousandsSeparators() {
			if t == dec[0] {
				return &validationError{code: codeSeparatorConflict, arg: string(t)}
			}
		}
	}
	return nil
}

type validationErrorCode int

const (
	codeMultipleDecimalSeparators validationErrorCode = iota
	codeSeparatorConflict
)

type validationError struct {
	code validationErrorCode
	arg  string
}

// toScanOptions converts the subset of Options the scanner needs into a
// lexer.ScanOptions, avoiding a lexer -> parser import cycle by keeping
// lexer's own option type independent of this one.
func (o Options) toScanOptions() lexer.ScanOptions {
	return lexer.ScanOptions{
		AllowThousandsSeparator: o.AllowThousandsSeparator,
		ThousandsSeparators:     o.thousandsSeparators(),
		DecimalSeparators:       o.decimalSeparators(),
		KeepTextWhitespace:      o.KeepTextWhitespace,
		IgnoreText:              o.IgnoreText,
		OneCharToken:            o.OneCharToken,
	}
}
