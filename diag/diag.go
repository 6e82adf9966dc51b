/*
File    : parselatex/diag/diag.go

Package diag defines the fatal-diagnostic type raised by the scanner and
parser. Every syntactic problem the parser encounters is reported through
this type: a numeric code in the reserved range 1000-1999, a message
template with positional placeholders (%1, %2, ...), and the arguments to
substitute into it.

Unlike the teacher interpreter's Parser.Errors []string (which accumulates
messages and keeps going), parsing here is single-shot: the first Error
raised aborts the parse. See parser.Parse for the panic/recover boundary
that turns a raised *Error back into a normal Go error return.
*/
package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies the class of a diagnostic. The numbering and meaning of
// each code is fixed by the specification this parser implements; callers
// downstream (renderers, equivalence checkers) are expected to match on
// the numeric value, not the message text.
type Code int

// The full, closed set of diagnostic codes. Do not renumber: downstream
// consumers persist these.
const (
	Internal                   Code = 1000 // internal error (should not occur)
	SyntaxExpectedFound        Code = 1001 // expected one token, found another
	MultipleDecimalSeparators  Code = 1002 // a numeric literal has more than one decimal point
	ExtraInput                 Code = 1003 // trailing input after a complete expression
	InvalidCharacter           Code = 1004 // a character the scanner cannot classify
	MisplacedThousands         Code = 1005 // a thousands separator outside a digit run
	ExpressionExpected         Code = 1006 // a primary expression was required but absent
	UnexpectedCharacterInNumer Code = 1007 // an unexpected character interrupted a numeric literal
	SeparatorConflict          Code = 1008 // decimal and thousands separators configured identically
	MissingCommandArgument     Code = 1009 // a control sequence requires a brace-delimited argument
	TwoNumbersNoOperator       Code = 1010 // two adjacent numeric literals with no operator between them
	InvalidGroupingBracket     Code = 1011 // a bracket pair does not form a recognized grouping
	MisplacedSubscript         Code = 1012 // a subscript or superscript appears where none is legal
	MismatchedThousands        Code = 1013 // thousands separators in a single literal disagree
	MissingIntegrationVariable Code = 1014 // an integral's integrand has no trailing d<var>
)

// messages holds the canonical template for each code, written with
// positional placeholders %1, %2, ... rather than Go's fmt verbs, because
// the specification's diagnostics are defined that way and downstream
// tooling substitutes into the template independently of this package.
var messages = map[Code]string{
	Internal:                   "internal error: %1",
	SyntaxExpectedFound:        "expected %1, found %2",
	MultipleDecimalSeparators:  "number %1 has more than one decimal separator",
	ExtraInput:                 "unexpected trailing input %1",
	InvalidCharacter:           "invalid character %1",
	MisplacedThousands:         "misplaced thousands separator in %1",
	ExpressionExpected:         "expression expected, found %1",
	UnexpectedCharacterInNumer: "unexpected character %1 in number",
	SeparatorConflict:          "thousands separator %1 conflicts with decimal separator %2",
	MissingCommandArgument:     "command %1 requires an argument",
	TwoNumbersNoOperator:       "expecting an operator between numbers %1 and %2",
	InvalidGroupingBracket:     "invalid grouping bracket %1",
	MisplacedSubscript:         "misplaced subscript or superscript",
	MismatchedThousands:        "mismatched thousands separators %1 and %2",
	MissingIntegrationVariable: "missing integration variable (expected trailing d<var>)",
}

// Error is the single fatal-diagnostic type this module raises. It
// implements the error interface so callers that only want a plain Go
// error can use it unchanged; callers that want the code and positional
// arguments can type-assert back to *Error.
type Error struct {
	Code Code
	Args []any

	// Source is the full source string being parsed when the error was
	// raised, and Offset the byte offset into it, both optional: the
	// scanner and parser attach them whenever a cursor position is known.
	Source string
	Offset int
}

// New constructs an *Error for code with the given positional arguments.
func New(code Code, args ...any) *Error {
	return &Error{Code: code, Args: args}
}

// At returns a copy of e with source position information attached. It
// never mutates the receiver, so the same *Error value can be reused
// (e.g. for a sentinel) while individual raises carry their own position.
func (e *Error) At(source string, offset int) *Error {
	cp := *e
	cp.Source = source
	cp.Offset = offset
	return &cp
}

// Error renders the diagnostic's message template with its arguments
// substituted, satisfying the standard error interface.
func (e *Error) Error() string {
	msg := Format(messages[e.Code], e.Args...)
	if e.Source == "" {
		return fmt.Sprintf("[%d] %s", int(e.Code), msg)
	}
	return fmt.Sprintf("[%d] %s (at byte %d)", int(e.Code), msg, e.Offset)
}

// Format substitutes %1, %2, ... placeholders in template with the
// corresponding (1-indexed) element of args, formatted with %v. Any
// placeholder beyond len(args) is left verbatim so malformed templates
// fail loud rather than silently swallow a typo.
func Format(template string, args ...any) string {
	var b strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '%' && i+1 < len(runes) && runes[i+1] >= '1' && runes[i+1] <= '9' {
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(string(runes[i+1 : j]))
			if err == nil && n >= 1 && n <= len(args) {
				fmt.Fprintf(&b, "%v", args[n-1])
				i = j - 1
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
