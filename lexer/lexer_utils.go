/*
File    : parselatex/lexer/lexer_utils.go

Character classification and source-normalization helpers used by the
scanner. Grounded on the teacher's lexer_utils.go (isDigitASCII, isAlpha,
isWhitespace, ...), generalized from ASCII bytes to runes since LaTeX
source legitimately contains multi-byte Unicode (Greek letters, arrows,
the non-breaking space U+00A0) that the teacher's byte-oriented language
never had to handle.
*/
package lexer

import (
	"strings"
	"unicode"
)

const (
	nbsp rune = 0x00A0 // non-breaking space
	zwsp rune = 0x200B // zero-width space
)

// isDigitRune reports whether r is an ASCII decimal digit. LaTeX math
// never uses non-ASCII digits, so this intentionally does not delegate
// to unicode.IsDigit.
func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetterRune reports whether r can start or continue an identifier or
// control-sequence name. This covers ASCII letters and any Unicode letter
// that normalize() left untouched (i.e. one with no entry in
// unicodeTable), so that, e.g., a raw Cyrillic or accented identifier
// still scans as a single VAR rather than INVALID.
func isLetterRune(r rune) bool {
	return unicode.IsLetter(r)
}

// isSpaceRune reports whether r is one of the whitespace characters the
// scanner treats as insignificant between tokens (spec §4.1).
func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', nbsp, zwsp:
		return true
	default:
		return false
	}
}

// isControlRune reports whether r is a C0 control character other than
// the whitespace ones the scanner already understands; stripInvisible
// collapses runs of these to a single tab.
func isControlRune(r rune) bool {
	if r >= 0x20 {
		return false
	}
	switch r {
	case '\t', '\n', '\r':
		return false
	default:
		return true
	}
}

// stripInvisible collapses runs of invisible control characters to a
// single tab and preserves the character immediately following a
// backslash verbatim, regardless of what it is (spec §4.1 "Input").
// This runs before any tokenization and before Unicode normalization.
func stripInvisible(src string) string {
	runes := []rune(src)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			b.WriteRune(r)
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		if isControlRune(r) {
			b.WriteRune('\t')
			for i+1 < len(runes) && isControlRune(runes[i+1]) {
				i++
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalize prepares raw LaTeX source for scanning: it strips invisible
// control-character runs (preserving escaped characters) and rewrites
// recognized Unicode math code points to their LaTeX spelling in place,
// so the rest of the scanner only ever has to deal with the ASCII/LaTeX
// surface described in spec §4.1.
func normalize(src string) []rune {
	stripped := []rune(stripInvisible(src))
	out := make([]rune, 0, len(stripped))
	for i := 0; i < len(stripped); i++ {
		r := stripped[i]
		if r == mathItalicEpsilonHigh && i+1 < len(stripped) && stripped[i+1] == mathItalicEpsilonLow {
			out = append(out, []rune(`\epsilon`)...)
			i++
			continue
		}
		if repl, ok := unicodeTable[r]; ok {
			out = append(out, []rune(repl)...)
			continue
		}
		out = append(out, r)
	}
	return out
}

func runeIn(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
