package lexer

// unicodeTable maps Unicode math code points the scanner may encounter
// directly in source (rather than as a LaTeX control sequence) to the
// LaTeX spelling it is normalized to before further tokenization (spec
// §4.1 "Unicode table"). Greek letters are generated from greekUpper/greekLower below
// rather than listed individually here.
var unicodeTable = map[rune]string{
	'←': `\leftarrow`,
	'→': `\rightarrow`,
	'↔': `\leftrightarrow`,
	'⇐': `\Leftarrow`,
	'⇒': `\Rightarrow`,
	'⇔': `\Leftrightarrow`,
	'⟷': `\Longleftrightarrow`,

	'∈': `\in`,
	'∉': `\notin`,
	'∋': `\ni`,
	'⊂': `\subset`,
	'⊆': `\subseteq`,
	'⊃': `\supset`,
	'⊇': `\supseteq`,
	'∪': `\cup`,
	'∩': `\cap`,
	'∖': `\setminus`,
	'∥': `\parallel`,
	'∦': `\nparallel`,
	'∼': `\sim`,
	'≅': `\cong`,
	'≈': `\approx`,
	'≠': `\ne`,
	'≤': `\le`,
	'≥': `\ge`,
	'≯': `\ngtr`,
	'≰': `\nless`,
	'⊥': `\perp`,
	'∝': `\propto`,

	'±': `\pm`,
	'×': `\times`,
	'÷': `\div`,
	'⋅': `\cdot`,
	'∞': `\infty`,
	'∫': `\int`,
	'∑': `\sum`,
	'∏': `\prod`,
	'√': `\sqrt`,
	'∂': `\partial`,
	'∇': `\nabla`,
	'∅': `\varnothing`,
	'∴': `\therefore`,
	'∵': `\because`,

	'¢': `\cent`,
	'°': `\degree`,
	'−': `-`,
	'∕': `/`,
	'∗': `*`,
	'∶': `:`,
}

// greekUpper and greekLower are the LaTeX names for U+0391-U+03A9 (uppercase) and
// U+03B1-U+03C9 (lowercase), in code-point order; U+03A2 is an
// unassigned reserved slot and is skipped.
var greekUpper = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

var greekLower = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi",
	"rho", "varsigma", "sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
}

// greekVariants covers the variant-form code points in U+03D0-U+03F5 that
// are distinct LaTeX macros from their "primary" counterpart above.
var greekVariants = map[rune]string{
	'ϑ': `\vartheta`,
	'ϕ': `\varphi`,
	'ϖ': `\varpi`,
	'ϰ': `\varkappa`,
	'ϱ': `\varrho`,
	'ϴ': `\Theta`,
	'ϵ': `\varepsilon`,
}

func init() {
	for i, name := range greekUpper {
		if name == "" {
			continue
		}
		unicodeTable[rune(0x0391+i)] = `\` + name
	}
	for i, name := range greekLower {
		unicodeTable[rune(0x03B1+i)] = `\` + name
	}
	for r, name := range greekVariants {
		unicodeTable[r] = name
	}
}

// mathItalicEpsilonHigh/Low are the UTF-16 surrogate pair for U+1D6C6
// (MATHEMATICAL ITALIC SMALL EPSILON), which the spec calls out by name
// as normalizing to U+03B5 (ordinary lowercase epsilon) rather than to
// its own macro (spec §4.1 "The surrogate pair U+D835 U+DEC6 is
// normalized to U+03B5"). Go forbids \u escapes that encode a surrogate
// half, so these are plain integer constants rather than rune literals.
const (
	mathItalicEpsilonHigh rune = 0xD835
	mathItalicEpsilonLow  rune = 0xDEC6
	mathItalicEpsilon     rune = 0x03B5 // ordinary lowercase epsilon
)
