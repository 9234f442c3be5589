package bigo

import "strings"

// Complexity is a canonical time-complexity class.
type Complexity string

const (
	ComplexityConstant     Complexity = "constant"
	ComplexityLogarithmic  Complexity = "logarithmic"
	ComplexityLinear       Complexity = "linear"
	ComplexityLinearithmic Complexity = "linearithmic"
	ComplexityQuadratic    Complexity = "quadratic"
	ComplexityCubic        Complexity = "cubic"
	ComplexityExponential  Complexity = "exponential"
	ComplexitySquareRoot   Complexity = "square-root"

	// ComplexityUnknown is the fallback for input that cannot be classified.
	// It compares equal only to itself, so an unrecognized answer is never
	// silently treated as linear (or anything else).
	ComplexityUnknown Complexity = "unknown"
)

// displayStrings maps each class to its canonical Big O notation.
var displayStrings = map[Complexity]string{
	ComplexityConstant:     "O(1)",
	ComplexityLogarithmic:  "O(log n)",
	ComplexityLinear:       "O(n)",
	ComplexityLinearithmic: "O(n log n)",
	ComplexityQuadratic:    "O(n^2)",
	ComplexityCubic:        "O(n^3)",
	ComplexityExponential:  "O(2^n)",
	ComplexitySquareRoot:   "O(sqrt(n))",
	ComplexityUnknown:      "O(?)",
}

// AllComplexities returns the eight canonical classes (Unknown excluded),
// ordered by growth rate.
func AllComplexities() []Complexity {
	return []Complexity{
		ComplexityConstant,
		ComplexityLogarithmic,
		ComplexitySquareRoot,
		ComplexityLinear,
		ComplexityLinearithmic,
		ComplexityQuadratic,
		ComplexityCubic,
		ComplexityExponential,
	}
}

// Display returns the canonical Big O string for c.
func (c Complexity) Display() string {
	if s, ok := displayStrings[c]; ok {
		return s
	}
	return string(c)
}

// Normalize maps a free-text complexity label to its canonical class.
//
// It tolerates the notational variants that show up in quiz data and LLM
// output: caret exponents ("O(n^2)"), Unicode superscripts ("O(n²)"),
// missing O() wrappers ("n log n"), asterisk products ("n*log(n)"),
// root symbols ("O(√n)"), and plain English names ("quadratic").
// Unrecognized input returns ComplexityUnknown.
func Normalize(label string) Complexity {
	key := canonicalKey(label)
	if c, ok := normalizeTable[key]; ok {
		return c
	}
	return ComplexityUnknown
}

// Evaluate reports whether the selected label names the same complexity
// class as the correct label. Both sides are normalized first, so
// superficially different spellings of the same class compare equal.
func Evaluate(selected, correct string) bool {
	return Normalize(selected) == Normalize(correct)
}

// canonicalKey strips everything that doesn't distinguish complexity
// classes: whitespace, parens, the leading big-O, and notation variants.
func canonicalKey(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))

	// Unicode variants first, while the structure is still visible.
	replacements := []struct{ from, to string }{
		{"²", "^2"},
		{"³", "^3"},
		{"ⁿ", "^n"},
		{"√n", "sqrt n"},
		{"√(n)", "sqrt n"},
		{"×", "*"},
		{"·", "*"},
	}
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r.from, r.to)
	}

	// Drop an O(...) or o(...) wrapper.
	if strings.HasPrefix(s, "o(") && strings.HasSuffix(s, ")") {
		s = s[2 : len(s)-1]
	} else {
		s = strings.TrimPrefix(s, "o(")
	}

	// Collapse punctuation that carries no meaning after the wrapper is gone.
	for _, ch := range []string{"(", ")", "*", " ", "\t"} {
		s = strings.ReplaceAll(s, ch, "")
	}

	return s
}

// normalizeTable maps canonical keys (output of canonicalKey) to classes.
var normalizeTable = map[string]Complexity{
	"1":        ComplexityConstant,
	"c":        ComplexityConstant,
	"constant": ComplexityConstant,

	"logn":        ComplexityLogarithmic,
	"log":         ComplexityLogarithmic,
	"log2n":       ComplexityLogarithmic,
	"logarithmic": ComplexityLogarithmic,

	"n":      ComplexityLinear,
	"linear": ComplexityLinear,

	"nlogn":        ComplexityLinearithmic,
	"nlog2n":       ComplexityLinearithmic,
	"linearithmic": ComplexityLinearithmic,

	"n^2":       ComplexityQuadratic,
	"nn":        ComplexityQuadratic,
	"quadratic": ComplexityQuadratic,

	"n^3":   ComplexityCubic,
	"cubic": ComplexityCubic,

	"2^n":         ComplexityExponential,
	"exponential": ComplexityExponential,

	"sqrtn":       ComplexitySquareRoot,
	"sqrt":        ComplexitySquareRoot,
	"squareroot":  ComplexitySquareRoot,
	"square-root": ComplexitySquareRoot,
	"n^0.5":       ComplexitySquareRoot,
}
