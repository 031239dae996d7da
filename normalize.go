package calceval

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// glyphs rewrites calculator and typeset glyphs to their canonical ASCII
// spellings. The character classes are disjoint, so replacement order does
// not matter.
var glyphs = strings.NewReplacer(
	"π", "pi",
	"×", "*",
	"⋅", "*",
	"∙", "*",
	"·", "*",
	"÷", "/",
	"−", "-",
	"–", "-",
	"—", "-",
	"√", "sqrt",
)

var ansPat = regexp.MustCompile(`(?i)ans`)

// Normalize rewrites raw calculator input into the canonical ASCII form the
// parser expects: compatibility codepoints are folded with NFKC, display
// glyphs become their ASCII spellings, ANS loses its case, and all whitespace
// is removed. Normalize is total and idempotent; it never fails.
func Normalize(s string) string {
	s = glyphs.Replace(norm.NFKC.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return ansPat.ReplaceAllLiteralString(b.String(), "ans")
}
