package glossary

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block (U+0300–U+036F).
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// FoldInitial normalizes s for initial-letter comparison: canonical
// decomposition, combining marks removed, full upper-case mapping.
// "Álgebra" folds to "ALGEBRA".
func FoldInitial(s string) string {
	// Transformers carry state; build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Upper(language.Und).String(stripped)
}

// HasInitial reports whether term starts with letter once both are folded.
// An empty letter matches every term.
func HasInitial(term, letter string) bool {
	return strings.HasPrefix(FoldInitial(term), FoldInitial(letter))
}

// FilterByInitial returns the terms whose name starts with letter, keeping order.
func FilterByInitial(terms []Term, letter string) []Term {
	return lo.Filter(terms, func(t Term, _ int) bool {
		return HasInitial(t.Term, letter)
	})
}
