package glossary

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// Unavailable replaces a missing example or source on the back of a card.
	Unavailable = "Não disponível"
	// NoTermsWithInitial is shown instead of cards when a letter filter matches nothing.
	NoTermsWithInitial = "Nenhum termo com essa inicial"
)

// Card is the display form of a Term. The front face carries Term, Definition
// and Theme with the edit/delete controls; the back face carries the example
// lines and the source link.
type Card struct {
	ID           int64
	Term         string
	Definition   string
	Theme        string
	ExampleLines []string
	SourceText   string
	// SourceURL is the raw source; empty when the term has none.
	SourceURL string
}

// Render projects terms into cards, one per term, in order.
func Render(terms []Term) []Card {
	return lo.Map(terms, func(t Term, _ int) Card {
		return newCard(t)
	})
}

func newCard(t Term) Card {
	example := t.Example
	if example == "" {
		example = Unavailable
	}
	sourceText := t.Source
	if sourceText == "" {
		sourceText = Unavailable
	}
	return Card{
		ID:           t.ID,
		Term:         t.Term,
		Definition:   t.Definition,
		Theme:        t.Theme,
		ExampleLines: strings.Split(example, "\n"),
		SourceText:   sourceText,
		SourceURL:    t.Source,
	}
}
