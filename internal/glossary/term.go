// Package glossary holds the glossary domain: terms, the letter filter, card
// projection, and the view controller that mediates between the term API and
// whatever renders the glossary.
package glossary

// Term is a glossary entry as served by the term API.
// Example and Source are optional; the API may send them empty or null.
type Term struct {
	ID         int64  `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Theme      string `json:"theme"`
	Example    string `json:"example"`
	Source     string `json:"source"`
}

// Form is the editable content of a term. It is the body of create and update
// requests; updates replace every field.
type Form struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Theme      string `json:"theme"`
	Example    string `json:"example"`
	Source     string `json:"source"`
}

// FormFromTerm copies the editable fields of t.
func FormFromTerm(t Term) Form {
	return Form{
		Term:       t.Term,
		Definition: t.Definition,
		Theme:      t.Theme,
		Example:    t.Example,
		Source:     t.Source,
	}
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}
