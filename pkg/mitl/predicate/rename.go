package predicate

import (
	"fmt"
	"regexp"
)

// Identifier is a fresh Boolean proposition name, e.g. "p1".
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Binding pairs a predicate's exact source text with the proposition
// assigned to it.
type Binding struct {
	Text string
	ID   Identifier
}

// Mapping assigns propositions p1..pN to extracted predicates in
// extraction order.
type Mapping struct {
	bindings []Binding
	byText   map[string]Identifier
}

// NewMapping indexes the extractor's output. With dedupe false every
// occurrence burns an index, so a repeated predicate text is bound more
// than once and the last assigned proposition wins during substitution.
// With dedupe true textually identical predicates share the proposition
// of their first occurrence and no index is skipped.
func NewMapping(predicates []string, dedupe bool) *Mapping {
	m := &Mapping{
		byText: make(map[string]Identifier, len(predicates)),
	}
	next := 1
	for _, text := range predicates {
		if dedupe {
			if _, ok := m.byText[text]; ok {
				continue
			}
		}
		id := Identifier(fmt.Sprintf("p%d", next))
		next++
		m.bindings = append(m.bindings, Binding{Text: text, ID: id})
		m.byText[text] = id
	}
	return m
}

// Bindings returns every assignment in the order it was made.
func (m *Mapping) Bindings() []Binding {
	return m.bindings
}

// IdentifierOf returns the proposition a predicate text substitutes to.
func (m *Mapping) IdentifierOf(text string) (Identifier, bool) {
	id, ok := m.byText[text]
	return id, ok
}

// Position returns the zero-based binding index of a proposition, which
// is also its column in a signal trace whose arity matches the mapping.
func (m *Mapping) Position(id Identifier) (int, bool) {
	for i, b := range m.bindings {
		if b.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Apply substitutes every bound predicate in the formula with its
// proposition. Predicate text is QuoteMeta-escaped and matched on word
// boundaries, so a predicate over x never rewrites part of x2.
// Propositions are disjoint from any predicate text the extractor can
// produce, which makes Apply idempotent over its own output.
func (m *Mapping) Apply(formula string) string {
	out := formula
	seen := make(map[string]struct{}, len(m.byText))
	for _, b := range m.bindings {
		if _, ok := seen[b.Text]; ok {
			continue
		}
		seen[b.Text] = struct{}{}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(b.Text) + `\b`)
		out = re.ReplaceAllLiteralString(out, string(m.byText[b.Text]))
	}
	return out
}
