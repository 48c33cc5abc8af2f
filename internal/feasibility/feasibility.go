// Package feasibility runs a propositional smoke test over a
// partitioned MITL formula: each bounded until conjunct G [a, b]
// ((φ) U (ψ)) is abstracted to the clause φ ∨ ψ, and every proposition
// is pinned to its observed truth value over the conjunct's interval.
// An unsatisfiable conjunct means the observed signal already rules the
// formula out. This is a necessary-condition check only, not MITL
// semantics.
package feasibility

import (
	"fmt"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/fmtools/mitlc/pkg/mitl/predicate"
	"github.com/fmtools/mitlc/pkg/mitl/rewrite"
	"github.com/fmtools/mitlc/pkg/mitl/signal"
)

const satisfiable = 1

// Infeasible is an error listing every conjunct whose abstraction
// conflicts with the observed signal.
type Infeasible []string

func (e Infeasible) Error() string {
	const msg = "formula is infeasible under the observed signal"
	if len(e) == 0 {
		return msg
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(e, "\n"))
}

// litMapping translates proposition names into solver literals,
// creating a fresh literal per proposition on first use.
type litMapping struct {
	g    *gini.Gini
	lits map[predicate.Identifier]z.Lit
}

func newLitMapping(g *gini.Gini) *litMapping {
	return &litMapping{
		g:    g,
		lits: make(map[predicate.Identifier]z.Lit),
	}
}

func (d *litMapping) LitOf(id predicate.Identifier) z.Lit {
	if _, ok := d.lits[id]; !ok {
		d.lits[id] = d.g.Lit()
	}
	return d.lits[id]
}

// Check abstracts every pattern instance in the formula and decides
// each against the signal valuation over its interval. Propositions
// whose binding position lies outside the trace's arity are left
// unconstrained. Returns nil when every conjunct remains satisfiable.
func Check(formula string, pattern rewrite.Pattern, trace signal.Trace, mapping *predicate.Mapping) error {
	var conflicts Infeasible
	for _, m := range pattern.Matches(formula) {
		if feasible(m, trace, mapping) {
			continue
		}
		conflicts = append(conflicts, fmt.Sprintf("%s [%d, %d] (%s)", pattern.Operator, m.A, m.B, m.Body))
	}
	if len(conflicts) > 0 {
		return conflicts
	}
	return nil
}

func feasible(m rewrite.Match, trace signal.Trace, mapping *predicate.Mapping) bool {
	g := gini.New()
	lits := newLitMapping(g)

	left := predicate.Identifier(m.Left)
	right := predicate.Identifier(m.Right)

	// the until abstraction: φ ∨ ψ must be able to hold on the interval
	g.Add(lits.LitOf(left))
	g.Add(lits.LitOf(right))
	g.Add(z.LitNull)

	// pin each proposition to its observed value; the interval is
	// stable by construction, so the first sample inside it suffices
	for _, id := range []predicate.Identifier{left, right} {
		value, ok := observed(id, m, trace, mapping)
		if !ok {
			continue
		}
		lit := lits.LitOf(id)
		if !value {
			lit = lit.Not()
		}
		g.Add(lit)
		g.Add(z.LitNull)
	}

	return g.Solve() == satisfiable
}

func observed(id predicate.Identifier, m rewrite.Match, trace signal.Trace, mapping *predicate.Mapping) (bool, bool) {
	col, ok := mapping.Position(id)
	if !ok {
		return false, false
	}
	for _, s := range trace {
		if s.T < float64(m.A) || s.T > float64(m.B) {
			continue
		}
		if col >= len(s.Values) {
			return false, false
		}
		return s.Values[col], true
	}
	return false, false
}
