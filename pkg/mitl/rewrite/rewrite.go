package rewrite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// conjunction joins the sub-interval instances a partitioned operator
// expands into.
const conjunction = " ∧ "

// Pattern describes the bounded temporal operator shape the partitioner
// splits: an operator kind applied over [a, b] to a binary until body.
// The propositions inside the body are captured from the formula, not
// baked into the pattern.
type Pattern struct {
	// Operator is the temporal operator kind, e.g. "G".
	Operator string
}

// Globally is the bounded-globally pattern G [a, b] ((φ) U (ψ)).
var Globally = Pattern{Operator: "G"}

// Match is one located instance of a Pattern: its integer bounds and
// the verbatim until body. Fractional bounds are truncated when
// matched; they are not preserved in rewritten output.
type Match struct {
	A, B  int
	Body  string // e.g. "(p2) U (p3)"
	Left  string // φ proposition
	Right string // ψ proposition
}

// groups: 1 = lower bound, 2 = upper bound, 3 = until body,
// 4 = left proposition, 5 = right proposition.
func (p Pattern) regexp() *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Operator) +
		`\s*\[\s*([\d.]+)\s*,\s*([\d.]+)\s*\]\s*\((\((\w+)\)\s*U\s*\((\w+)\))\)`)
}

// Matches returns every instance of the pattern in the formula, in
// order of occurrence.
func (p Pattern) Matches(formula string) []Match {
	var matches []Match
	for _, m := range p.regexp().FindAllStringSubmatch(formula, -1) {
		matches = append(matches, Match{
			A:     truncate(m[1]),
			B:     truncate(m[2]),
			Body:  m[3],
			Left:  m[4],
			Right: m[5],
		})
	}
	return matches
}

// Partition rewrites the first instance of the pattern in the formula
// into a conjunction of same-shaped instances covering [a, b] exactly
// once, cut at every partition point inside the bounds. The scan starts
// at prev = a; each cut t emits [prev, t] and restarts at t+1; whatever
// remains closes at b. With no cuts inside the bounds the whole
// interval is re-emitted as a single conjunct. Formulas without the
// pattern are returned unchanged.
//
// points must be in increasing order, as produced by
// signal.PartitionPoints. When a > b the scan emits no segments and the
// matched operator is replaced by the empty string.
func (p Pattern) Partition(formula string, points []int) string {
	re := p.regexp()
	loc := re.FindStringSubmatchIndex(formula)
	if loc == nil {
		return formula
	}
	a := truncate(formula[loc[2]:loc[3]])
	b := truncate(formula[loc[4]:loc[5]])
	body := formula[loc[6]:loc[7]]

	var segments []string
	prev := a
	for _, t := range points {
		if t < a || t > b {
			continue
		}
		if prev <= t {
			segments = append(segments, p.segment(prev, t, body))
		}
		prev = t + 1
	}
	if prev <= b {
		segments = append(segments, p.segment(prev, b, body))
	}

	return formula[:loc[0]] + strings.Join(segments, conjunction) + formula[loc[1]:]
}

func (p Pattern) segment(lo, hi int, body string) string {
	return fmt.Sprintf("%s [%d, %d] (%s)", p.Operator, lo, hi, body)
}

// truncate converts a matched bound to an integer the way strtod would:
// the [\d.]+ class admits junk like "1.2.3", so anything past a second
// dot is dropped before parsing.
func truncate(s string) int {
	if i := strings.Index(s, "."); i >= 0 {
		if j := strings.Index(s[i+1:], "."); j >= 0 {
			s = s[:i+1+j]
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}
