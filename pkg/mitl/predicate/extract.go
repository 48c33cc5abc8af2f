package predicate

import (
	"regexp"
)

// atomicPattern matches real-valued comparisons like "y < 2", "z>1" or
// "x >= 0.3": an identifier, a relational operator, and a numeric
// literal built from digits and dots. The character class deliberately
// admits malformed numbers such as "1.2.3"; extraction is surface-text
// matching, not validation.
var atomicPattern = regexp.MustCompile(`\w+\s*[<>]=?\s*[\d.]+`)

// Extract returns every atomic comparison found in the formula, left to
// right, non-overlapping, with the exact whitespace it was captured
// with. Textually identical predicates are returned once per
// occurrence; dedup is a Mapping concern, not an extraction one.
func Extract(formula string) []string {
	return atomicPattern.FindAllString(formula, -1)
}
