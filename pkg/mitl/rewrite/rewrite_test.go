package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtools/mitlc/pkg/mitl/rewrite"
)

func TestPartition(t *testing.T) {
	type tc struct {
		Name     string
		Formula  string
		Points   []int
		Expected string
	}

	for _, tt := range []tc{
		{
			Name:     "no cuts re-emits the full interval",
			Formula:  "G [2, 7] ((p2) U (p3))",
			Points:   nil,
			Expected: "G [2, 7] ((p2) U (p3))",
		},
		{
			Name:    "multi cut with gap rule",
			Formula: "G [0, 30] ((p2) U (p3))",
			Points:  []int{10, 15, 20},
			Expected: "G [0, 10] ((p2) U (p3)) ∧ G [11, 15] ((p2) U (p3)) ∧ " +
				"G [16, 20] ((p2) U (p3)) ∧ G [21, 30] ((p2) U (p3))",
		},
		{
			Name:     "degenerate point interval",
			Formula:  "G [5, 5] ((p2) U (p3))",
			Points:   nil,
			Expected: "G [5, 5] ((p2) U (p3))",
		},
		{
			Name:     "cut at the upper bound closes without a trailing segment",
			Formula:  "G [0, 10] ((p2) U (p3))",
			Points:   []int{10},
			Expected: "G [0, 10] ((p2) U (p3))",
		},
		{
			Name:     "cut at the lower bound emits a point segment",
			Formula:  "G [5, 9] ((p2) U (p3))",
			Points:   []int{5},
			Expected: "G [5, 5] ((p2) U (p3)) ∧ G [6, 9] ((p2) U (p3))",
		},
		{
			Name:     "points outside the bounds are ignored",
			Formula:  "G [10, 20] ((p2) U (p3))",
			Points:   []int{2, 15, 25},
			Expected: "G [10, 15] ((p2) U (p3)) ∧ G [16, 20] ((p2) U (p3))",
		},
		{
			Name:     "fractional bounds are truncated",
			Formula:  "G [2.7, 9.9] ((p2) U (p3))",
			Points:   []int{5},
			Expected: "G [2, 5] ((p2) U (p3)) ∧ G [6, 9] ((p2) U (p3))",
		},
		{
			Name:     "inverted bounds produce no segments",
			Formula:  "before G [7, 2] ((p2) U (p3)) after",
			Points:   []int{5},
			Expected: "before  after",
		},
		{
			Name:     "formula without the pattern is unchanged",
			Formula:  "p1 and p2",
			Points:   []int{5},
			Expected: "p1 and p2",
		},
		{
			Name:     "body propositions are carried verbatim",
			Formula:  "G [0, 4] ((alive) U (done))",
			Points:   []int{2},
			Expected: "G [0, 2] ((alive) U (done)) ∧ G [3, 4] ((alive) U (done))",
		},
		{
			Name:     "surrounding formula text is kept",
			Formula:  "p1 and G [0, 4] ((p2) U (p3))",
			Points:   []int{2},
			Expected: "p1 and G [0, 2] ((p2) U (p3)) ∧ G [3, 4] ((p2) U (p3))",
		},
		{
			Name:    "adjacent cuts emit a point segment",
			Formula: "G [0, 5] ((p2) U (p3))",
			Points:  []int{2, 3},
			Expected: "G [0, 2] ((p2) U (p3)) ∧ G [3, 3] ((p2) U (p3)) ∧ " +
				"G [4, 5] ((p2) U (p3))",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, rewrite.Globally.Partition(tt.Formula, tt.Points))
		})
	}
}

func TestMatches(t *testing.T) {
	matches := rewrite.Globally.Matches("G [2.5, 30] ((p2) U (p3))")
	require.Len(t, matches, 1)
	assert.Equal(t, rewrite.Match{A: 2, B: 30, Body: "(p2) U (p3)", Left: "p2", Right: "p3"}, matches[0])
}

func TestMatchesNone(t *testing.T) {
	assert.Empty(t, rewrite.Globally.Matches("p1 and p2"))
}

func TestMatchesAll(t *testing.T) {
	formula := "G [0, 2] ((p2) U (p3)) ∧ G [3, 7] ((p2) U (p3))"
	matches := rewrite.Globally.Matches(formula)
	require.Len(t, matches, 2)
	assert.Equal(t, 3, matches[1].A)
	assert.Equal(t, 7, matches[1].B)
}

func TestOtherOperatorKind(t *testing.T) {
	pattern := rewrite.Pattern{Operator: "F"}
	got := pattern.Partition("F [0, 4] ((p1) U (p2))", []int{2})
	assert.Equal(t, "F [0, 2] ((p1) U (p2)) ∧ F [3, 4] ((p1) U (p2))", got)
	assert.Equal(t, "F [0, 4] ((p1) U (p2))", rewrite.Globally.Partition("F [0, 4] ((p1) U (p2))", []int{2}))
}
