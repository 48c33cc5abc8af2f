package signal

import (
	"math"
	"sort"
)

// PartitionPoints returns the integer-rounded times at which any
// predicate's truth value differs from the previous sample, sorted and
// duplicate-free. Rounding is half away from zero, so two transitions
// whose times round to the same integer collapse into one point.
// Comparisons start at the second sample, so every point lies strictly
// inside (0, horizon]. A trace with a constant truth vector yields an
// empty set.
func PartitionPoints(trace Trace) []int {
	set := make(map[int]struct{})
	for i := 1; i < len(trace); i++ {
		if !sameValues(trace[i].Values, trace[i-1].Values) {
			set[int(math.Round(trace[i].T))] = struct{}{}
		}
	}

	points := make([]int, 0, len(set))
	for p := range set {
		points = append(points, p)
	}
	sort.Ints(points)
	return points
}

func sameValues(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
