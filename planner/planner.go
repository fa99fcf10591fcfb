// Package planner implements the Table-size Planner (spec §4.2): the
// reporting-only computation of target per-table sizes for N participants
// across T tables.
package planner

// TableSizes returns a length-t slice where table index i (0-based) has
// size ceil(n/t) for i < n mod t, and floor(n/t) otherwise. The sum of the
// returned sizes always equals n.
//
// This is purely a reporting value: the solver computes its own per-round
// table sizes independently (cpsat/localsearch), and the Extractor (§4.6)
// recomputes actual sizes from the final assignment. TableSizes never
// feeds back into the model.
//
// Complexity: O(t) time, O(t) space.
func TableSizes(n, t int) []int {
	if t <= 0 {
		return nil
	}
	base := n / t
	rem := n % t
	sizes := make([]int, t)
	for i := 0; i < t; i++ {
		if i < rem {
			sizes[i] = base + 1
		} else {
			sizes[i] = base
		}
	}
	return sizes
}
