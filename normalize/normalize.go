// Package normalize implements the Input Normalizer (spec §4.1): it turns
// a caller-supplied list of integer pairs into the canonical, deduplicated
// pair set the Model Builder consumes.
//
// Design principles (mirrors tsp/validate.go in the teacher):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on malformed semantic input — filtering of
//     semantically bad pairs (self-pairs, out-of-range ids, duplicates) is
//     silent by contract; only structurally malformed input is an error,
//     and RawPair's int fields make that case unreachable from JSON-decoded
//     input (a non-integer simply fails to decode upstream).
//   - Stable with respect to first-seen order, so error reporting and
//     snapshot tests stay deterministic.
package normalize

import "github.com/katalvlaran/roundtable/core"

// Pairs canonicalizes raw into a deduplicated list of core.Pair values
// with 1 <= u < v <= n, preserving first-seen order.
//
// Drop rules, applied in order, per pair:
//  1. u == v (self-pair).
//  2. u or v outside [1, n].
//  3. The canonical (min, max) pair was already seen.
//
// Complexity: O(len(raw)) time and space.
func Pairs(raw []core.RawPair, n int) []core.Pair {
	out := make([]core.Pair, 0, len(raw))
	seen := make(map[core.Pair]struct{}, len(raw))

	for _, rp := range raw {
		u, v := rp.U, rp.V
		if u == v {
			continue
		}
		if u < 1 || u > n || v < 1 || v > n {
			continue
		}
		if u > v {
			u, v = v, u
		}
		p := core.Pair{U: u, V: v}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
