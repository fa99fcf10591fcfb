package cpsat

// Objective weights (spec §3 "Objective", §4.4): a strict lexicographic
// preference order (same-once satisfaction ≫ pair-host spread ≫ guest
// host-visit diversity) realized as one weighted sum. The order is strict
// only while a lower tier has fewer true terms than the weight ratio to the
// tier above (fewer than 5 visited terms per pair-host term, fewer than 200
// pair-host terms per same-once meeting); beyond that, lower-tier terms
// can outweigh one unit of a higher tier.
const (
	weightSameOnce    = 1000 // α: satisfying one SameOnce pair
	weightHostSpread  = 5    // γ: one more distinct host a SameOnce pair meets at
	weightHostVisited = 1    // β: one more distinct host a guest has visited
)

// assembleObjective builds the single weighted Maximize call (§4.4) from
// the three variable families the Model Builder produced:
//
//	meet[i][r]       — pair i met at some table in round r (SameOnce term)
//	visited[g][h]    — guest g has sat at host h's table at least once
//	pairHostUsed[·]  — one entry per (participant-in-a-pair, host) that
//	                   fired at least once across that pair's meetings
//
// Each family contributes Σ(weight * var) to one LinearExpr passed to a
// single Backend.Maximize call, matching the "exactly once" contract of
// Backend.Maximize (§9).
func assembleObjective(backend Backend, meet [][]Var, visited [][]Var, pairHostUsed []Var) {
	var terms LinearExpr

	for _, perRound := range meet {
		for _, v := range perRound {
			terms = append(terms, Term{Var: v, Coeff: weightSameOnce})
		}
	}
	for _, perHost := range visited {
		for _, v := range perHost {
			terms = append(terms, Term{Var: v, Coeff: weightHostVisited})
		}
	}
	for _, v := range pairHostUsed {
		terms = append(terms, Term{Var: v, Coeff: weightHostSpread})
	}

	backend.Maximize(terms)
}
