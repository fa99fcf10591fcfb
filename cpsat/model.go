// Package cpsat - Model Builder (spec §4.3).
//
// BuildModel instantiates the decision-variable lattice X[p,t,r] and the
// constraint families of §3 against a Backend, plus the pair-meeting
// linearization variables the Objective Assembler needs. It owns all
// decision variables exclusively (§3 "Ownership"); callers only ever read
// them back through Model.Assignment after a solve.
//
// Why this shape (§4.3, §9 "Design notes"): pair meetings are quadratic in
// the raw X variables. Linearizing per table (z <= X_u, z <= X_v,
// z >= X_u + X_v - 1) turns each meeting into an affine expression, and
// size balance is expressed as a pairwise spread bound on table sizes
// rather than auxiliary integer variables, since the Backend capability
// set (§9) only offers boolean variables and linear constraints over them.
package cpsat

import (
	"fmt"

	"github.com/katalvlaran/roundtable/core"
)

// Model is the built constraint model: variable handles plus the problem
// shape needed to interpret them. The Model Builder is the exclusive owner
// of every Var it allocates; Extractor only ever reads them via Assignment.
type Model struct {
	Backend Backend

	N, T, R    int
	SamePairs  []core.Pair
	NeverPairs []core.Pair

	// x[p-1][t-1][r] is X[p,t,r].
	x [][][]Var
}

// Assignment returns the Var for participant p at table t in round r
// (1-based p and t, 0-based r).
func (m *Model) Assignment(p, t, r int) Var {
	return m.x[p-1][t-1][r]
}

// BuildModel instantiates every decision variable and adds every §3
// constraint family to backend, plus the linearization and objective
// variables the Objective Assembler needs. samePairs and neverPairs must
// already be normalized (normalize.Pairs).
//
// Preconditions (§4.3): n >= t >= 1, r >= 1; violation returns
// core.ErrInvalidProblem before any variable is allocated.
//
// Complexity: O(n*t*r) variables for X alone, plus O(|samePairs|*t*r) for
// same-once linearization and O(g^2*t*r) for guest-pair uniqueness, where
// g = n - t (§5 resource model).
func BuildModel(backend Backend, n, t, r int, samePairs, neverPairs []core.Pair) (*Model, error) {
	if err := core.ValidateProblem(n, t, r); err != nil {
		return nil, err
	}

	m := &Model{
		Backend:    backend,
		N:          n,
		T:          t,
		R:          r,
		SamePairs:  samePairs,
		NeverPairs: neverPairs,
	}

	m.buildAssignmentVars()
	m.addOneTablePerRound()
	m.addHostPinning()
	m.addBalance()
	m.addNeverTogether()

	meetVars := m.addSameOnceLinearization()
	meetHostByPair := m.addMeetHostDiversity()
	m.addGuestUniqueness()
	visited := m.addGuestHostVisits()
	pairHostUsed := m.addPairHostUsedDiversity(meetHostByPair)

	assembleObjective(backend, meetVars, visited, pairHostUsed)

	return m, nil
}

// buildAssignmentVars allocates X[p,t,r] for every participant, table, and
// round.
func (m *Model) buildAssignmentVars() {
	m.x = make([][][]Var, m.N)
	for p := 1; p <= m.N; p++ {
		row := make([][]Var, m.T)
		for t := 1; t <= m.T; t++ {
			col := make([]Var, m.R)
			for r := 0; r < m.R; r++ {
				col[r] = m.Backend.NewBoolVar(fmt.Sprintf("x_p%d_t%d_r%d", p, t, r))
			}
			row[t-1] = col
		}
		m.x[p-1] = row
	}
}

// addOneTablePerRound adds ∀p,r: Σ_t X[p,t,r] = 1 (§3 "One-table").
func (m *Model) addOneTablePerRound() {
	for p := 1; p <= m.N; p++ {
		for r := 0; r < m.R; r++ {
			terms := make(LinearExpr, m.T)
			for t := 1; t <= m.T; t++ {
				terms[t-1] = Term{Var: m.Assignment(p, t, r), Coeff: 1}
			}
			m.Backend.AddLinear(terms, EQ, 1)
		}
	}
}

// addHostPinning adds ∀h∈1..T, ∀r: X[h,h,r]=1; X[h,t,r]=0 for t≠h
// (§3 "Host pinning"). Pinning is expressed as ordinary linear equalities
// so every Backend implementation sees a uniform constraint stream; a
// backend is free to propagate single-variable equalities before encoding
// pair-meeting variables (§4.3 "Tie-breaks and edge cases").
func (m *Model) addHostPinning() {
	for h := 1; h <= m.T; h++ {
		for r := 0; r < m.R; r++ {
			for t := 1; t <= m.T; t++ {
				want := 0
				if t == h {
					want = 1
				}
				m.Backend.AddLinear(LinearExpr{{Var: m.Assignment(h, t, r), Coeff: 1}}, EQ, want)
			}
		}
	}
}

// addBalance adds ∀r: max_t size(t,r) - min_t size(t,r) <= 1 (§3
// "Balance"), expressed without auxiliary integer variables as a pairwise
// spread bound: for every ordered pair of tables (t1,t2) in the same
// round, size(t1,r) - size(t2,r) <= 1. This is equivalent to the
// max-minus-min bound and stays within the Backend's boolean-linear
// capability set.
func (m *Model) addBalance() {
	for r := 0; r < m.R; r++ {
		for t1 := 1; t1 <= m.T; t1++ {
			for t2 := 1; t2 <= m.T; t2++ {
				if t1 == t2 {
					continue
				}
				terms := make(LinearExpr, 0, 2*m.N)
				for p := 1; p <= m.N; p++ {
					terms = append(terms, Term{Var: m.Assignment(p, t1, r), Coeff: 1})
				}
				for p := 1; p <= m.N; p++ {
					terms = append(terms, Term{Var: m.Assignment(p, t2, r), Coeff: -1})
				}
				m.Backend.AddLinear(terms, LE, 1)
			}
		}
	}
}

// addNeverTogether adds ∀(u,v)∈NeverTogether, ∀t,r: X[u,t,r]+X[v,t,r]<=1
// (§3 "Never").
func (m *Model) addNeverTogether() {
	for _, pair := range m.NeverPairs {
		for r := 0; r < m.R; r++ {
			for t := 1; t <= m.T; t++ {
				terms := LinearExpr{
					{Var: m.Assignment(pair.U, t, r), Coeff: 1},
					{Var: m.Assignment(pair.V, t, r), Coeff: 1},
				}
				m.Backend.AddLinear(terms, LE, 1)
			}
		}
	}
}

// addPairMeetLinearization adds the standard z <= X_u; z <= X_v;
// z >= X_u + X_v - 1 linearization (§3, §9 "Pair-meeting linearization")
// for one pair at one table/round, returning the new z variable.
func (m *Model) addPairMeetLinearization(u, v, t, r int, name string) Var {
	z := m.Backend.NewBoolVar(name)
	xu := m.Assignment(u, t, r)
	xv := m.Assignment(v, t, r)
	m.Backend.AddLinear(LinearExpr{{Var: z, Coeff: 1}, {Var: xu, Coeff: -1}}, LE, 0)
	m.Backend.AddLinear(LinearExpr{{Var: z, Coeff: 1}, {Var: xv, Coeff: -1}}, LE, 0)
	m.Backend.AddLinear(LinearExpr{{Var: z, Coeff: 1}, {Var: xu, Coeff: -1}, {Var: xv, Coeff: -1}}, GE, -1)
	return z
}

// addSameOnceLinearization builds z[i,t,r], meet[i,r] = OR_t z[i,t,r], and
// the SameOnce cap Σ_r meet[i,r] <= 1 (§3 "SameOnce cap"). It returns
// meet[i][r] for the Objective Assembler.
func (m *Model) addSameOnceLinearization() [][]Var {
	meet := make([][]Var, len(m.SamePairs))
	for i, pair := range m.SamePairs {
		meetRound := make([]Var, m.R)
		for r := 0; r < m.R; r++ {
			zVars := make([]Var, m.T)
			for t := 1; t <= m.T; t++ {
				zVars[t-1] = m.addPairMeetLinearization(pair.U, pair.V, t, r,
					fmt.Sprintf("z_i%d_t%d_r%d", i, t, r))
			}
			meetVar := m.Backend.NewBoolVar(fmt.Sprintf("meet_i%d_r%d", i, r))
			m.Backend.AddMaxEquality(meetVar, zVars)
			meetRound[r] = meetVar
		}

		capTerms := make(LinearExpr, m.R)
		for r := 0; r < m.R; r++ {
			capTerms[r] = Term{Var: meetRound[r], Coeff: 1}
		}
		m.Backend.AddLinear(capTerms, LE, 1)

		meet[i] = meetRound
	}
	return meet
}

// addMeetHostDiversity builds meetHost[i,h] = OR_r z[i,h,r] (§4.3
// "Variables") by re-deriving the per-host z variables (the table t=h
// slice of the same-once linearization). Re-deriving rather than caching
// keeps addSameOnceLinearization's returned shape limited to what the
// objective needs (meet[i][r]) — meetHost is purely an internal diversity
// signal, never read back by the Extractor.
func (m *Model) addMeetHostDiversity() [][]Var {
	meetHost := make([][]Var, len(m.SamePairs))
	for i, pair := range m.SamePairs {
		perHost := make([]Var, m.T)
		for h := 1; h <= m.T; h++ {
			zAtHost := make([]Var, m.R)
			for r := 0; r < m.R; r++ {
				zAtHost[r] = m.addPairMeetLinearization(pair.U, pair.V, h, r,
					fmt.Sprintf("zh_i%d_h%d_r%d", i, h, r))
			}
			mh := m.Backend.NewBoolVar(fmt.Sprintf("meet_host_i%d_h%d", i, h))
			m.Backend.AddMaxEquality(mh, zAtHost)
			perHost[h-1] = mh
		}
		meetHost[i] = perHost
	}
	return meetHost
}

// addGuestUniqueness adds, for every pair of guests u<v, the global
// pairwise uniqueness cap Σ_r meets(u,v,r) <= 1 (§3 "Guest uniqueness").
func (m *Model) addGuestUniqueness() {
	for u := m.T + 1; u <= m.N; u++ {
		for v := u + 1; v <= m.N; v++ {
			meetRound := make(LinearExpr, m.R)
			for r := 0; r < m.R; r++ {
				zVars := make([]Var, m.T)
				for t := 1; t <= m.T; t++ {
					zVars[t-1] = m.addPairMeetLinearization(u, v, t, r,
						fmt.Sprintf("pair_u%d_v%d_t%d_r%d", u, v, t, r))
				}
				meetVar := m.Backend.NewBoolVar(fmt.Sprintf("meet_u%d_v%d_r%d", u, v, r))
				m.Backend.AddMaxEquality(meetVar, zVars)
				meetRound[r] = Term{Var: meetVar, Coeff: 1}
			}
			m.Backend.AddLinear(meetRound, LE, 1)
		}
	}
}

// addGuestHostVisits builds visited[p,h] = OR_r X[p,h,r] for every guest p
// and host h (§4.3 "Variables"), for the host-diversity objective term.
func (m *Model) addGuestHostVisits() [][]Var {
	visited := make([][]Var, m.N-m.T)
	for p := m.T + 1; p <= m.N; p++ {
		perHost := make([]Var, m.T)
		for h := 1; h <= m.T; h++ {
			roundVars := make([]Var, m.R)
			for r := 0; r < m.R; r++ {
				roundVars[r] = m.Assignment(p, h, r)
			}
			v := m.Backend.NewBoolVar(fmt.Sprintf("visited_p%d_h%d", p, h))
			m.Backend.AddMaxEquality(v, roundVars)
			perHost[h-1] = v
		}
		visited[p-m.T-1] = perHost
	}
	return visited
}

// addPairHostUsedDiversity builds pairHostUsed[p,h] = OR over
// meetHost[i,h] for every SameOnce pair i that participant p belongs to
// (§4.3 "Variables"), for the pair-host-spread objective term.
func (m *Model) addPairHostUsedDiversity(meetHost [][]Var) []Var {
	idxByParticipant := make(map[int][]int, len(m.SamePairs)*2)
	for i, pair := range m.SamePairs {
		idxByParticipant[pair.U] = append(idxByParticipant[pair.U], i)
		idxByParticipant[pair.V] = append(idxByParticipant[pair.V], i)
	}

	var pairHostUsed []Var
	for p := 1; p <= m.N; p++ {
		idxs := idxByParticipant[p]
		if len(idxs) == 0 {
			continue
		}
		for h := 1; h <= m.T; h++ {
			vars := make([]Var, 0, len(idxs))
			for _, i := range idxs {
				vars = append(vars, meetHost[i][h-1])
			}
			y := m.Backend.NewBoolVar(fmt.Sprintf("pair_host_used_p%d_h%d", p, h))
			m.Backend.AddMaxEquality(y, vars)
			pairHostUsed = append(pairHostUsed, y)
		}
	}
	return pairHostUsed
}
