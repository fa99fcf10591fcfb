package localsearch

import "github.com/katalvlaran/roundtable/cpsat"

// snapshot is the read-only, precomputed view of a recorded model that
// every search worker shares. Building the per-variable indices once
// (instead of per-worker) keeps flipDelta's hot path to exactly the
// constraints that mention the flipped variable.
type snapshot struct {
	numVars int
	linear  []linearConstraint
	maxEq   []maxEqConstraint

	objCoeff []int // objCoeff[v] is v's coefficient in the objective, 0 if absent

	varLinear [][]int // varLinear[v] = indices into linear that reference v
	varMaxEq  [][]int // varMaxEq[v] = indices into maxEq that reference v
}

func newSnapshot(numVars int, linear []linearConstraint, maxEq []maxEqConstraint, objective cpsat.LinearExpr) *snapshot {
	s := &snapshot{
		numVars:   numVars,
		linear:    linear,
		maxEq:     maxEq,
		objCoeff:  make([]int, numVars),
		varLinear: make([][]int, numVars),
		varMaxEq:  make([][]int, numVars),
	}

	for _, term := range objective {
		s.objCoeff[term.Var] += term.Coeff
	}

	for ci, c := range linear {
		seen := make(map[cpsat.Var]struct{}, len(c.terms))
		for _, term := range c.terms {
			if _, dup := seen[term.Var]; dup {
				continue
			}
			seen[term.Var] = struct{}{}
			s.varLinear[term.Var] = append(s.varLinear[term.Var], ci)
		}
	}

	for ci, c := range maxEq {
		s.varMaxEq[c.y] = append(s.varMaxEq[c.y], ci)
		seen := make(map[cpsat.Var]struct{}, len(c.vars))
		for _, v := range c.vars {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			s.varMaxEq[v] = append(s.varMaxEq[v], ci)
		}
	}

	return s
}

// totalViolations sums every constraint's violation under assign.
func (s *snapshot) totalViolations(assign []bool) int {
	total := 0
	for _, c := range s.linear {
		total += c.violation(assign)
	}
	for _, c := range s.maxEq {
		total += c.violation(assign)
	}
	return total
}

// objectiveValue sums Σ coeff*x over every variable currently true.
func (s *snapshot) objectiveValue(assign []bool) int {
	total := 0
	for v, coeff := range s.objCoeff {
		if coeff != 0 && assign[v] {
			total += coeff
		}
	}
	return total
}
