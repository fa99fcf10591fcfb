package localsearch

import "github.com/katalvlaran/roundtable/cpsat"

// linearConstraint is one recorded `expr <sense> bound` constraint
// (cpsat.Backend.AddLinear).
type linearConstraint struct {
	terms cpsat.LinearExpr
	sense cpsat.Sense
	bound int
}

// evaluate returns Σ coeff*x for the current assignment.
func (c linearConstraint) evaluate(assign []bool) int {
	sum := 0
	for _, term := range c.terms {
		if assign[term.Var] {
			sum += term.Coeff
		}
	}
	return sum
}

// violation returns how far evaluate(assign) is from satisfying the
// constraint; 0 means satisfied.
func (c linearConstraint) violation(assign []bool) int {
	sum := c.evaluate(assign)
	switch c.sense {
	case cpsat.LE:
		if d := sum - c.bound; d > 0 {
			return d
		}
		return 0
	case cpsat.GE:
		if d := c.bound - sum; d > 0 {
			return d
		}
		return 0
	default: // cpsat.EQ
		d := sum - c.bound
		if d < 0 {
			d = -d
		}
		return d
	}
}

// maxEqConstraint is one recorded y == OR(vars) constraint
// (cpsat.Backend.AddMaxEquality).
type maxEqConstraint struct {
	y    cpsat.Var
	vars []cpsat.Var
}

// target returns the OR(vars) value implied by assign.
func (c maxEqConstraint) target(assign []bool) bool {
	for _, v := range c.vars {
		if assign[v] {
			return true
		}
	}
	return false
}

// violation returns 0 if assign[y] already equals target(assign), else 1.
func (c maxEqConstraint) violation(assign []bool) int {
	if assign[c.y] == c.target(assign) {
		return 0
	}
	return 1
}

// penaltyWeight scales total constraint violation against the objective so
// any feasible assignment outranks any infeasible one, regardless of
// objective value: the model's objective terms are bounded well under this
// weight (§4.4's largest coefficient is 1000; penaltyWeight dwarfs any
// realizable sum of those terms for the participant counts this module
// targets).
const penaltyWeight = 1_000_000

// workerResult is what one search worker hands back to Engine.Solve.
type workerResult struct {
	assign     []bool
	violations int
	objective  int
}

// score combines violations and objective into the single quantity local
// search climbs: fewer violations always wins; among equally-feasible
// assignments, higher objective wins.
func score(violations, objective int) int {
	return -penaltyWeight*violations + objective
}
