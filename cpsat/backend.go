// Package cpsat builds the constraint-satisfaction model for a round-table
// schedule (spec §4.3, §4.4) against an abstract solver capability set
// (spec §9), and assembles its weighted objective. It does not itself
// solve anything: package cpsat/localsearch supplies the one concrete
// Backend this repository ships.
//
// The Backend interface is deliberately small and backend-agnostic — any
// implementation supplying these seven operations is admissible (§9
// "Polymorphism"). The Model Builder never special-cases a backend.
package cpsat

import (
	"context"
	"time"

	"github.com/katalvlaran/roundtable/core"
)

// Var is an opaque handle to a boolean decision variable, assigned by a
// Backend at NewBoolVar time. Callers never construct a Var directly.
type Var int

// Sense is the relational sense of a linear constraint.
type Sense int

// The three relational senses a linear constraint may use.
const (
	LE Sense = iota // <=
	GE              // >=
	EQ              // ==
)

// Term is one coefficient*variable addend of a linear expression.
type Term struct {
	Var   Var
	Coeff int
}

// LinearExpr is a sum of Terms: Σ Coeff_i * Var_i.
type LinearExpr []Term

// Backend is the capability set a CP-SAT-style solver must expose for the
// Model Builder, Objective Assembler, and Solver Driver to use it (§9):
// build boolean variables, add linear constraints, add max-equality
// (boolean OR) constraints, maximize a linear expression, solve with a
// time bound and a worker count, read back a variable's value, and report
// a normalized status.
type Backend interface {
	// NewBoolVar allocates a fresh boolean decision variable. name is for
	// diagnostics only (logging); it has no semantic effect.
	NewBoolVar(name string) Var

	// AddLinear adds the hard constraint `expr <sense> bound`.
	AddLinear(expr LinearExpr, sense Sense, bound int)

	// AddMaxEquality adds the hard constraint y == OR(vars), i.e. y is 1
	// iff at least one of vars is 1. vars may be empty, in which case y is
	// constrained to 0.
	AddMaxEquality(y Var, vars []Var)

	// Maximize sets the objective to maximize expr. Called exactly once by
	// the Objective Assembler with the full combined weighted expression.
	Maximize(expr LinearExpr)

	// Solve runs the backend with the given wall-clock time bound and
	// requested parallel search worker count, and returns the normalized
	// status (§4.5). A deadline on ctx that falls before timeLimit tightens
	// the bound; cancelling ctx does not otherwise stop the search, and ctx
	// is not a substitute for timeLimit.
	Solve(ctx context.Context, timeLimit time.Duration, numWorkers int) core.SolverStatus

	// Value reads v's value in the best solution found by the last Solve
	// call. Only meaningful when the returned status was OPTIMAL or
	// FEASIBLE.
	Value(v Var) bool

	// ObjectiveValue reads the objective of the best solution found by the
	// last Solve call. Only meaningful when the returned status was
	// OPTIMAL or FEASIBLE; otherwise 0 (§4.6).
	ObjectiveValue() int
}
