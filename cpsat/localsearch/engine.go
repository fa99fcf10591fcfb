// Package localsearch is the one concrete cpsat.Backend this repository
// ships: a parallel, deterministically-seeded penalty-guided local search
// over the boolean model cpsat.BuildModel constructs (§9 "Design notes").
//
// It plays the same role here that tsp's branch-and-bound and 2-opt/3-opt
// heuristics play for the traveling-salesman problem: a dedicated engine
// struct holding precomputed indices and search state, a sparse deadline
// check instead of a check-every-iteration cost, and deterministic
// per-worker RNG streams derived from one base seed (see rng.go) so a
// given model and worker count always explore the same sequence of
// candidate assignments.
//
// It is a heuristic, not an exact solver: it can certify FEASIBLE (all
// hard constraints satisfied) but never certifies INFEASIBLE, since a
// failed search never proves no assignment exists. See Engine.Solve.
package localsearch

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
)

// Engine accumulates the variables and constraints cpsat.BuildModel
// records, then searches for a maximal-objective feasible assignment when
// Solve is called. The zero value is ready to use.
type Engine struct {
	names     []string
	linear    []linearConstraint
	maxEq     []maxEqConstraint
	objective cpsat.LinearExpr

	solved    bool
	status    core.SolverStatus
	best      []bool
	bestValue int
}

// New returns a ready-to-use Engine. Equivalent to new(Engine); provided
// for symmetry with the rest of this module's constructors.
func New() *Engine {
	return &Engine{}
}

// NewBoolVar implements cpsat.Backend.
func (e *Engine) NewBoolVar(name string) cpsat.Var {
	v := cpsat.Var(len(e.names))
	e.names = append(e.names, name)
	return v
}

// AddLinear implements cpsat.Backend.
func (e *Engine) AddLinear(expr cpsat.LinearExpr, sense cpsat.Sense, bound int) {
	e.linear = append(e.linear, linearConstraint{terms: expr, sense: sense, bound: bound})
}

// AddMaxEquality implements cpsat.Backend.
func (e *Engine) AddMaxEquality(y cpsat.Var, vars []cpsat.Var) {
	e.maxEq = append(e.maxEq, maxEqConstraint{y: y, vars: vars})
}

// Maximize implements cpsat.Backend. Called exactly once by the Objective
// Assembler; a later call replaces the objective rather than accumulating
// into it, matching cpsat.Backend's documented contract.
func (e *Engine) Maximize(expr cpsat.LinearExpr) {
	e.objective = expr
}

// Value implements cpsat.Backend.
func (e *Engine) Value(v cpsat.Var) bool {
	if !e.solved || int(v) >= len(e.best) {
		return false
	}
	return e.best[v]
}

// ObjectiveValue implements cpsat.Backend.
func (e *Engine) ObjectiveValue() int {
	if !e.solved {
		return 0
	}
	return e.bestValue
}

// flipsPerWorker bounds one worker's flip budget so a worker with an
// exhausted wall-clock deadline still terminates in bounded steps; the
// deadline check (searchWorker.deadlineReached) is what actually stops
// search early in practice.
const flipsPerWorker = 2_000_000

// Solve implements cpsat.Backend. It builds one immutable snapshot of the
// recorded constraints and objective, then runs numWorkers independent
// deterministic searches in parallel (clamped to at least 1), each
// starting from its own derived RNG stream, and keeps the best feasible
// result across all workers — ties broken by lowest worker index so the
// outcome never depends on goroutine completion order.
func (e *Engine) Solve(ctx context.Context, timeLimit time.Duration, numWorkers int) core.SolverStatus {
	if numWorkers < 1 {
		numWorkers = 1
	}

	snap := newSnapshot(len(e.names), e.linear, e.maxEq, e.objective)

	deadline := time.Now().Add(timeLimit)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	results := make([]workerResult, numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := deriveRNG(uint64(id))
			worker := newSearchWorker(snap, rng, deadline)
			results[id] = worker.run(flipsPerWorker)
		}(i)
	}
	wg.Wait()

	bestIdx := -1
	for i, res := range results {
		if bestIdx == -1 || score(res.violations, res.objective) > score(results[bestIdx].violations, results[bestIdx].objective) {
			bestIdx = i
		}
	}

	e.best = results[bestIdx].assign
	e.bestValue = results[bestIdx].objective
	e.solved = true

	if results[bestIdx].violations == 0 {
		e.status = core.StatusFeasible
	} else {
		e.status = core.StatusUnknown
	}
	return e.status
}
