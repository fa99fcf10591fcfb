// Package extractor implements the Result Extractor & Auditor (spec §4.6):
// it reads a solved cpsat.Model back through the Backend's Value calls and
// independently recomputes every audited quantity in core.Response
// straight from the final X[p,t,r] assignment — it does not trust any
// internal linearization variable the Model Builder allocated along the
// way.
//
// "Audit, not fallback" (§4.6): SatisfiedSameOncePairs,
// UnsatisfiedSameOncePairs, and NeverTogetherViolations are derived purely
// by scanning which participants share a table in which round, the same
// co-occurrence test a human auditor would run over the raw assignment.
package extractor

import (
	"sort"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
	"github.com/katalvlaran/roundtable/planner"
)

// Extract builds the full core.Response from a solved model. status and
// objectiveValue come from the same Backend.Solve call that produced the
// assignment backend now holds; Extract does not call Solve itself.
//
// If status does not carry a usable assignment (§4.6: anything other than
// OPTIMAL or FEASIBLE), Extract returns a Response with empty result
// fields and the given status, skipping every audit pass — there is
// nothing to audit.
func Extract(backend cpsat.Backend, model *cpsat.Model, status core.SolverStatus, objectiveValue int) core.Response {
	resp := core.Response{
		Participants:  model.N,
		Tables:        model.T,
		Rounds:        model.R,
		TableSizes:    planner.TableSizes(model.N, model.T),
		SolverStatus:  status,
		ObjectiveValue: 0,
	}

	if !status.Solved() {
		return resp
	}

	resp.ObjectiveValue = objectiveValue
	resp.Assignments = buildAssignments(backend, model)
	resp.TableSizesPerRound = tableSizesFromAssignments(resp.Assignments, model)
	resp.SatisfiedSameOncePairs, resp.UnsatisfiedSameOncePairs = auditSamePairs(resp.Assignments, model)
	resp.NeverTogetherViolations = auditNeverPairs(resp.Assignments, model)

	return resp
}

// buildAssignments renders assignments[r][t] = sorted list of participant
// ids seated at table t in round r, read directly from model.Assignment
// via backend.Value — the single source of truth every audit below derives
// from.
func buildAssignments(backend cpsat.Backend, model *cpsat.Model) [][][]int {
	assignments := make([][][]int, model.R)
	for r := 0; r < model.R; r++ {
		tables := make([][]int, model.T)
		for t := 1; t <= model.T; t++ {
			var seated []int
			for p := 1; p <= model.N; p++ {
				if backend.Value(model.Assignment(p, t, r)) {
					seated = append(seated, p)
				}
			}
			sort.Ints(seated)
			tables[t-1] = seated
		}
		assignments[r] = tables
	}
	return assignments
}

// tableSizesFromAssignments recomputes actual per-round table sizes from
// the assignment, independent of planner.TableSizes's target values (§4.6:
// the Extractor never trusts the Planner's reporting-only numbers).
func tableSizesFromAssignments(assignments [][][]int, model *cpsat.Model) [][]int {
	sizes := make([][]int, model.R)
	for r, tables := range assignments {
		row := make([]int, len(tables))
		for t, seated := range tables {
			row[t] = len(seated)
		}
		sizes[r] = row
	}
	return sizes
}

// auditSamePairs scans assignments directly for co-occurrence: a SameOnce
// pair is satisfied iff its two participants share some table in some
// round at least once.
func auditSamePairs(assignments [][][]int, model *cpsat.Model) (satisfied, unsatisfied [][]int) {
	for _, pair := range model.SamePairs {
		if pairMeetsSomewhere(assignments, pair.U, pair.V) {
			satisfied = append(satisfied, pair.AsSlice())
		} else {
			unsatisfied = append(unsatisfied, pair.AsSlice())
		}
	}
	return satisfied, unsatisfied
}

// auditNeverPairs scans assignments directly for any round/table where a
// NeverTogether pair was seated together despite the model's hard
// constraint — an audit trail, not an expectation of finding any.
func auditNeverPairs(assignments [][][]int, model *cpsat.Model) [][]int {
	var violations [][]int
	for _, pair := range model.NeverPairs {
		if pairMeetsSomewhere(assignments, pair.U, pair.V) {
			violations = append(violations, pair.AsSlice())
		}
	}
	return violations
}

// pairMeetsSomewhere reports whether u and v are ever seated at the same
// table in the same round, scanning the rendered assignment directly.
func pairMeetsSomewhere(assignments [][][]int, u, v int) bool {
	for _, tables := range assignments {
		for _, seated := range tables {
			hasU, hasV := false, false
			for _, p := range seated {
				if p == u {
					hasU = true
				}
				if p == v {
					hasV = true
				}
			}
			if hasU && hasV {
				return true
			}
		}
	}
	return false
}
