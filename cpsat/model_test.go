package cpsat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
)

// fakeBackend is a minimal cpsat.Backend recorder used to assert the
// Model Builder's shape (variable/constraint counts, objective assembled
// exactly once) without depending on any particular solving strategy.
type fakeBackend struct {
	numVars      int
	linearCalls  int
	maxEqCalls   int
	maximizeCalls int
	lastObjective cpsat.LinearExpr
}

func (f *fakeBackend) NewBoolVar(name string) cpsat.Var {
	v := cpsat.Var(f.numVars)
	f.numVars++
	return v
}

func (f *fakeBackend) AddLinear(expr cpsat.LinearExpr, sense cpsat.Sense, bound int) {
	f.linearCalls++
}

func (f *fakeBackend) AddMaxEquality(y cpsat.Var, vars []cpsat.Var) {
	f.maxEqCalls++
}

func (f *fakeBackend) Maximize(expr cpsat.LinearExpr) {
	f.maximizeCalls++
	f.lastObjective = expr
}

func (f *fakeBackend) Solve(ctx context.Context, timeLimit time.Duration, numWorkers int) core.SolverStatus {
	return core.StatusFeasible
}

func (f *fakeBackend) Value(v cpsat.Var) bool { return false }

func (f *fakeBackend) ObjectiveValue() int { return 0 }

func TestBuildModel_RejectsInvalidProblem(t *testing.T) {
	b := &fakeBackend{}
	_, err := cpsat.BuildModel(b, 2, 3, 1, nil, nil)
	require.ErrorIs(t, err, core.ErrInvalidProblem)
}

func TestBuildModel_AllocatesAssignmentLattice(t *testing.T) {
	b := &fakeBackend{}
	model, err := cpsat.BuildModel(b, 6, 2, 3, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 6, model.N)
	require.Equal(t, 2, model.T)
	require.Equal(t, 3, model.R)

	// Every X[p,t,r] must be a distinct, valid handle.
	seen := make(map[cpsat.Var]struct{})
	for p := 1; p <= 6; p++ {
		for tb := 1; tb <= 2; tb++ {
			for r := 0; r < 3; r++ {
				v := model.Assignment(p, tb, r)
				seen[v] = struct{}{}
			}
		}
	}
	require.Len(t, seen, 6*2*3)
}

func TestBuildModel_AssemblesObjectiveExactlyOnce(t *testing.T) {
	b := &fakeBackend{}
	_, err := cpsat.BuildModel(b, 6, 2, 3, []core.Pair{{U: 3, V: 5}}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, b.maximizeCalls)
	require.NotEmpty(t, b.lastObjective)
}

func TestBuildModel_SamePairsAddConstraints(t *testing.T) {
	withoutPairs := &fakeBackend{}
	_, err := cpsat.BuildModel(withoutPairs, 6, 2, 3, nil, nil)
	require.NoError(t, err)

	withPairs := &fakeBackend{}
	_, err = cpsat.BuildModel(withPairs, 6, 2, 3, []core.Pair{{U: 3, V: 5}}, nil)
	require.NoError(t, err)

	require.Greater(t, withPairs.linearCalls, withoutPairs.linearCalls)
	require.Greater(t, withPairs.maxEqCalls, withoutPairs.maxEqCalls)
}
