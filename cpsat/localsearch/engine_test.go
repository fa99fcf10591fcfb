package localsearch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
	"github.com/katalvlaran/roundtable/cpsat/localsearch"
)

// TestEngine_TrivialModelIsFeasible builds the smallest legal model (one
// host, one guest, one round) — every hard constraint is forced to a
// single value, so the search has no real freedom and must converge
// immediately.
func TestEngine_TrivialModelIsFeasible(t *testing.T) {
	engine := localsearch.New()
	model, err := cpsat.BuildModel(engine, 2, 1, 1, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	status := engine.Solve(ctx, 3*time.Second, 2)

	require.True(t, status.Solved(), "expected a solved status, got %s", status)
	require.True(t, engine.Value(model.Assignment(1, 1, 0)), "host must sit at its own table")
	require.True(t, engine.Value(model.Assignment(2, 1, 0)), "the lone guest must sit somewhere, and there is only one table")
}

// TestEngine_NeverTogetherHonoredWhenRoomAllows builds two tables, two
// rounds, and a never-together pair among the guests; with enough tables
// and rounds the search should find a fully feasible assignment.
func TestEngine_NeverTogetherHonoredWhenRoomAllows(t *testing.T) {
	engine := localsearch.New()
	never := []core.Pair{{U: 3, V: 4}}
	model, err := cpsat.BuildModel(engine, 4, 2, 2, nil, never)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	status := engine.Solve(ctx, 5*time.Second, 4)
	require.True(t, status.Solved())

	for r := 0; r < 2; r++ {
		for tb := 1; tb <= 2; tb++ {
			both := engine.Value(model.Assignment(3, tb, r)) && engine.Value(model.Assignment(4, tb, r))
			require.False(t, both, "participants 3 and 4 must never share a table")
		}
	}
}

func TestEngine_ObjectiveValueZeroBeforeSolve(t *testing.T) {
	engine := localsearch.New()
	require.Equal(t, 0, engine.ObjectiveValue())
	require.False(t, engine.Value(cpsat.Var(0)))
}
