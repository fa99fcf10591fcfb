package extractor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/cpsat"
	"github.com/katalvlaran/roundtable/cpsat/localsearch"
	"github.com/katalvlaran/roundtable/extractor"
)

func TestExtract_UnsolvedStatusYieldsEmptyResponse(t *testing.T) {
	engine := localsearch.New()
	model, err := cpsat.BuildModel(engine, 2, 1, 1, nil, nil)
	require.NoError(t, err)

	resp := extractor.Extract(engine, model, core.StatusModelInvalid, 0)
	require.Equal(t, core.StatusModelInvalid, resp.SolverStatus)
	require.Nil(t, resp.Assignments)
	require.Equal(t, 0, resp.ObjectiveValue)
}

func TestExtract_TrivialModelRendersAssignmentsAndAudits(t *testing.T) {
	engine := localsearch.New()
	same := []core.Pair{{U: 1, V: 2}}
	model, err := cpsat.BuildModel(engine, 2, 1, 1, same, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	status := engine.Solve(ctx, 3*time.Second, 2)
	require.True(t, status.Solved())

	resp := extractor.Extract(engine, model, status, engine.ObjectiveValue())
	require.Equal(t, 2, resp.Participants)
	require.Equal(t, 1, resp.Tables)
	require.Equal(t, 1, resp.Rounds)
	require.Len(t, resp.Assignments, 1)
	require.Len(t, resp.Assignments[0], 1)
	require.ElementsMatch(t, []int{1, 2}, resp.Assignments[0][0])

	// Only one table exists, so the same-once pair (1,2) must have met.
	require.Equal(t, [][]int{{1, 2}}, resp.SatisfiedSameOncePairs)
	require.Empty(t, resp.UnsatisfiedSameOncePairs)
	require.Empty(t, resp.NeverTogetherViolations)
}
