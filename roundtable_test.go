package roundtable_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	roundtable "github.com/katalvlaran/roundtable"
	"github.com/katalvlaran/roundtable/core"
)

func TestSchedule_InvalidRequestReturnsSentinel(t *testing.T) {
	_, err := roundtable.Schedule(context.Background(), core.Request{Participants: 0, Tables: 1, Rounds: 1})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSchedule_TrivialRequestSolves(t *testing.T) {
	req := core.Request{
		Participants:     2,
		Tables:           1,
		Rounds:           1,
		TimeLimitSeconds: 3,
	}
	resp, err := roundtable.Schedule(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.SolverStatus.Solved())
	require.Len(t, resp.Assignments, 1)
	require.ElementsMatch(t, []int{1, 2}, resp.Assignments[0][0])
}

func TestSchedule_ReportsTableSizes(t *testing.T) {
	req := core.Request{
		Participants:     6,
		Tables:           2,
		Rounds:           1,
		TimeLimitSeconds: 3,
	}
	resp, err := roundtable.Schedule(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, resp.TableSizes)
}
