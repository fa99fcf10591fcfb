package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtable/core"
	"github.com/katalvlaran/roundtable/normalize"
)

func TestPairs_DropsSelfPairs(t *testing.T) {
	raw := []core.RawPair{{U: 3, V: 3}, {U: 1, V: 2}}
	got := normalize.Pairs(raw, 5)
	require.Equal(t, []core.Pair{{U: 1, V: 2}}, got)
}

func TestPairs_DropsOutOfRange(t *testing.T) {
	raw := []core.RawPair{{U: 0, V: 2}, {U: 1, V: 6}, {U: 1, V: 2}}
	got := normalize.Pairs(raw, 5)
	require.Equal(t, []core.Pair{{U: 1, V: 2}}, got)
}

func TestPairs_CanonicalizesOrder(t *testing.T) {
	raw := []core.RawPair{{U: 4, V: 2}}
	got := normalize.Pairs(raw, 5)
	require.Equal(t, []core.Pair{{U: 2, V: 4}}, got)
}

func TestPairs_DedupesAfterCanonicalization(t *testing.T) {
	raw := []core.RawPair{{U: 2, V: 4}, {U: 4, V: 2}}
	got := normalize.Pairs(raw, 5)
	require.Len(t, got, 1)
	require.Equal(t, core.Pair{U: 2, V: 4}, got[0])
}

func TestPairs_PreservesFirstSeenOrder(t *testing.T) {
	raw := []core.RawPair{{U: 3, V: 4}, {U: 1, V: 2}}
	got := normalize.Pairs(raw, 5)
	require.Equal(t, []core.Pair{{U: 3, V: 4}, {U: 1, V: 2}}, got)
}

func TestPairs_EmptyInput(t *testing.T) {
	got := normalize.Pairs(nil, 5)
	require.Empty(t, got)
}
