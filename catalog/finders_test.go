package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/model"
	"github.com/katalvlaran/ringcheck/ring"
)

func buildHexRingWithContract(t *testing.T, contract [][2]int) *model.State {
	t.Helper()
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	st, err := model.Build(g, contract)
	require.NoError(t, err)
	return st
}

func TestFindAB_FindsDeclaredContraction(t *testing.T) {
	st := buildHexRingWithContract(t, [][2]int{{0, 1}})
	pairs := findAB(st, 0)
	require.NotEmpty(t, pairs)
	found := false
	for _, p := range pairs {
		if p[0] == 0 && p[1] == 1 {
			found = true
		}
	}
	assert.True(t, found, "contracted pair (0,1) should have post-contraction distance 0")
}

func TestFindAB_NoMatchAtWrongDistance(t *testing.T) {
	st := buildHexRingWithContract(t, nil)
	assert.Empty(t, findAB(st, 0))
}

func TestFindABBC_FindsSharedMiddleVertex(t *testing.T) {
	st := buildHexRingWithContract(t, [][2]int{{0, 1}, {1, 2}})
	triples := findABBC(st, 0, 0)
	require.NotEmpty(t, triples)
	for _, tr := range triples {
		assert.Contains(t, tr, 1)
	}
}

func TestDedupTuples_RemovesDuplicatesPreservingOrder(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}, {1, 2}}
	out := dedupTuples(in)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, out)
}
