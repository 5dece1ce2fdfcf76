package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/model"
	"github.com/katalvlaran/ringcheck/reduce"
	"github.com/katalvlaran/ringcheck/ring"
)

func TestIsForbiddenCut_Table(t *testing.T) {
	assert.True(t, reduce.IsForbiddenCut(4, 1))
	assert.False(t, reduce.IsForbiddenCut(4, 0))
	assert.True(t, reduce.IsForbiddenCut(5, 2))
	assert.False(t, reduce.IsForbiddenCut(5, 1))
	assert.True(t, reduce.IsForbiddenCut(6, 4))
	assert.False(t, reduce.IsForbiddenCut(6, 3))
	assert.True(t, reduce.IsForbiddenCut(7, 5))
	assert.False(t, reduce.IsForbiddenCut(7, 4))
	assert.False(t, reduce.IsForbiddenCut(8, 100))
}

func buildBareHexRing(t *testing.T) *model.State {
	t.Helper()
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	st, err := model.Build(g, nil)
	require.NoError(t, err)
	return st
}

func TestSizeOfVertices_SplitsRingAndInterior(t *testing.T) {
	st := buildBareHexRing(t)
	s, tt := reduce.SizeOfVertices(st, []int{0, 1, 2})
	assert.Equal(t, 3, s)
	assert.Equal(t, 0, tt)
}

func TestComponentOfPath_EmptyOnAdjacentEndpoints(t *testing.T) {
	st := buildBareHexRing(t)
	// A direct ring edge 0-1 encloses no vertices between them.
	component := reduce.ComponentOfPath(st, []int{0, 1})
	assert.Empty(t, component)
}

func TestComponentOfPath_EnclosesArc(t *testing.T) {
	st := buildBareHexRing(t)
	// The explicit path 0-5-4-3 runs along the far side of the ring, so it
	// encloses ring vertices 1,2 on the arc from 0 to 3.
	component := reduce.ComponentOfPath(st, []int{0, 5, 4, 3})
	assert.ElementsMatch(t, []int{1, 2}, component)
}

func TestCalcCutReduction_BareRingHasNoReductableVertices(t *testing.T) {
	st := buildBareHexRing(t)
	mask := reduce.CalcCutReduction(st)
	for _, v := range mask {
		assert.False(t, v)
	}
}

func TestCalcCutReduction_IsolatedInteriorVertexIsReductable(t *testing.T) {
	g, err := ring.New(7, 6, map[int][]int{6: {0, 1, 2}})
	require.NoError(t, err)
	st, err := model.Build(g, nil)
	require.NoError(t, err)
	mask := reduce.CalcCutReduction(st)
	assert.True(t, mask[6], "vertex 6, cut off from the rest of the ring by {0,1,2}, should be marked reductable")
}

func zeroLowerBound(p1, q1, p2, q2, pathlen1, pathlen2 int) int { return 0 }

func TestCalcReductableVertices_RunsWithoutPanicOnBareRing(t *testing.T) {
	st := buildBareHexRing(t)
	mask := reduce.CalcReductableVertices(st, 6, zeroLowerBound)
	assert.Len(t, mask, st.G.N())
}

func TestCanBeAlmostMinimal2_SevenAtCutSizeSixQualifies(t *testing.T) {
	// Two ring edges (pathlen 1 each) plus k1=3,k2=2 extra edges sum to
	// l=7 with numInside=3, the cutSize==6 exception.
	assert.True(t, reduce.CanBeAlmostMinimal2(6, []int{0, 1}, []int{2, 3}, 3, 2, 6))
	assert.False(t, reduce.CanBeAlmostMinimal2(6, []int{0, 1}, []int{2, 3}, 3, 2, 7))
}

func TestForEachRingQuadruple_CountsC64(t *testing.T) {
	count := 0
	reduce.ForEachRingQuadruple(6, func(p1, q1, p2, q2 int) { count++ })
	// C(6,4) = 15 ways to choose 4 cyclically ordered ring vertices out of 6.
	assert.Equal(t, 15, count)
}
