package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/ring"
)

func TestNew_RingCycle(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.True(t, g.HasEdge(i, g.RingNext(i)))
		assert.True(t, g.HasEdge(i, g.RingPrev(i)))
	}
	assert.Equal(t, 2, g.Degree(0))
}

func TestNew_InteriorDeclarations(t *testing.T) {
	// 6-ring plus one interior vertex adjacent to every ring vertex.
	g, err := ring.New(7, 6, map[int][]int{6: {0, 1, 2, 3, 4, 5}})
	require.NoError(t, err)
	assert.Equal(t, 6, g.Degree(6))
	for i := 0; i < 6; i++ {
		assert.True(t, g.HasEdge(i, 6))
		assert.Equal(t, 3, g.Degree(i)) // 2 ring neighbours + interior hub
	}
	assert.False(t, g.IsRing(6))
	assert.True(t, g.IsRing(0))
}

func TestNew_RejectsBadRingSize(t *testing.T) {
	_, err := ring.New(4, 5, nil)
	require.ErrorIs(t, err, ring.ErrBadRingSize)
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := ring.New(7, 6, map[int][]int{6: {6}})
	require.ErrorIs(t, err, ring.ErrSelfLoop)
}

func TestNew_DeduplicatesDeclaredEdges(t *testing.T) {
	g, err := ring.New(7, 6, map[int][]int{6: {0, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Degree(6))
}
