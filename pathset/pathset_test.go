package pathset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/pathset"
	"github.com/katalvlaran/ringcheck/ring"
)

func TestAllShortestPaths_SixRingHasTwoArcs(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	paths := pathset.AllShortestPaths(g, 0, 3, nil)
	// On a bare 6-cycle, both arcs from 0 to 3 have length 3.
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, 0, p[0])
		assert.Equal(t, 3, p[len(p)-1])
		assert.Len(t, p, 4)
	}
}

func TestAllShortestPaths_ZeroWeightOnNonEdgeKeepsEndpoints(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	zero := func(u, v int) bool { return (u == 0 && v == 3) || (u == 3 && v == 0) }
	// 0-3 is not a real edge: the hook is passed directly, without going
	// through metric.Contracted (which would reject a non-edge). The hook is
	// only consulted for actual neighbours, so it never applies here; the
	// paths returned must still run from 0 to 1.
	paths := pathset.AllShortestPaths(g, 0, 1, zero)
	for _, p := range paths {
		assert.Equal(t, 0, p[0])
		assert.Equal(t, 1, p[len(p)-1])
	}
}

func TestBuildCache_SixRingPathsAreBoundedAndDeterministic(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	cache := pathset.BuildCache(g)
	paths := cache.Paths(0, 3)
	assert.NotEmpty(t, paths)
	for _, p := range paths {
		assert.LessOrEqual(t, len(p)-1, 7)
	}
	cache2 := pathset.BuildCache(g)
	assert.Equal(t, cache.Paths(0, 3), cache2.Paths(0, 3))
}
