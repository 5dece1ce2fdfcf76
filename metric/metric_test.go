package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/metric"
	"github.com/katalvlaran/ringcheck/ring"
)

func TestRaw_TriangleInequalityAndSymmetry(t *testing.T) {
	g, err := ring.New(7, 6, map[int][]int{6: {0, 1, 2, 3, 4, 5}})
	require.NoError(t, err)
	dist := metric.Raw(g)
	for u := 0; u < g.N(); u++ {
		assert.Equal(t, 0, dist.At(u, u))
		for v := 0; v < g.N(); v++ {
			assert.Equal(t, dist.At(u, v), dist.At(v, u))
			for w := 0; w < g.N(); w++ {
				assert.LessOrEqual(t, dist.At(u, w), dist.At(u, v)+dist.At(v, w))
			}
		}
	}
}

func TestContracted_ZerosContractedEdge(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	dc, err := metric.Contracted(g, [][2]int{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 0, dc.At(0, 1))
	assert.Equal(t, 0, dc.At(1, 0))
}

func TestContracted_RejectsNonEdge(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	_, err = metric.Contracted(g, [][2]int{{0, 3}})
	require.ErrorIs(t, err, metric.ErrNotAnEdge)
}

func TestRepresentatives_EmptyContractionIsIdentity(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	dc, err := metric.Contracted(g, nil)
	require.NoError(t, err)
	rep := metric.Representatives(dc)
	for v, r := range rep {
		assert.Equal(t, v, r)
	}
}

func TestRepresentatives_PicksMinIndexAndIsIdempotent(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	dc, err := metric.Contracted(g, [][2]int{{2, 3}})
	require.NoError(t, err)
	rep := metric.Representatives(dc)
	assert.Equal(t, 2, rep[2])
	assert.Equal(t, 2, rep[3])
	assert.Equal(t, rep[rep[3]], rep[3])
}
