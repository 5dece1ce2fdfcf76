package confio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringcheck/confio"
)

func TestRead_BareHexRing(t *testing.T) {
	input := "bare hexagon, no interior\n6 6\n"
	g, err := confio.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 6, g.N())
	assert.Equal(t, 6, g.R())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(5, 0))
}

func TestRead_OneInteriorVertex(t *testing.T) {
	// 7 vertices, 6-ring, vertex 7 (label, 1-based) adjacent to 1,2,3.
	input := "hexagon plus one interior vertex\n7 6\n7 3 1 2 3\n"
	g, err := confio.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 7, g.N())
	assert.True(t, g.HasEdge(6, 0))
	assert.True(t, g.HasEdge(6, 1))
	assert.True(t, g.HasEdge(6, 2))
}

func TestRead_RejectsMalformedSizeLine(t *testing.T) {
	_, err := confio.Read(strings.NewReader("comment\nnot-a-number\n"))
	assert.ErrorIs(t, err, confio.ErrMalformedSize)
}

func TestRead_RejectsOutOfSequenceLabel(t *testing.T) {
	input := "comment\n7 6\n9 3 1 2 3\n"
	_, err := confio.Read(strings.NewReader(input))
	assert.ErrorIs(t, err, confio.ErrOutOfSequence)
}

func TestEdgesFromDualIDs_RingEdgesComeFirst(t *testing.T) {
	g, err := confio.Read(strings.NewReader("comment\n6 6\n"))
	require.NoError(t, err)
	edges, err := confio.EdgesFromDualIDs(g, []int{0, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 5}}, edges)
}

func TestEdgesFromDualIDs_RejectsOutOfRange(t *testing.T) {
	g, err := confio.Read(strings.NewReader("comment\n6 6\n"))
	require.NoError(t, err)
	_, err = confio.EdgesFromDualIDs(g, []int{999})
	assert.ErrorIs(t, err, confio.ErrBadEdgeID)
}
