package ringcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/ringcheck"
	"github.com/katalvlaran/ringcheck/ring"
)

func TestAnalyze_MinimalSixRingNoWarnings(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "hex.conf")
	require.NoError(t, err)
	matches := cfg.Analyze(zaptest.NewLogger(t))
	assert.Empty(t, matches)
}

func TestAnalyze_SixRingPlusOneInteriorNoWarnings(t *testing.T) {
	g, err := ring.New(7, 6, map[int][]int{6: {0, 1, 2, 3, 4}})
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "hex_plus_one.conf")
	require.NoError(t, err)
	matches := cfg.Analyze(zaptest.NewLogger(t))
	assert.Empty(t, matches)
}

func TestAnalyze_IsDeterministicAcrossRepeatedRuns(t *testing.T) {
	g, err := ring.New(7, 6, map[int][]int{6: {0, 1, 2, 3, 4}})
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "hex_plus_one.conf")
	require.NoError(t, err)
	first := cfg.Analyze(zaptest.NewLogger(t))
	require.NoError(t, cfg.SetContract(nil))
	second := cfg.Analyze(zaptest.NewLogger(t))
	assert.Equal(t, first, second)
}

func TestSetContract_ChordTwoApartContractsToZero(t *testing.T) {
	// A declared chord 0-2 (ring-distance 2 apart) makes the pair an
	// actual edge, so it can be contracted.
	g, err := ring.New(6, 6, map[int][]int{0: {2}})
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "chord.conf")
	require.NoError(t, err)
	require.NoError(t, cfg.SetContract([][2]int{{0, 2}}))
	assert.Equal(t, 0, cfg.State().DistC.At(0, 2))
}

func TestSetContract_EmptyResetsState(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "hex.conf")
	require.NoError(t, err)
	require.NoError(t, cfg.SetContract([][2]int{{0, 1}}))
	require.NoError(t, cfg.SetContract(nil))
	for v := 0; v < g.N(); v++ {
		assert.False(t, cfg.ReductableInside(v))
	}
}

func TestReductableOutside_RunsForBothCutSizes(t *testing.T) {
	g, err := ring.New(6, 6, nil)
	require.NoError(t, err)
	cfg, err := ringcheck.New(g, "hex.conf")
	require.NoError(t, err)
	assert.False(t, cfg.ReductableOutside(0, 6))
	assert.False(t, cfg.ReductableOutside(0, 7))
}
