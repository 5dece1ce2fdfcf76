package ringcheck

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/ringcheck/bound"
	"github.com/katalvlaran/ringcheck/catalog"
	"github.com/katalvlaran/ringcheck/model"
	"github.com/katalvlaran/ringcheck/reduce"
	"github.com/katalvlaran/ringcheck/ring"
)

// Configuration is a near-triangulation plus its current contraction. It
// owns one model.State and recomputes every derived table atomically
// whenever SetContract is called (§8: "setContract(C) twice with the same
// C yields identical derived tables").
type Configuration struct {
	graph  *ring.Graph
	source string // file name, for the warning log line

	state            *model.State
	reductableInside []bool
	reductable6      []bool
	reductable7      []bool
	tables6          *bound.Tables
	tables7          *bound.Tables
}

// New builds a Configuration from an already-parsed graph, with an empty
// contraction.
func New(g *ring.Graph, source string) (*Configuration, error) {
	c := &Configuration{graph: g, source: source}
	if err := c.SetContract(nil); err != nil {
		return nil, err
	}
	return c, nil
}

// SetContract installs a new contraction set (nil or empty resets it) and
// recomputes every derived table: the metric matrices, the representative
// map, the path cache, and both reductable masks.
func (c *Configuration) SetContract(contract [][2]int) error {
	state, err := model.Build(c.graph, contract)
	if err != nil {
		return fmt.Errorf("ringcheck: setting contraction: %w", err)
	}
	c.state = state
	c.reductableInside = reduce.CalcCutReduction(state)

	c.tables6 = bound.BuildTables(state, 6)
	c.tables7 = bound.BuildTables(state, 7)
	c.reductable6 = reduce.CalcReductableVertices(state, 6, func(p1, q1, p2, q2, pathlen1, pathlen2 int) int {
		return bound.CalcLowerBoundCycle(c.tables6, p1, q1, p2, q2, pathlen1, pathlen2, 6)
	})
	c.reductable7 = reduce.CalcReductableVertices(state, 7, func(p1, q1, p2, q2, pathlen1, pathlen2 int) int {
		return bound.CalcLowerBoundCycle(c.tables7, p1, q1, p2, q2, pathlen1, pathlen2, 7)
	})
	return nil
}

// State exposes the current derived-table snapshot (read-only).
func (c *Configuration) State() *model.State { return c.state }

// Analyze runs the cut-reduction/bound sanity checks and the full danger
// pattern catalogue against the current contraction, logs every match
// (§6 "Output"), and returns them for callers that want the raw list.
func (c *Configuration) Analyze(log *zap.Logger) []catalog.Match {
	for _, msg := range bound.CheckGeneralBridges(c.state, c.tables6, c.tables7) {
		log.Debug(msg, zap.String("file", c.source))
	}

	matches := catalog.IsValid(c.state, c.reductableInside, c.reductable6, c.reductable7)
	for _, m := range matches {
		log.Info(fmt.Sprintf("%s (%v) is dangerous in %s", m.Name, m.Vertices, c.source),
			zap.String("pattern", m.Name),
			zap.Ints("vertices", m.Vertices),
			zap.String("file", c.source))
	}

	for _, v := range catalog.CheckLoops(c.state) {
		log.Debug("vertex could close into a contractible loop",
			zap.Int("vertex", v), zap.String("file", c.source))
	}
	return matches
}

// ReductableInside reports whether v is known reductable by a small
// interior cut, independent of cut size (§4.5).
func (c *Configuration) ReductableInside(v int) bool { return c.reductableInside[v] }

// ReductableOutside reports whether v is known reductable by a short
// ring-to-ring path at the given cut size (6 or 7).
func (c *Configuration) ReductableOutside(v, cutSize int) bool {
	if cutSize == 6 {
		return c.reductable6[v]
	}
	return c.reductable7[v]
}
