package confio

import (
	"fmt"

	"github.com/katalvlaran/ringcheck/ring"
)

// EdgesFromDualIDs translates the CLI's --edgeids sequence into primal
// edges, per §6: ring edges 0-1,1-2,...,(r-1)-0 get ids first, then every
// triangle's edges in ascending (a,b,c) order, each edge assigned the
// next id the first time it's seen.
func EdgesFromDualIDs(g *ring.Graph, ids []int) ([][2]int, error) {
	table := dualEdgeTable(g)
	out := make([][2]int, 0, len(ids))
	for _, id := range ids {
		if id < 0 || id >= len(table) {
			return nil, fmt.Errorf("confio: id %d (table has %d entries): %w", id, len(table), ErrBadEdgeID)
		}
		out = append(out, table[id])
	}
	return out, nil
}

// dualEdgeTable builds the fixed dual-id -> primal-edge mapping for g:
// ring edges first, then every 3-cycle's edges in lexicographic (a,b,c)
// order, each edge given an id the first time it's encountered.
func dualEdgeTable(g *ring.Graph) [][2]int {
	var edges [][2]int
	seen := make(map[[2]int]bool)
	add := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			return
		}
		seen[key] = true
		edges = append(edges, key)
	}

	r := g.R()
	for i := 0; i < r; i++ {
		add(i, (i+1)%r)
	}

	n := g.N()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !g.HasEdge(a, b) {
				continue
			}
			for c := b + 1; c < n; c++ {
				if g.HasEdge(a, c) && g.HasEdge(b, c) {
					add(b, c)
					add(a, c)
					add(a, b)
				}
			}
		}
	}
	return edges
}
