// Package metric computes all-pairs shortest paths over a ring.Graph, both
// on the raw adjacency and on the adjacency with a chosen set of edges
// contracted to zero weight, plus the contraction's equivalence-class
// representative map.
//
// The loop-order discipline (k -> i -> j, fixed and deterministic) mirrors
// the standard textbook Floyd-Warshall implementation, adapted here from a
// float64 Dense matrix to an int distance matrix with an explicit Inf
// sentinel, since every weight in this domain is 0 or 1.
package metric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ringcheck/ring"
)

// Inf is the sentinel for "no path". It must exceed the largest possible
// finite distance (n-1), so n+1 is always a safe sentinel.
const Inf = 1 << 30

// ErrNotAnEdge indicates a requested contraction pair is not adjacent.
var ErrNotAnEdge = errors.New("metric: contraction pair is not an existing edge")

// Matrix is a square, row-major, deterministic distance table.
type Matrix struct {
	n    int
	data []int
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]int, n*n)}
}

// At returns dist[u][v].
func (m *Matrix) At(u, v int) int { return m.data[u*m.n+v] }

func (m *Matrix) set(u, v, val int) { m.data[u*m.n+v] = val }

// floydWarshallInPlace runs APSP closure in place.
//
// Loop order is fixed (k -> i -> j) for deterministic accumulation,
// matching matrix.impl_floydwarshall's documented contract.
// Time: O(n^3), extra space O(1).
func floydWarshallInPlace(m *Matrix) {
	n := m.n
	data := m.data
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := data[i*n+k]
			if ik >= Inf {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if kj >= Inf {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Raw computes the unweighted all-pairs shortest-path matrix of g.
func Raw(g *ring.Graph) *Matrix {
	n := g.N()
	m := newMatrix(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				m.set(u, v, 0)
			} else {
				m.set(u, v, Inf)
			}
		}
		for _, v := range g.Neighbors(u) {
			m.set(u, v, 1)
		}
	}
	floydWarshallInPlace(m)
	return m
}

// Contracted computes the all-pairs shortest-path matrix of g after
// zero-weighting every pair in contract. Each pair must be an existing
// edge of g, per the Configuration invariant in spec §3.
func Contracted(g *ring.Graph, contract [][2]int) (*Matrix, error) {
	n := g.N()
	m := newMatrix(n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				m.set(u, v, 0)
			} else {
				m.set(u, v, Inf)
			}
		}
		for _, v := range g.Neighbors(u) {
			m.set(u, v, 1)
		}
	}
	for _, e := range contract {
		u, v := e[0], e[1]
		if !g.HasEdge(u, v) {
			return nil, fmt.Errorf("metric: contract (%d,%d): %w", u, v, ErrNotAnEdge)
		}
		m.set(u, v, 0)
		m.set(v, u, 0)
	}
	floydWarshallInPlace(m)
	return m, nil
}

// Representatives computes, for every vertex v, the least index u with
// distContracted[v][u] == 0 (v and u are equivalent under contraction).
// representative[v] is idempotent and monotone non-decreasing only in the
// sense that it is always <= v (a vertex is its own representative absent
// contraction).
func Representatives(distContracted *Matrix) []int {
	n := distContracted.n
	rep := make([]int, n)
	for v := 0; v < n; v++ {
		rep[v] = v
		for u := 0; u < n; u++ {
			if distContracted.At(v, u) == 0 {
				rep[v] = u
				break
			}
		}
	}
	return rep
}

// Equivalent reports whether u and v collapse to the same vertex under
// the given contracted-distance matrix.
func Equivalent(distContracted *Matrix, u, v int) bool {
	return distContracted.At(u, v) == 0
}
