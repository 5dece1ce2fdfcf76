// Package ring stores the "free completion with its ring": a planar
// near-triangulation whose outer boundary is a cycle on vertices 0..r-1,
// plus interior vertices r..n-1 with declared adjacencies.
//
// Unlike a general-purpose graph library, vertex identity here IS the
// integer index: the catalogue and metric packages all depend on the
// ring/interior split being expressible as a simple index comparison
// (v < r means "on the ring"). There is no string ID layer.
package ring

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadRingSize indicates 0 <= r <= n does not hold.
	ErrBadRingSize = errors.New("ring: ring size must satisfy 0 <= r <= n")

	// ErrVertexRange indicates a vertex index outside [0, n).
	ErrVertexRange = errors.New("ring: vertex index out of range")

	// ErrDuplicateEdge indicates the same edge was declared twice for a vertex.
	ErrDuplicateEdge = errors.New("ring: duplicate edge declaration")

	// ErrSelfLoop indicates a vertex was declared adjacent to itself.
	ErrSelfLoop = errors.New("ring: self-loop not permitted")
)

// Graph is the immutable adjacency structure of a configuration:
// ring vertices 0..r-1 forming a cycle, interior vertices r..n-1 with
// whatever adjacencies the input declared. Once built via New, a Graph
// never mutates — all contraction state lives in the metric package,
// which is layered on top.
type Graph struct {
	n, r int
	adj  [][]int // adj[v] is v's neighbour list, ascending, deduplicated
}

// New builds a Graph with n vertices and ring size r, then closes the
// ring cycle (i <-> (i+1)%r) and inserts every declared interior edge
// symmetrically. declared[v] lists v's neighbours for v in [r, n); ring
// vertices need no entry (the cycle is added automatically), but an entry
// is accepted and merged if present (a ring vertex may also have interior
// neighbours declared against it, e.g. a chord).
//
// Complexity: O(n^2 + sum(len(declared[v]))), the n^2 term being the
// pairwise seen table used for deduplication.
func New(n, r int, declared map[int][]int) (*Graph, error) {
	if r < 0 || r > n {
		return nil, ErrBadRingSize
	}
	g := &Graph{n: n, r: r, adj: make([][]int, n)}
	seen := make([][]bool, n)
	for v := 0; v < n; v++ {
		seen[v] = make([]bool, n)
	}

	add := func(u, v int) error {
		if u < 0 || u >= n || v < 0 || v >= n {
			return fmt.Errorf("ring: edge (%d,%d): %w", u, v, ErrVertexRange)
		}
		if u == v {
			return fmt.Errorf("ring: edge (%d,%d): %w", u, v, ErrSelfLoop)
		}
		if !seen[u][v] {
			seen[u][v] = true
			g.adj[u] = append(g.adj[u], v)
		}
		if !seen[v][u] {
			seen[v][u] = true
			g.adj[v] = append(g.adj[v], u)
		}
		return nil
	}

	// Ring cycle first: i <-> (i+1) mod r.
	for i := 0; i < r; i++ {
		if err := add(i, (i+1)%r); err != nil {
			return nil, err
		}
	}

	// Interior (and any extra ring) declarations, in vertex order for determinism.
	for v := r; v < n; v++ {
		for _, u := range declared[v] {
			if err := add(v, u); err != nil {
				return nil, err
			}
		}
	}
	for v := 0; v < r; v++ {
		for _, u := range declared[v] {
			if err := add(v, u); err != nil {
				return nil, err
			}
		}
	}

	for v := 0; v < n; v++ {
		sortInts(g.adj[v])
	}
	return g, nil
}

// sortInts is a tiny insertion sort: adjacency lists are short (bounded by
// max interior degree, typically <= 8), so this avoids pulling in sort
// for a handful of elements per vertex.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for j >= 0 && a[j] > x {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = x
	}
}

// N returns the total vertex count.
func (g *Graph) N() int { return g.n }

// R returns the ring size.
func (g *Graph) R() int { return g.r }

// IsRing reports whether v is a ring vertex (v < r).
func (g *Graph) IsRing(v int) bool { return v < g.r }

// Neighbors returns v's neighbour list. The returned slice is shared and
// must not be mutated by the caller.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// RingNext returns the ring vertex following v (v must be < r).
func (g *Graph) RingNext(v int) int { return (v + 1) % g.r }

// RingPrev returns the ring vertex preceding v (v must be < r).
func (g *Graph) RingPrev(v int) int { return (v - 1 + g.r) % g.r }
