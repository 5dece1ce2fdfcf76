// Package pathset enumerates paths between ring vertices: every distinct
// simple shortest path under a 0/1-weighted metric (§4.3),
// and every simple path of length <= 7 for the catalogue's path cache
// (§4.4). Both walk g.Neighbors in ascending order (adjacency is sorted at
// construction time in ring.New); the path cache relies on that order
// alone for deterministic output, while AllShortestPaths also sorts its
// result lexicographically.
package pathset

import (
	"sort"

	"github.com/katalvlaran/ringcheck/ring"
)

// ZeroWeight reports whether the edge (u,v) should be treated as a
// 0-weight (contracted) edge for the purposes of a metric query. A nil
// ZeroWeight always reports false (the raw, unweighted metric).
type ZeroWeight func(u, v int) bool

// AllShortestPaths returns every distinct simple shortest path from s to
// t under the 0/1 metric induced by zero. Paths are walker-style-computed
// deque BFS, mirroring the original source's shortest-path walker: a 0-1 BFS first
// establishes dist[] from s, then a second deque pass builds every
// shortest path by forward DAG extension. Results are returned in
// deterministic lexicographic order by vertex sequence.
func AllShortestPaths(g *ring.Graph, s, t int, zero ZeroWeight) [][]int {
	if zero == nil {
		zero = func(int, int) bool { return false }
	}
	n := g.N()
	const inf = 1 << 30

	// Stage 1: 0-1 BFS distances from s.
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[s] = 0
	deque := []int{s}
	for len(deque) > 0 {
		v := deque[0]
		deque = deque[1:]
		for _, u := range g.Neighbors(v) {
			if zero(v, u) {
				if dist[v] < dist[u] {
					dist[u] = dist[v]
					deque = append([]int{u}, deque...)
				}
			} else {
				if dist[v]+1 < dist[u] {
					dist[u] = dist[v] + 1
					deque = append(deque, u)
				}
			}
		}
	}

	// Stage 2: forward DAG trace building every shortest path per vertex.
	paths := make([][][]int, n)
	paths[s] = [][]int{{s}}
	deque = []int{s}
	for len(deque) > 0 {
		v := deque[0]
		deque = deque[1:]
		for _, u := range g.Neighbors(v) {
			normalEdge := dist[u] == dist[v]+1
			zeroEdge := dist[u] == dist[v] && zero(v, u)
			if !normalEdge && !zeroEdge {
				continue
			}
			updated := false
			for _, p := range paths[v] {
				if containsVertex(p, u) {
					continue
				}
				candidate := appendCopy(p, u)
				if containsPath(paths[u], candidate) {
					continue
				}
				paths[u] = append(paths[u], candidate)
				updated = true
			}
			if updated {
				if normalEdge {
					deque = append(deque, u)
				} else {
					deque = append([]int{u}, deque...)
				}
			}
		}
	}

	result := uniquePaths(paths[t])
	sort.Slice(result, func(i, j int) bool { return lexLess(result[i], result[j]) })
	return result
}

func containsVertex(path []int, v int) bool {
	for _, x := range path {
		if x == v {
			return true
		}
	}
	return false
}

func appendCopy(path []int, v int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = v
	return out
}

func containsPath(paths [][]int, p []int) bool {
	for _, q := range paths {
		if samePath(p, q) {
			return true
		}
	}
	return false
}

func samePath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func uniquePaths(in [][]int) [][]int {
	out := make([][]int, 0, len(in))
	for _, p := range in {
		if !containsPath(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
