package pathset

import "github.com/katalvlaran/ringcheck/ring"

// maxPathVertices bounds enumeratePaths at 8 vertices (edge-length <= 7),
// per §4.4 and §5 (recursion in DFS is bounded by this cap).
const maxPathVertices = 8

// Cache holds, for every ordered pair of distinct ring vertices, every
// simple path of edge-length <= 7 between them. It is read-only once
// built (§4.4: "this table is read-only during catalogue evaluation").
type Cache struct {
	r     int
	paths [][][][]int // paths[p][q] = list of vertex-sequence paths
}

// BuildCache depth-first enumerates, for every ordered ring pair (p,q)
// with p != q, all simple paths of length <= 7 (<= 8 vertices), exactly
// mirroring the original source's path enumerator.
func BuildCache(g *ring.Graph) *Cache {
	r := g.R()
	c := &Cache{r: r, paths: make([][][][]int, r)}
	for p := 0; p < r; p++ {
		c.paths[p] = make([][][]int, r)
		for q := 0; q < r; q++ {
			if p == q {
				continue
			}
			c.paths[p][q] = enumeratePaths(g, p, q)
		}
	}
	return c
}

// enumeratePaths is a bounded DFS with an explicit visited slice; the
// walk order follows g.Neighbors's ascending order, so results come out
// deterministic without a post-hoc sort.
func enumeratePaths(g *ring.Graph, p, q int) [][]int {
	var out [][]int
	visited := make([]bool, g.N())
	path := make([]int, 0, maxPathVertices)

	var dfs func(v int)
	dfs = func(v int) {
		path = append(path, v)
		visited[v] = true
		defer func() {
			visited[v] = false
			path = path[:len(path)-1]
		}()

		if v == q {
			cp := make([]int, len(path))
			copy(cp, path)
			out = append(out, cp)
			return
		}
		if len(path) == maxPathVertices {
			return
		}
		for _, u := range g.Neighbors(v) {
			if !visited[u] {
				dfs(u)
			}
		}
	}
	dfs(p)
	return out
}

// Paths returns every simple path of length <= 7 from p to q (p, q both
// ring vertices, p != q).
func (c *Cache) Paths(p, q int) [][]int { return c.paths[p][q] }
