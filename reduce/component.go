// Package reduce implements the cut-reduction analyzer (spec §4.5): the
// inside-reductable and outside-reductable vertex masks, built on a
// component walker shared with the bound package's forbidden-cycle tests.
package reduce

import "github.com/katalvlaran/ringcheck/model"

// IsForbiddenCut is the fixed cut/component-size threshold table (§4.5):
// a cut of the given size is forbidden once more than the allowed number
// of vertices sit on one side of it.
func IsForbiddenCut(cutSize, componentSize int) bool {
	switch {
	case cutSize <= 4:
		return componentSize > 0
	case cutSize == 5:
		return componentSize > 1
	case cutSize == 6:
		return componentSize > 3
	case cutSize == 7:
		return componentSize > 4
	default:
		return false
	}
}

// SizeOfVertices splits a vertex set into (ring count, interior count).
func SizeOfVertices(st *model.State, component []int) (s, t int) {
	r := st.G.R()
	for _, v := range component {
		if v < r {
			s++
		} else {
			t++
		}
	}
	return s, t
}

// componentClosure expands seed vertices into the full cut set: every
// vertex, plus every vertex equivalent to it under the current
// contraction (§4.5: "closing S under representative equivalence").
func componentClosure(st *model.State, seed []int) map[int]bool {
	n := st.G.N()
	cut := make(map[int]bool, len(seed)*2)
	for _, v := range seed {
		cut[v] = true
		for u := 0; u < n; u++ {
			if st.Equivalent(v, u) {
				cut[u] = true
			}
		}
	}
	return cut
}

// componentIDs labels every vertex outside cutSeed's closure with a
// connected-component id: all ring-reachable vertices share id 0 (even if
// not mutually adjacent, they're considered one "outer" component per
// spec §4.5), every other component gets a fresh label starting at 1.
func componentIDs(st *model.State, cutSeed []int) []int {
	n := st.G.N()
	r := st.G.R()
	cut := componentClosure(st, cutSeed)

	id := make([]int, n)
	for v := range id {
		id[v] = -1
	}

	var dfs func(v, c int)
	dfs = func(v, c int) {
		id[v] = c
		for _, u := range st.G.Neighbors(v) {
			if cut[u] || id[u] != -1 {
				continue
			}
			dfs(u, c)
		}
	}

	for v := 0; v < r; v++ {
		if !cut[v] && id[v] == -1 {
			dfs(v, 0)
		}
	}
	next := 1
	for v := r; v < n; v++ {
		if !cut[v] && id[v] == -1 {
			dfs(v, next)
			next++
		}
	}
	return id
}

// markReductable marks every vertex in a ring-free component as
// reductable: a component is "reducing" only if no ring vertex (or vertex
// equivalent to one) falls inside it.
func markReductable(isReductable []bool, componentID []int, isRing []bool) {
	n := len(componentID)
	reducing := make([]bool, n)
	for i := range reducing {
		reducing[i] = true
	}
	for v := 0; v < n; v++ {
		if componentID[v] != -1 && isRing[v] {
			reducing[componentID[v]] = false
		}
	}
	for v := 0; v < n; v++ {
		if componentID[v] != -1 && reducing[componentID[v]] {
			isReductable[v] = true
		}
	}
}

// ComponentOfPath returns the vertex set enclosed between a ring-to-ring
// path's endpoints p=path[0], q=path[len-1]: the arc p+1..q-1 (mod r) and
// everything reachable from it without crossing path.
func ComponentOfPath(st *model.State, path []int) []int {
	r := st.G.R()
	p, q := path[0], path[len(path)-1]

	cut := make(map[int]bool, len(path))
	for _, v := range path {
		cut[v] = true
	}

	n := st.G.N()
	id := make([]int, n)
	for v := range id {
		id[v] = -1
	}
	var component []int
	var dfs func(v int)
	dfs = func(v int) {
		if cut[v] || id[v] != -1 {
			return
		}
		id[v] = 0
		component = append(component, v)
		for _, u := range st.G.Neighbors(v) {
			dfs(u)
		}
	}
	for v := (p + 1) % r; v != q; v = (v + 1) % r {
		dfs(v)
	}
	return component
}

// ComponentBetweenPaths returns the component enclosed between two
// contractible paths q1p2Path and q2p1Path (p1,q1,p2,q2 in ring order):
// the region bounded by p1..q2 (via the reversed q2p1 path) with the
// region already bounded by q1..p2 removed.
func ComponentBetweenPaths(st *model.State, q1p2Path, q2p1Path []int) []int {
	in2 := make(map[int]bool)
	for _, v := range ComponentOfPath(st, q1p2Path) {
		in2[v] = true
	}
	p1q2Path := reversed(q2p1Path)
	var out []int
	for _, v := range ComponentOfPath(st, p1q2Path) {
		if !in2[v] {
			out = append(out, v)
		}
	}
	return out
}

// ComponentXor returns the symmetric difference of the two one-path
// components: vertices enclosed by exactly one of q1p2Path, q2p1Path.
func ComponentXor(st *model.State, q1p2Path, q2p1Path []int) []int {
	in1 := make(map[int]bool)
	for _, v := range ComponentOfPath(st, q1p2Path) {
		in1[v] = true
	}
	var out []int
	for _, v := range ComponentOfPath(st, q2p1Path) {
		if in1[v] {
			delete(in1, v)
			continue
		}
		out = append(out, v)
	}
	for v := range in1 {
		out = append(out, v)
	}
	return out
}

func reversed(path []int) []int {
	out := make([]int, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}
	return out
}
