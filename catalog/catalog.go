package catalog

import (
	"github.com/katalvlaran/ringcheck/bound"
	"github.com/katalvlaran/ringcheck/model"
	"github.com/katalvlaran/ringcheck/reduce"
)

// Match records one catalogue hit: the pattern name (e.g. "6cut-3") and
// the ring vertices that triggered it, for the warning log (§4.7, §6).
type Match struct {
	Name     string
	Vertices []int
}

// guard is a pattern row's optional extra condition, evaluated after
// isValid already matched: most rows need none, but several also require
// the region forbiddenVertexSize (or its pair variant) measures to be
// legal-sized before the row counts as dangerous.
type guard func(st *model.State, reductableInside, reductableOutside []bool, anchors []int) bool

// pattern is one row of the catalogue's dispatch table: a name, the cut
// size it belongs to, a finder enumerating candidate anchor tuples for
// that shape of post-contraction ring distances, the segment lengths and
// one-edge flags isValid checks each consecutive anchor pair against, and
// an optional extra guard.
type pattern struct {
	name    string
	cutSize int
	finder  func(*model.State) [][]int
	lens    []int
	onedge  []bool
	guard   guard
}

func f(d0 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findAB(st, d0) }
}

func fBC(d0, d1 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findABBC(st, d0, d1) }
}

func fACBC(d0, d1, d2 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findABACBC(st, d0, d1, d2) }
}

func fCD(d0, d1 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findABCD(st, d0, d1) }
}

func fBCCD(d0, d1, d2 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findABBCCD(st, d0, d1, d2) }
}

func fBCDE(d0, d1, d2 int) func(*model.State) [][]int {
	return func(st *model.State) [][]int { return findABBCDE(st, d0, d1, d2) }
}

var noEdges3 = []bool{false, false, false}
var noEdges4 = []bool{false, false, false, false}

// vs builds the anchor subset guardVS/guardVSPair need from a row's full
// finder output, by index.
func vs(anchors []int, idx ...int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = anchors[j]
	}
	return out
}

// guardVS wraps ForbiddenVertexSize as a pattern guard: the row counts as
// dangerous only when the spliced path it describes is NOT itself a
// forbidden size (i.e. the catalogue match survives the extra check).
func guardVS(k, cutSize int, rev bool, idx ...int) guard {
	return func(st *model.State, reductableInside, reductableOutside []bool, anchors []int) bool {
		return !ForbiddenVertexSize(st, reductableInside, reductableOutside, vs(anchors, idx...), k, cutSize, rev)
	}
}

// guardVSPair wraps ForbiddenVertexSizePair the same way, over two
// independently spliced anchor groups.
func guardVSPair(k1, k2, cutSize int, idx1, idx2 []int) guard {
	return func(st *model.State, reductableInside, reductableOutside []bool, anchors []int) bool {
		return !ForbiddenVertexSizePair(st, reductableInside, reductableOutside, vs(anchors, idx1...), vs(anchors, idx2...), k1, k2, cutSize)
	}
}

// table is the catalogue's primary shape for each of the 25 named tests
// that have an anchor-tuple shape ("7cut-16" is CheckDegree7, run by
// IsValid): one to three rows per test drawn directly from the reference driver's
// dominant case, omitting the further rotated/one-edge sub-cases it also
// enumerates for the same named test (documented in DESIGN.md).
var table = []pattern{
	{"6cut-1", 6, f(0), []int{2, 4}, noEdges3[:2], guardVS(4, 6, false, 1, 0)},
	{"6cut-1", 6, f(0), []int{4, 2}, noEdges3[:2], guardVS(4, 6, false, 0, 1)},
	{"6cut-2", 6, fCD(0, 0), []int{2, 1, 2, 1}, noEdges4, nil},
	{"6cut-3", 6, fACBC(0, 0, 0), []int{2, 2, 2}, noEdges3, nil},
	{"6cut-4", 6, fCD(0, 1), []int{2, 1, 2, 1}, noEdges4, nil},
	{"6cut-5", 6, fACBC(0, 1, 1), []int{2, 2, 2}, noEdges3, nil},
	{"6cut-6", 6, f(0), []int{3, 3}, noEdges3[:2], nil},
	{"6cut-7", 6, f(1), []int{2, 4}, noEdges3[:2], guardVS(4, 6, false, 1, 0)},
	{"6cut-7", 6, f(1), []int{4, 2}, noEdges3[:2], guardVS(4, 6, false, 0, 1)},
	{"6cut-8", 6, fCD(1, 1), []int{2, 1, 2, 1}, noEdges4, guardVSPair(1, 1, 6, []int{0, 1}, []int{2, 3})},
	{"6cut-9", 6, fBC(1, 1), []int{2, 2, 2}, noEdges3, guardVS(2, 6, true, 0, 1, 2)},
	{"6cut-10", 6, fACBC(1, 1, 1), []int{2, 2, 2}, noEdges3, nil},

	{"7cut-1", 7, f(0), []int{2, 5}, noEdges3[:2], guardVS(5, 7, false, 1, 0)},
	{"7cut-1", 7, f(0), []int{5, 2}, noEdges3[:2], guardVS(5, 7, false, 0, 1)},
	{"7cut-2", 7, fCD(0, 0), []int{3, 1, 2, 1}, noEdges4, nil},
	{"7cut-2", 7, fCD(0, 0), []int{2, 1, 3, 1}, noEdges4, nil},
	{"7cut-3", 7, fCD(0, 0), []int{2, 1, 2, 2}, noEdges4, nil},
	{"7cut-3", 7, fCD(0, 0), []int{2, 2, 2, 1}, noEdges4, nil},
	{"7cut-4", 7, fACBC(0, 0, 0), []int{3, 2, 2}, noEdges3, nil},
	{"7cut-4", 7, fACBC(0, 0, 0), []int{2, 3, 2}, noEdges3, nil},
	{"7cut-4", 7, fACBC(0, 0, 0), []int{2, 2, 3}, noEdges3, nil},
	{"7cut-5", 7, fBC(0, 1), []int{2, 2, 3}, noEdges3, guardVS(3, 7, true, 0, 1, 2)},
	{"7cut-5", 7, fBC(1, 0), []int{2, 2, 3}, noEdges3, guardVS(3, 7, true, 0, 1, 2)},
	{"7cut-6", 7, fCD(0, 1), []int{2, 1, 2, 2}, noEdges4, guardVSPair(1, 2, 7, []int{0, 1}, []int{2, 3})},
	{"7cut-6", 7, fCD(0, 1), []int{2, 2, 2, 1}, noEdges4, guardVSPair(1, 2, 7, []int{0, 1}, []int{2, 3})},
	{"7cut-7", 7, fBCCD(0, 1, 1), []int{2, 2, 2, 1}, noEdges4, nil},
	{"7cut-7", 7, fBCCD(1, 1, 0), []int{2, 2, 2, 1}, noEdges4, nil},
	{"7cut-7", 7, fBCDE(0, 0, 0), []int{2, 2, 0, 2, 1}, []bool{false, false, true, true, false}, nil},
	{"7cut-8", 7, fBCCD(1, 0, 1), []int{2, 2, 2, 1}, noEdges4, nil},
	{"7cut-9", 7, f(0), []int{3, 4}, noEdges3[:2], nil},
	{"7cut-9", 7, f(0), []int{4, 3}, noEdges3[:2], nil},
	{"7cut-10", 7, fACBC(0, 1, 1), []int{3, 2, 2}, noEdges3, nil},
	{"7cut-11", 7, fCD(0, 1), []int{3, 1, 2, 1}, noEdges4, nil},
	{"7cut-12", 7, f(1), []int{2, 5}, noEdges3[:2], guardVS(5, 7, false, 1, 0)},
	{"7cut-12", 7, f(1), []int{5, 2}, noEdges3[:2], guardVS(5, 7, false, 0, 1)},
	{"7cut-13", 7, fBC(1, 1), []int{2, 2, 3}, noEdges3, guardVS(3, 7, true, 0, 1, 2)},
	{"7cut-14", 7, fCD(1, 1), []int{2, 2, 2, 1}, noEdges4, guardVSPair(1, 2, 7, []int{0, 1}, []int{2, 3})},
	{"7cut-14", 7, fCD(1, 1), []int{2, 1, 2, 2}, noEdges4, guardVSPair(1, 2, 7, []int{0, 1}, []int{2, 3})},
	{"7cut-15", 7, fBCCD(1, 1, 1), []int{2, 2, 2, 1}, noEdges4, guardVS(1, 7, true, 0, 1, 2, 3)},
	{"7cut-15", 7, fBCDE(1, 0, 0), []int{2, 2, 0, 2, 1}, []bool{false, false, true, true, false}, guardVSPair(1, 2, 7, []int{0, 1, 2}, []int{3, 4})},
}

// IsValid runs every pattern in the catalogue against the current
// contraction and returns every match found (nil if the configuration is
// clean at both cut sizes). "7cut-16", the degree-7 invariant, is
// evaluated separately by CheckDegree7 since it has no anchor-tuple shape
// to find. reductableInside and reductable6/reductable7 are the masks
// reduce.CalcCutReduction/CalcReductableVertices computed for the same
// state; ForbiddenVertexSize and CheckDegree7 both need them to tell an
// already-reduced vertex from one still live in the cut.
func IsValid(st *model.State, reductableInside, reductable6, reductable7 []bool) []Match {
	var matches []Match
	for _, p := range table {
		reductableOutside := reductable6
		if p.cutSize == 7 {
			reductableOutside = reductable7
		}
		for _, anchors := range p.finder(st) {
			if !isValid(st, anchors, p.lens, p.onedge) {
				continue
			}
			if p.guard != nil && !p.guard(st, reductableInside, reductableOutside, anchors) {
				continue
			}
			matches = append(matches, Match{Name: p.name, Vertices: anchors})
		}
	}
	if CheckDegree7(st, reductableInside, reductable7) {
		matches = append(matches, Match{Name: "7cut-16"})
	}
	return matches
}

// isValid reports whether a cyclic sequence of ring anchors, split into
// segments of the given lengths (some possibly fixed to a single ring
// edge via onedge), is legal: every consecutive pair of segment endpoints
// must NOT close into a forbidden cycle on either side (§4.7). A segment
// pair is checked with the one-edge variant whenever either endpoint's
// own segment is a fixed ring edge, and skipped entirely only when both
// are.
func isValid(st *model.State, vs, lens []int, onedge []bool) bool {
	cutSize := 0
	for _, l := range lens {
		cutSize += l
	}
	m := len(vs)
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		if onedge[i] && onedge[j] {
			continue
		}
		if onedge[i] || onedge[j] {
			if bound.ForbiddenCycleOneEdge(st, vs[i], vs[j], lens[i], cutSize) ||
				bound.ForbiddenCycleOneEdge(st, vs[j], vs[i], cutSize-lens[i], cutSize) {
				return false
			}
		} else {
			if bound.ForbiddenCycle(st, vs[i], vs[j], lens[i], cutSize) ||
				bound.ForbiddenCycle(st, vs[j], vs[i], cutSize-lens[i], cutSize) {
				return false
			}
		}
	}
	return true
}

// ForbiddenVertexSize splices the first contracted shortest path between
// each consecutive pair of anchors (in the order given, never resorted)
// into one path, optionally reverses it, and measures the region it
// encloses against the fixed length/size table: (l=4,sz>0) ∨ (l=5,sz>1) ∨
// (l=6,sz>2), where l is k plus the spliced path's total length and sz
// counts surviving (non-reductable) representative vertices, split
// ring/interior (§4.7).
func ForbiddenVertexSize(st *model.State, reductableInside, reductableOutside []bool, anchors []int, k, cutSize int, rev bool) bool {
	l := k
	path := []int{anchors[0]}
	for i := 0; i+1 < len(anchors); i++ {
		l += st.DistC.At(anchors[i], anchors[i+1])
		seg := st.ShortestPaths(anchors[i], anchors[i+1], true)[0]
		path = append(path, seg[1:]...)
	}
	if rev {
		path = reversePath(path)
	}
	component := reduce.ComponentOfPath(st, path)
	s, t := vertexSizeAfterContract(st, reductableInside, reductableOutside, component)
	adj := s - (k - 1) + 1
	if adj < 0 {
		adj = 0
	}
	sz := adj/2 + t
	return (l == 4 && sz > 0) || (l == 5 && sz > 1) || (l == 6 && sz > 2)
}

// ForbiddenVertexSizePair is the two-anchor-group variant: each group is
// independently spliced the same way ForbiddenVertexSize splices its one
// group, and the combined enclosed component between the two resulting
// paths is measured against the same length/size table.
func ForbiddenVertexSizePair(st *model.State, reductableInside, reductableOutside []bool, anchors1, anchors2 []int, k1, k2, cutSize int) bool {
	l := k1 + k2
	path1 := []int{anchors1[0]}
	for i := 0; i+1 < len(anchors1); i++ {
		l += st.DistC.At(anchors1[i], anchors1[i+1])
		seg := st.ShortestPaths(anchors1[i], anchors1[i+1], true)[0]
		path1 = append(path1, seg[1:]...)
	}
	path2 := []int{anchors2[0]}
	for i := 0; i+1 < len(anchors2); i++ {
		l += st.DistC.At(anchors2[i], anchors2[i+1])
		seg := st.ShortestPaths(anchors2[i], anchors2[i+1], true)[0]
		path2 = append(path2, seg[1:]...)
	}
	component := reduce.ComponentBetweenPaths(st, path1, path2)
	s, t := vertexSizeAfterContract(st, reductableInside, reductableOutside, component)
	slack := k1 + k2 - 2
	if slack < 0 {
		slack = 0
	}
	adj := s - slack + 1
	if adj < 0 {
		adj = 0
	}
	sz := adj/2 + t
	return (l == 4 && sz > 0) || (l == 5 && sz > 1) || (l == 6 && sz > 2)
}

func reversePath(path []int) []int {
	out := make([]int, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}
	return out
}

// vertexSizeAfterContract splits a vertex set into (ring, interior) counts
// of its surviving representatives: vertices already known reductable
// (inside, or outside at this cut size) are excluded, and only the one
// representative of each remaining equivalence class counts (§4.8's
// "restricted contracted graph").
func vertexSizeAfterContract(st *model.State, reductableInside, reductableOutside []bool, component []int) (s, t int) {
	r := st.G.R()
	for _, v := range component {
		if reductableInside[v] || reductableOutside[v] {
			continue
		}
		if st.Rep[v] != v {
			continue
		}
		if v < r {
			s++
		} else {
			t++
		}
	}
	return
}

// CheckDegree7 implements the degree-7 post-contraction invariant
// (§4.8): build the adjacency graph restricted to vertices not already
// known reductable (inside, or outside at cut size 7), with edges only
// between representative classes; if at least two interior classes
// survive, or if the lone surviving interior class's restricted degree
// is anything but 7, the configuration is fine. CheckDegree7 reports the
// opposite — true exactly when exactly one interior class survives with
// restricted degree 7, the case the catalogue calls "7cut-16".
func CheckDegree7(st *model.State, reductableInside, reductableOutside7 []bool) bool {
	n := st.G.N()
	r := st.G.R()
	excluded := make([]bool, n)
	for v := 0; v < n; v++ {
		excluded[v] = reductableInside[v] || reductableOutside7[v]
	}
	degree := make(map[int]map[int]bool, n)
	for v := 0; v < n; v++ {
		if excluded[v] {
			continue
		}
		for _, u := range st.G.Neighbors(v) {
			if excluded[u] {
				continue
			}
			rv, ru := st.Rep[v], st.Rep[u]
			if degree[rv] == nil {
				degree[rv] = make(map[int]bool)
			}
			degree[rv][ru] = true
			if degree[ru] == nil {
				degree[ru] = make(map[int]bool)
			}
			degree[ru][rv] = true
		}
	}
	nConf := 0
	notDeg7 := false
	for v := 0; v < n; v++ {
		if excluded[v] {
			continue
		}
		if v >= r && st.Rep[v] == v {
			nConf++
			if len(degree[v]) != 7 {
				notDeg7 = true
			}
		}
	}
	passes := nConf != 1 || notDeg7
	return !passes
}

// CheckLoops is a supplemental diagnostic (not part of the forbidden-cut
// catalogue, grounded on the original source's contractible-loop
// diagnostic): reports every vertex that could close into a contractible
// self-loop, i.e. has two distinct neighbours that are both equivalent to
// it under the contraction. A vertex is listed once per such neighbour
// pair, whether or not it is its class's representative.
// Useful for sanity-checking a contraction before running the catalogue.
func CheckLoops(st *model.State) []int {
	n := st.G.N()
	var out []int
	for v := 0; v < n; v++ {
		neighbours := st.G.Neighbors(v)
		for i := 0; i < len(neighbours); i++ {
			for j := i + 1; j < len(neighbours); j++ {
				a, b := neighbours[i], neighbours[j]
				if st.Equivalent(v, a) && st.Equivalent(v, b) {
					out = append(out, v)
				}
			}
		}
	}
	return out
}
