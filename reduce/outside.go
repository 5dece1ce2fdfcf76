package reduce

import "github.com/katalvlaran/ringcheck/model"

// ForEachRingQuadruple calls fn once for every cyclically ordered
// quadruple (p1,q1,p2,q2) of distinct ring vertices with p1 < q1 < p2 < q2
// in the unrolled index sense (q1, p2, q2 taken modulo r), matching the
// nested-loop shape the original source uses to walk every candidate
// two-arc split of the ring.
func ForEachRingQuadruple(r int, fn func(p1, q1, p2, q2 int)) {
	for p1 := 0; p1 < r; p1++ {
		for q1raw := p1 + 1; q1raw < p1+r; q1raw++ {
			q1 := q1raw % r
			for p2raw := q1raw + 1; p2raw < p1+r; p2raw++ {
				p2 := p2raw % r
				for q2raw := p2raw + 1; q2raw < p1+r; q2raw++ {
					q2 := q2raw % r
					fn(p1, q1, p2, q2)
				}
			}
		}
	}
}

// CalcReductableVertices computes the outside-reductable mask for a given
// cut size (§4.5): the union of four independent passes, each looking for
// a different shape of contractible/non-contractible arc pair that
// isolates a region from the ring entirely. lowerBound supplies the
// outer-cycle length bound (§4.6) the third pass needs; it is injected as
// a function value rather than imported from package bound to keep the
// two packages' dependency on each other one-directional.
func CalcReductableVertices(st *model.State, cutSize int, lowerBound func(p1, q1, p2, q2, pathlen1, pathlen2 int) int) []bool {
	n := st.G.N()
	isReductable := make([]bool, n)
	singleArcPass(st, cutSize, isReductable)
	twoContractibleArcsPass(st, cutSize, isReductable)
	twoOpenArcsPass(st, cutSize, isReductable, lowerBound)
	mixedArcsPass(st, cutSize, isReductable)
	return isReductable
}

// equivalentToAny reports whether v collapses onto the same representative
// as some vertex already on path, i.e. v is already accounted for by path
// itself rather than being newly enclosed by it.
func equivalentToAny(st *model.State, v int, path []int) bool {
	for _, u := range path {
		if st.Equivalent(v, u) {
			return true
		}
	}
	return false
}

func clamp0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// singleArcPass mirrors calcReductableVertices1: for every ring pair
// (p,q), every extra-edge count k compatible with the raw/contracted
// distance bounds, and every contracted shortest path, mark every vertex
// of the enclosed component reductable except those equivalent to some
// vertex of the path itself (already counted).
func singleArcPass(st *model.State, cutSize int, isReductable []bool) {
	r := st.G.R()
	for p := 0; p < r; p++ {
		for q := 0; q < r; q++ {
			if p == q {
				continue
			}
			pathlenMin := clamp0(5 - st.Dist.At(p, q))
			pathlenMax := cutSize - 3 - st.DistC.At(p, q)
			if pathlenMin > pathlenMax {
				continue
			}
			contractedPaths := st.ShortestPaths(p, q, true)
			for k := pathlenMin; k <= pathlenMax; k++ {
				if CheckShortCycle(st, p, q, k, cutSize) {
					continue
				}
				for _, cp := range contractedPaths {
					if len(cp)-1 == st.Dist.At(p, q) {
						continue // not actually shortened by contraction
					}
					component := ComponentOfPath(st, cp)
					for _, v := range component {
						if !equivalentToAny(st, v, cp) {
							isReductable[v] = true
						}
					}
				}
			}
		}
	}
}

// twoContractibleArcsPass mirrors calcReductableVertices2: both arcs q1-p2
// and q2-p1 are themselves contractible down to 3 extra edges total. A
// quadruple is skipped the moment either arc's own single-path check
// already rules it out; otherwise the raw shortest paths decide whether
// the cut is already too small to matter (has_smallcut), and only the
// contracted shortest paths' enclosed region gets marked.
func twoContractibleArcsPass(st *model.State, cutSize int, isReductable []bool) {
	r := st.G.R()
	ForEachRingQuadruple(r, func(p1, q1, p2, q2 int) {
		pathlenMin1 := clamp0(5 - st.Dist.At(p1, q1))
		pathlenMin2 := clamp0(5 - st.Dist.At(p2, q2))
		pathlenMax := 3 - st.DistC.At(q1, p2) - st.DistC.At(q2, p1)
		if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
			return
		}
		rawPath1s := st.ShortestPaths(q1, p2, false)
		rawPath2s := st.ShortestPaths(q2, p1, false)
		contractedPath1s := st.ShortestPaths(q1, p2, true)
		contractedPath2s := st.ShortestPaths(q2, p1, true)

		for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
			for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
				if pathlen1+pathlen2+st.DistC.At(q1, p2)+st.DistC.At(q2, p1) > 3 {
					continue
				}
				if CheckShortCycle(st, p1, q1, pathlen1, cutSize) {
					continue
				}
				if CheckShortCycle(st, p2, q2, pathlen2, cutSize) {
					continue
				}
				if hasSmallCutBetween(st, rawPath1s, rawPath2s, pathlen1, pathlen2, cutSize) {
					continue
				}
				markBetween(st, contractedPath1s, contractedPath2s, q1, p2, q2, p1, isReductable)
			}
		}
	})
}

// twoOpenArcsPass mirrors calcReductableVertices3: the two arcs are not
// necessarily contractible (they're enumerated from every simple path in
// the bounded cache, not just shortest ones), guarded instead by the
// outer-cycle lower bound lowerBound supplies. The degenerate case where
// the two arcs cover the whole ring with no gap is skipped, matching the
// source.
func twoOpenArcsPass(st *model.State, cutSize int, isReductable []bool, lowerBound func(p1, q1, p2, q2, pathlen1, pathlen2 int) int) {
	r := st.G.R()
	ForEachRingQuadruple(r, func(p1, q1, p2, q2 int) {
		if st.G.RingNext(q1) == p2 && st.G.RingNext(q2) == p1 {
			return
		}
		pathlenMin1 := clamp0(2 - st.DistC.At(p1, q1))
		pathlenMin2 := clamp0(2 - st.DistC.At(p2, q2))
		pathlenMax := 3 - st.DistC.At(q1, p2) - st.DistC.At(q2, p1)
		if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
			return
		}
		path1s := st.Cache.Paths(q1, p2)
		path2s := st.Cache.Paths(q2, p1)
		contractedPath1s := st.ShortestPaths(q1, p2, true)
		contractedPath2s := st.ShortestPaths(q2, p1, true)

		for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
			for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
				if pathlen1+pathlen2+st.DistC.At(q1, p2)+st.DistC.At(q2, p1) > 3 {
					continue
				}
				if lowerBound(p1, q1, p2, q2, pathlen1, pathlen2) > cutSize {
					continue
				}
				if hasSmallCutXor(st, path1s, path2s, pathlen1, pathlen2) {
					continue
				}
				markXor(st, contractedPath1s, contractedPath2s, q1, p2, q2, p1, isReductable)
			}
		}
	})
}

// mixedArcsPass mirrors calcReductableVertices4: one arc (p1,q1) is
// checked forward, the other (q2,p2) is checked with its endpoints
// swapped, and the enclosed region is measured with the XOR component
// rather than the between-paths one — the reversed-arc variant of
// twoContractibleArcsPass.
func mixedArcsPass(st *model.State, cutSize int, isReductable []bool) {
	r := st.G.R()
	ForEachRingQuadruple(r, func(p1, q1, p2, q2 int) {
		pathlenMin1 := clamp0(5 - st.Dist.At(p1, q1))
		pathlenMin2 := clamp0(5 - st.Dist.At(p2, q2))
		pathlenMax := 3 - st.DistC.At(q1, p2) - st.DistC.At(q2, p1)
		if pathlenMin1 > pathlenMax || pathlenMin2 > pathlenMax {
			return
		}
		rawPath1s := st.ShortestPaths(q1, p2, false)
		rawPath2s := st.ShortestPaths(q2, p1, false)
		contractedPath1s := st.ShortestPaths(q1, p2, true)
		contractedPath2s := st.ShortestPaths(q2, p1, true)

		for pathlen1 := pathlenMin1; pathlen1 <= pathlenMax; pathlen1++ {
			for pathlen2 := pathlenMin2; pathlen2 <= pathlenMax; pathlen2++ {
				if pathlen1+pathlen2+st.DistC.At(q1, p2)+st.DistC.At(q2, p1) > 3 {
					continue
				}
				if CheckShortCycle(st, p1, q1, pathlen1, cutSize) {
					continue
				}
				if CheckShortCycle(st, q2, p2, pathlen2, cutSize) {
					continue
				}
				hasSmallCut := false
			outer:
				for _, rp1 := range rawPath1s {
					for _, rp2 := range rawPath2s {
						if CanBeAlmostMinimal2(r, rp1, rp2, pathlen1, pathlen2, cutSize) {
							continue
						}
						s, t := SizeOfVertices(st, ComponentXor(st, rp1, rp2))
						adj := clamp0(s - clamp0(pathlen1+pathlen2-2) + 1)
						sz := adj/2 + t
						if IsForbiddenCut(len(rp1)+len(rp2)-2+pathlen1+pathlen2, sz) {
							hasSmallCut = true
							break outer
						}
					}
				}
				if hasSmallCut {
					continue
				}
				for _, cp1 := range contractedPath1s {
					for _, cp2 := range contractedPath2s {
						if len(cp1)-1 == st.Dist.At(q1, p2) && len(cp2)-1 == st.Dist.At(q2, p1) {
							continue
						}
						component := ComponentXor(st, cp1, cp2)
						for _, v := range component {
							if equivalentToAny(st, v, cp1) || equivalentToAny(st, v, cp2) {
								continue
							}
							isReductable[v] = true
						}
					}
				}
			}
		}
	})
}

// hasSmallCutBetween is twoContractibleArcsPass's has_smallcut test: the
// cut formed by two raw shortest paths plus the two pathlens is already
// too large on its own, independent of contraction.
func hasSmallCutBetween(st *model.State, path1s, path2s [][]int, pathlen1, pathlen2, cutSize int) bool {
	r := st.G.R()
	for _, p1 := range path1s {
		for _, p2 := range path2s {
			if CanBeAlmostMinimalPair(r, p1, p2, pathlen1, pathlen2, cutSize) {
				continue
			}
			s, t := SizeOfVertices(st, ComponentBetweenPaths(st, p1, p2))
			adj := clamp0(s - clamp0(pathlen1+pathlen2-2) + 1)
			sz := adj/2 + t
			if IsForbiddenCut(len(p1)+len(p2)-2+pathlen1+pathlen2, sz) {
				return true
			}
		}
	}
	return false
}

// hasSmallCutXor is twoOpenArcsPass's has_smallcut test, over the XOR
// component instead of the between-paths one, and with a fixed small
// length/size table rather than IsForbiddenCut (the source's inline
// l<=4,sz>0 / l==5,sz>1 pair: the same thresholds IsForbiddenCut uses up
// to length 5, with lengths 6 and 7 never counted).
func hasSmallCutXor(st *model.State, path1s, path2s [][]int, pathlen1, pathlen2 int) bool {
	for _, p1 := range path1s {
		for _, p2 := range path2s {
			l := pathlen1 + pathlen2 + len(p1) - 1 + len(p2) - 1
			if l > 5 {
				continue
			}
			s, t := SizeOfVertices(st, ComponentXor(st, p1, p2))
			adj := clamp0(s - clamp0(pathlen1+pathlen2-2) + 1)
			sz := adj/2 + t
			if (l <= 4 && sz > 0) || (l == 5 && sz > 1) {
				return true
			}
		}
	}
	return false
}

func markBetween(st *model.State, path1s, path2s [][]int, q1, p2, q2, p1 int, isReductable []bool) {
	for _, cp1 := range path1s {
		for _, cp2 := range path2s {
			if len(cp1)-1 == st.Dist.At(q1, p2) && len(cp2)-1 == st.Dist.At(q2, p1) {
				continue
			}
			component := ComponentBetweenPaths(st, cp1, cp2)
			for _, v := range component {
				if equivalentToAny(st, v, cp1) || equivalentToAny(st, v, cp2) {
					continue
				}
				isReductable[v] = true
			}
		}
	}
}

func markXor(st *model.State, path1s, path2s [][]int, q1, p2, q2, p1 int, isReductable []bool) {
	for _, cp1 := range path1s {
		for _, cp2 := range path2s {
			if len(cp1)-1 == st.Dist.At(q1, p2) && len(cp2)-1 == st.Dist.At(q2, p1) {
				continue
			}
			component := ComponentXor(st, cp1, cp2)
			for _, v := range component {
				if equivalentToAny(st, v, cp1) || equivalentToAny(st, v, cp2) {
					continue
				}
				isReductable[v] = true
			}
		}
	}
}
