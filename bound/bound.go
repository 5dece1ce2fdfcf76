// Package bound computes lower bounds on the length of the outer cycle a
// configuration's free completion must have, given a candidate forbidden
// cycle through a pair of ring vertices (§4.6). It shares the
// component and almost-minimal machinery with reduce, since both packages
// answer variants of "how big can the rest of this configuration be".
package bound

import (
	"fmt"

	"github.com/katalvlaran/ringcheck/model"
	"github.com/katalvlaran/ringcheck/reduce"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// ringArcSpan returns q, the forward ring distance from a to b (unwrapping
// b past a when b < a), used throughout this package to turn a ring pair
// into "how many ring steps does the direct a->b arc take".
func ringArcSpan(r, a, b int) int {
	bb := b
	if bb < a {
		bb += r
	}
	return bb - a
}

// ForbiddenCycle reports whether closing a with b via k extra cut edges,
// going around the ring the direct a->b way, is forbidden outright: if the
// direct ring arc already has exactly k steps the cycle is just the ring
// itself (never forbidden); if the arc is shorter than k, the cut can't
// possibly reach cutSize and is trivially forbidden; otherwise it comes
// down to whether some simple path realizes a short cycle (§4.5).
func ForbiddenCycle(st *model.State, a, b, k, cutSize int) bool {
	r := st.G.R()
	q := ringArcSpan(r, a, b)
	switch {
	case q == k:
		return false
	case q < k:
		return true
	default:
		return reduce.CheckShortCycle(st, a, b, k, cutSize)
	}
}

// ForbiddenCycleOneEdge is ForbiddenCycle's one-fixed-ring-edge variant:
// besides the direct arc test (now against the ring arc itself, since one
// side of the cut is already a ring edge) it also walks every cached
// simple path from a to b, skipping the ones that are themselves almost
// entirely ring steps and would only produce the one permitted length-7
// exception at cutSize 6.
func ForbiddenCycleOneEdge(st *model.State, a, b, k, cutSize int) bool {
	r := st.G.R()
	q := ringArcSpan(r, a, b)
	arcLen := q + 1
	adj := clamp0(arcLen - clamp0(cutSize-k-1))
	sz := adj / 2
	l := cutSize - k + q + 1
	if !(l == 7 && cutSize == 6) && reduce.IsForbiddenCut(l, sz) {
		return true
	}
	for _, path := range st.Cache.Paths(a, b) {
		m := len(path) - 1
		numberInRing := 0
		for i := 0; i+1 < len(path); i++ {
			if path[i] < r && path[i+1] < r {
				numberInRing++
			}
		}
		if (m <= 2 || numberInRing >= m-2) && k+m+1 == 7 && cutSize == 6 {
			continue
		}
		s, t := reduce.SizeOfVertices(st, path)
		adj2 := clamp0(s - clamp0(k-1) + 1)
		sz2 := adj2/2 + t
		if reduce.IsForbiddenCut(k+m+1, sz2) {
			return true
		}
	}
	return false
}

// Tables holds the two per-cut-size length tables CalcLowerBoundCycle
// reads from: the smallest outer-path length between every ring pair that
// is no longer a forbidden cycle (Length), and its one-fixed-edge variant
// (LengthOneEdge). Both are
// derived entirely from ForbiddenCycle/ForbiddenCycleOneEdge, never the
// reverse, so building them has no circular dependency on the bound they
// in turn feed.
type Tables struct {
	Length        [][]int
	LengthOneEdge [][]int
}

// BuildTables computes both length tables for one cut size: for every
// ordered ring pair (p,q) where q is not p's ring successor (those are
// set to 1), the smallest k
// for which ForbiddenCycle(p,q,k,cutSize) no longer holds.
func BuildTables(st *model.State, cutSize int) *Tables {
	r := st.G.R()
	length := make([][]int, r)
	lengthOneEdge := make([][]int, r)
	for i := range length {
		length[i] = make([]int, r)
		lengthOneEdge[i] = make([]int, r)
	}
	for p := 0; p < r; p++ {
		for q := 0; q < r; q++ {
			if p == q {
				continue
			}
			if st.G.RingNext(p) == q {
				length[p][q] = 1
				lengthOneEdge[p][q] = 1
				continue
			}
			for k := 0; ; k++ {
				if k > cutSize || !ForbiddenCycle(st, p, q, k, cutSize) {
					length[p][q] = k
					break
				}
			}
			for k := 1; ; k++ {
				if k > cutSize || !ForbiddenCycleOneEdge(st, p, q, k, cutSize) {
					lengthOneEdge[p][q] = k
					break
				}
			}
		}
	}
	return &Tables{Length: length, LengthOneEdge: lengthOneEdge}
}

// CalcLowerBoundCycle estimates the shortest outer cycle a two-arc cut
// (p1..q1 contractibly connected with pathlen1 extra edges, p2..q2 with
// pathlen2) can still close into, combining the vertical lengths
// (p1-q1 and p2-q2) with the horizontal ones (q1-p2 and q2-p1) and
// correcting for the case where both halves would otherwise independently
// qualify as their own (smaller) forbidden cut. pathlen1/pathlen2 == 3
// means the arc itself is already long enough that no further bound
// applies.
func CalcLowerBoundCycle(t *Tables, p1, q1, p2, q2, pathlen1, pathlen2, cutSize int) int {
	length := t.Length
	lengthOneEdge := t.LengthOneEdge

	lVertical := maxInt(length[p1][q1], 2-pathlen1) + maxInt(length[p2][q2], 2-pathlen2)
	lHorizontal := length[q1][p2] + length[q2][p1]
	l := lVertical + lHorizontal
	if lVertical+pathlen1+pathlen2 <= 5 && lHorizontal+pathlen1+pathlen2 <= 5 {
		l = lVertical + lHorizontal + 6 - pathlen1 - pathlen2 - maxInt(lVertical, lHorizontal)
	}

	if pathlen1 == 2 {
		l1Vertical := maxInt(lengthOneEdge[p1][q1], 1) + maxInt(length[p2][q2], 2-pathlen2)
		l1Horizontal := minInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
		l1 := l1Vertical + l1Horizontal
		if l1Vertical+pathlen2+1 <= 5 && l1Horizontal+pathlen2+1 <= 5 {
			l1 = l1Vertical + l1Horizontal + 5 - pathlen2 - maxInt(l1Vertical, l1Horizontal)
		}
		l = minInt(l, l1)

		if pathlen2 == 1 {
			l2Vertical := maxInt(length[p1][q1], 2-pathlen1) + maxInt(lengthOneEdge[p2][q2], 2)
			l2Horizontal := minInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
			l2 := l2Vertical + l2Horizontal
			if l2Vertical+pathlen1 <= 5 && l2Horizontal+pathlen1 <= 5 {
				l2 = l2Vertical + l2Horizontal + 6 - pathlen1 - maxInt(l2Horizontal, l2Vertical)
			}
			l = minInt(l, l2)
		}
	}
	if pathlen2 == 2 {
		l1Vertical := maxInt(length[p1][q1], 2-pathlen1) + maxInt(lengthOneEdge[p2][q2], 1)
		l1Horizontal := minInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
		l1 := l1Vertical + l1Horizontal
		if l1Vertical+pathlen1+1 <= 5 && l1Horizontal+pathlen1+1 <= 5 {
			l1 = l1Vertical + l1Horizontal + 5 - pathlen1 - maxInt(l1Vertical, l1Horizontal)
		}
		l = minInt(l, l1)

		if pathlen1 == 1 {
			l2Vertical := maxInt(lengthOneEdge[p1][q1], 2) + maxInt(length[p2][q2], 2-pathlen2)
			l2Horizontal := minInt(length[q2][p1]+lengthOneEdge[q1][p2], lengthOneEdge[q2][p1]+length[q1][p2])
			l2 := l2Vertical + l2Horizontal
			if l2Vertical+pathlen2 <= 5 && l2Horizontal+pathlen2 <= 5 {
				l2 = l2Vertical + l2Horizontal + 6 - pathlen2 - maxInt(l2Vertical, l2Horizontal)
			}
			l = minInt(l, l2)
		}
	}
	if pathlen1 == 3 || pathlen2 == 3 {
		l = 0
	}
	return l
}

// CheckGeneralBridges is a supplemental diagnostic (not part of the
// forbidden-cut catalogue, grounded on the original source's
// contractible-loop diagnostic): for both cut sizes, reports every single arc
// and every cyclic quadruple of ring vertices whose combined length table
// entries already leave no slack, meaning the configuration may still
// reduce by a bridge the current contraction hasn't captured.
func CheckGeneralBridges(st *model.State, t6, t7 *Tables) []string {
	var out []string
	r := st.G.R()
	for _, cutSize := range [2]int{6, 7} {
		tbl := t6
		if cutSize == 7 {
			tbl = t7
		}
		for p := 0; p < r; p++ {
			for q := 0; q < r; q++ {
				if p == q || st.G.RingNext(p) == q {
					continue
				}
				pathlenMax := 1 - st.DistC.At(p, q)
				for pathlen := 0; pathlen <= pathlenMax; pathlen++ {
					if reduce.CheckShortCycle(st, p, q, pathlen, cutSize) {
						continue
					}
					out = append(out, bridgeMsg(p, q, cutSize))
				}
			}
		}
		for p1 := 0; p1 < r; p1++ {
			for q1raw := p1 + 1; q1raw < p1+r; q1raw++ {
				q1 := q1raw % r
				for p2raw := q1raw + 1; p2raw < p1+r; p2raw++ {
					p2 := p2raw % r
					for q2raw := p2raw + 1; q2raw < p1+r; q2raw++ {
						q2 := q2raw % r
						lengthInside := st.DistC.At(q1, p2) + st.DistC.At(q2, p1)
						if lengthInside+tbl.Length[p1][q1]+tbl.Length[p2][q2] <= 1 {
							out = append(out, pairBridgeMsg(p1, q1, p2, q2, cutSize))
						}
						if lengthInside+tbl.Length[p1][q1]+tbl.Length[q2][p2] <= 1 {
							out = append(out, pairBridgeMsg(p1, q1, q2, p2, cutSize))
						}
					}
				}
			}
		}
	}
	return out
}

func bridgeMsg(p, q, cutSize int) string {
	return fmt.Sprintf("may be a bridge: %d-%d-contractible in %d-cycle", p, q, cutSize)
}

func pairBridgeMsg(p1, q1, p2, q2, cutSize int) string {
	return fmt.Sprintf("may be a bridge: %d-%d-contractible, %d-%d-contractible in %d-cycle", p1, q1, p2, q2, cutSize)
}
