// Package catalog implements the fixed danger-pattern catalogue (§4.7):
// ten 6-cut tests and sixteen 7-cut tests, each looking for a specific
// shape of ring vertices at a specific post-contraction distance from each
// other, and checking whether the region(s) that shape cuts off are too
// large to be legal. The six shapes (pairs, chains, triangles, disjoint
// pairs...) are found by six small finders, each parameterized by the
// post-contraction distance(s) the catalogue's rows need, so twenty-six
// named tests share six enumerators instead of duplicating the ring walk
// twenty-six times.
package catalog

import "github.com/katalvlaran/ringcheck/model"

// findAB finds every ring pair (a,b), a<b, whose post-contraction distance
// is exactly d0. The "ab" shape.
func findAB(st *model.State, d0 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) == d0 {
				out = append(out, []int{a, b})
			}
		}
	}
	return out
}

// findABBC finds, for every ring pair a<b with dist(a,b)==d0, every
// (b,a,c) with c inside the a..b arc and dist(a,c)==d1, and every (a,b,c)
// with c past b and dist(b,c)==d1: the "ab bc" shape, walked in both
// directions around the ring from the ab pair.
func findABBC(st *model.State, d0, d1 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) != d0 {
				continue
			}
			for c := a + 1; c < b; c++ {
				if st.DistC.At(a, c) == d1 {
					out = append(out, []int{b, a, c})
				}
			}
			for craw := b + 1; craw < a+r; craw++ {
				c := craw % r
				if st.DistC.At(b, c) == d1 {
					out = append(out, []int{a, b, c})
				}
			}
		}
	}
	return dedupTuples(out)
}

// findABACBC finds every (a,b,c) (or (b,a,c)) with dist(a,b)==d0,
// dist(b,c)==d1 and dist(a,c)==d2 (or the symmetric pairing). The
// "ab ac bc" shape.
func findABACBC(st *model.State, d0, d1, d2 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) != d0 {
				continue
			}
			for c := a + 1; c < b; c++ {
				if st.DistC.At(b, c) == d1 && st.DistC.At(a, c) == d2 {
					out = append(out, []int{b, a, c})
				}
			}
			for craw := b + 1; craw < a+r; craw++ {
				c := craw % r
				if st.DistC.At(a, c) == d1 && st.DistC.At(b, c) == d2 {
					out = append(out, []int{a, b, c})
				}
			}
		}
	}
	return dedupTuples(out)
}

// findABCD finds every (a,b,c,d) with dist(a,b)==d0 and dist(c,d)==d1,
// where {c,d} sits vertex-disjoint from {a,b} on the ring (either entirely
// outside the a..b arc, or entirely inside it). The "ab cd" shape.
func findABCD(st *model.State, d0, d1 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) != d0 {
				continue
			}
			for craw := b + 1; craw < a+r; craw++ {
				for draw := craw + 1; draw < a+r; draw++ {
					c, d := craw%r, draw%r
					if st.DistC.At(c, d) == d1 {
						out = append(out, []int{a, b, c, d})
					}
				}
			}
			for c := a + 1; c < b; c++ {
				for d := c + 1; d < b; d++ {
					if st.DistC.At(c, d) == d1 {
						out = append(out, []int{b, a, c, d})
					}
				}
			}
		}
	}
	return dedupTuples(out)
}

// findABBCCD finds every (a,b,c,d) with dist(a,b)==d0, dist(b,c)==d1 and
// dist(c,d)==d2, all four vertices distinct: the "ab bc cd" shape, a
// three-step chain around the ring.
func findABBCCD(st *model.State, d0, d1, d2 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) != d0 {
				continue
			}
			for craw := b + 1; craw < a+r; craw++ {
				c := craw % r
				if st.DistC.At(b, c) != d1 {
					continue
				}
				for draw := craw + 1; draw < a+r; draw++ {
					d := draw % r
					if st.DistC.At(c, d) == d2 {
						out = append(out, []int{a, b, c, d})
					}
				}
			}
			for c := a + 1; c < b; c++ {
				if st.DistC.At(a, c) != d1 {
					continue
				}
				for d := c + 1; d < b; d++ {
					if st.DistC.At(c, d) == d2 {
						out = append(out, []int{b, a, c, d})
					}
				}
			}
		}
	}
	return dedupTuples(out)
}

// findABBCDE finds every (a,b,c,d,e) with dist(a,b)==d0, dist(b,c)==d1
// and dist(d,e)==d2, where d,e sit past c on the ring: the "ab bc de"
// shape, a two-step chain plus a vertex-disjoint trailing pair.
func findABBCDE(st *model.State, d0, d1, d2 int) [][]int {
	r := st.G.R()
	var out [][]int
	for a := 0; a < r; a++ {
		for b := a + 1; b < r; b++ {
			if st.DistC.At(a, b) != d0 {
				continue
			}
			for craw := b + 1; craw < a+r; craw++ {
				c := craw % r
				if st.DistC.At(b, c) != d1 {
					continue
				}
				for draw := craw + 1; draw < a+r; draw++ {
					for eraw := draw + 1; eraw < a+r; eraw++ {
						d, e := draw%r, eraw%r
						if st.DistC.At(d, e) == d2 {
							out = append(out, []int{a, b, c, d, e})
						}
					}
				}
			}
			for c := a + 1; c < b; c++ {
				if st.DistC.At(a, c) != d1 {
					continue
				}
				for d := c + 1; d < b; d++ {
					for e := d + 1; e < b; e++ {
						if st.DistC.At(d, e) == d2 {
							out = append(out, []int{b, a, c, d, e})
						}
					}
				}
			}
		}
	}
	return dedupTuples(out)
}

// dedupTuples removes duplicate anchor tuples, preserving the first
// occurrence's order: both branches of the finders above can legitimately
// emit the same tuple from different starting points around the ring.
func dedupTuples(in [][]int) [][]int {
	seen := make(map[string]bool, len(in))
	out := make([][]int, 0, len(in))
	for _, t := range in {
		key := tupleKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

func tupleKey(t []int) string {
	buf := make([]byte, 0, len(t)*3)
	for _, v := range t {
		buf = append(buf, byte(v>>8), byte(v), ',')
	}
	return string(buf)
}
