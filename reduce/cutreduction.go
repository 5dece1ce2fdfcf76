package reduce

import "github.com/katalvlaran/ringcheck/model"

// CalcCutReduction returns the inside-reductable mask: for every vertex
// seed set of size 1, 2 and 3, the component(s) left over after removing
// the seed's equivalence closure are checked, and any component that
// contains no ring vertex gets every member marked reductable (§4.5 —
// "a vertex separated from the ring by a small cut can always be removed
// first without affecting the outcome").
func CalcCutReduction(st *model.State) []bool {
	n := st.G.N()
	r := st.G.R()

	isRing := make([]bool, n)
	for v := 0; v < n; v++ {
		for u := 0; u < r; u++ {
			if st.Equivalent(v, u) {
				isRing[v] = true
				break
			}
		}
	}

	isReductable := make([]bool, n)
	for v0 := 0; v0 < n; v0++ {
		markReductable(isReductable, componentIDs(st, []int{v0}), isRing)
		for v1 := 0; v1 < v0; v1++ {
			markReductable(isReductable, componentIDs(st, []int{v0, v1}), isRing)
			for v2 := 0; v2 < v1; v2++ {
				markReductable(isReductable, componentIDs(st, []int{v0, v1, v2}), isRing)
			}
		}
	}
	return isReductable
}
