// Package model bundles the graph and its derived metric/path tables into
// a single read-only value that the reduce, bound, and catalog packages
// all consume. It exists so those packages share one consistent snapshot
// of "the configuration after its current contraction" without each
// threading four or five separate parameters through every call — the
// same role a shared graph store plays for the algorithm packages it
// feeds, just one level up the stack.
package model

import (
	"github.com/katalvlaran/ringcheck/metric"
	"github.com/katalvlaran/ringcheck/pathset"
	"github.com/katalvlaran/ringcheck/ring"
)

// State is an immutable snapshot: a graph, its raw distance matrix, its
// post-contraction distance matrix, the contraction's representative map,
// the bounded-length path cache, and the contraction set itself (needed
// to answer "is (u,v) a 0-weight edge" during path enumeration).
type State struct {
	G        *ring.Graph
	Dist     *metric.Matrix // raw APSP
	DistC    *metric.Matrix // APSP after contraction
	Rep      []int          // representative[v]
	Cache    *pathset.Cache // all simple paths of length <= 7 between ring pairs
	Contract [][2]int       // the contraction edge set, as given to SetContract
}

// ZeroWeight reports whether (u,v) is one of the contracted edges, for use
// with pathset.AllShortestPaths(..., state.ZeroWeight).
func (s *State) ZeroWeight(u, v int) bool {
	for _, e := range s.Contract {
		if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
			return true
		}
	}
	return false
}

// Equivalent reports whether u and v collapse to the same vertex under
// the current contraction.
func (s *State) Equivalent(u, v int) bool { return s.DistC.At(u, v) == 0 }

// ShortestPaths returns every simple shortest path from from to to, raw if
// afterContract is false, contracted otherwise.
func (s *State) ShortestPaths(from, to int, afterContract bool) [][]int {
	if !afterContract {
		return pathset.AllShortestPaths(s.G, from, to, nil)
	}
	return pathset.AllShortestPaths(s.G, from, to, s.ZeroWeight)
}

// Build constructs a State for graph g with the given contraction set
// (nil or empty for "no contraction").
func Build(g *ring.Graph, contract [][2]int) (*State, error) {
	dist := metric.Raw(g)
	distC, err := metric.Contracted(g, contract)
	if err != nil {
		return nil, err
	}
	return &State{
		G:        g,
		Dist:     dist,
		DistC:    distC,
		Rep:      metric.Representatives(distC),
		Cache:    pathset.BuildCache(g),
		Contract: contract,
	}, nil
}
