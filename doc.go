// Package ringcheck verifies reducible configurations for the
// discharging-method proof on cubic graphs (snarks). A configuration is
// a planar near-triangulation: a bounding ring of vertices 0..r-1 plus
// interior vertices, read from a configuration file (confio). Given a
// contraction (a set of edges collapsed to zero distance),
// Configuration.Analyze checks the contracted structure against a fixed
// catalogue of dangerous 6-cut and 7-cut patterns (catalog) and reports
// every match as a log warning — it never fails the run outright; a
// match is a finding, not an error.
//
// The package layout mirrors the pipeline:
//
//	ring    — the graph store: ring/interior vertex split, adjacency
//	metric  — all-pairs shortest paths, raw and post-contraction
//	pathset — shortest-path enumeration and the bounded path cache
//	model   — bundles the above into one read-only snapshot
//	reduce  — cut-reduction: vertices already known not to matter
//	bound   — outer-cycle length lower bounds
//	catalog — the danger-pattern catalogue and its evaluator
//	confio  — configuration file I/O and dual-edge id translation
//	logx    — verbosity-scoped logging
//	cmd/ringcheck — the CLI entry point
package ringcheck
