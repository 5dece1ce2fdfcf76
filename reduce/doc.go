// Package reduce answers "is this vertex already known not to matter for
// a cut analysis of this size" before the expensive catalogue walk runs
// at all: CalcCutReduction for vertices cut off from the ring by a small
// enough vertex set, CalcReductableVertices for vertices isolated by a
// short ring-to-ring path. Both rely on the same component walker
// (component.go) and the almost-minimal / forbidden-cut tests
// (checkshortcycle.go) that bound.go and catalog.go reuse directly.
package reduce
