// Package confio reads a configuration file (§6) into a
// ring.Graph, and translates the CLI's dual-edge ids into primal edges
// for the contraction set.
package confio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ringcheck/ring"
)

// Sentinel errors for malformed input (§7: "Input error" kind).
var (
	ErrEmptyFile     = errors.New("confio: file has no content")
	ErrMalformedSize = errors.New("confio: line 2 must be two integers \"n r\"")
	ErrMalformedDecl = errors.New("confio: interior vertex declaration line is malformed")
	ErrOutOfSequence = errors.New("confio: interior vertex label out of sequence")
	ErrBadEdgeID     = errors.New("confio: dual-edge id out of range")
)

// Read parses a configuration file: a comment line, a line "n r", then
// one declaration line per interior vertex (1-based label, degree, then
// that many 1-based neighbour labels). Ring-to-interior edges declared
// from an interior vertex's neighbour list are inserted symmetrically by
// ring.New.
func Read(r io.Reader) (*ring.Graph, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrEmptyFile
	}
	// Line 1 is an arbitrary, ignored comment.

	if !scanner.Scan() {
		return nil, fmt.Errorf("confio: missing size line: %w", ErrMalformedSize)
	}
	n, ringSize, err := parseSize(scanner.Text())
	if err != nil {
		return nil, err
	}

	declared := make(map[int][]int, n-ringSize)
	for v := ringSize; v < n; v++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("confio: missing declaration for interior vertex %d: %w", v+1, ErrMalformedDecl)
		}
		label, neighbours, err := parseDeclaration(scanner.Text())
		if err != nil {
			return nil, err
		}
		if label-1 != v {
			return nil, fmt.Errorf("confio: expected interior vertex %d, got %d: %w", v+1, label, ErrOutOfSequence)
		}
		declared[v] = neighbours
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("confio: reading input: %w", err)
	}

	return ring.New(n, ringSize, declared)
}

func parseSize(line string) (n, r int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("confio: line %q: %w", line, ErrMalformedSize)
	}
	n, errN := strconv.Atoi(fields[0])
	r, errR := strconv.Atoi(fields[1])
	if errN != nil || errR != nil {
		return 0, 0, fmt.Errorf("confio: line %q: %w", line, ErrMalformedSize)
	}
	return n, r, nil
}

func parseDeclaration(line string) (label int, neighbours []int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("confio: line %q: %w", line, ErrMalformedDecl)
	}
	label, errL := strconv.Atoi(fields[0])
	degree, errD := strconv.Atoi(fields[1])
	if errL != nil || errD != nil {
		return 0, nil, fmt.Errorf("confio: line %q: %w", line, ErrMalformedDecl)
	}
	if len(fields) != 2+degree {
		return 0, nil, fmt.Errorf("confio: line %q declares degree %d but lists %d neighbours: %w",
			line, degree, len(fields)-2, ErrMalformedDecl)
	}
	neighbours = make([]int, degree)
	for i := 0; i < degree; i++ {
		v, err := strconv.Atoi(fields[2+i])
		if err != nil {
			return 0, nil, fmt.Errorf("confio: line %q: %w", line, ErrMalformedDecl)
		}
		neighbours[i] = v - 1 // 1-based -> 0-based
	}
	return label, neighbours, nil
}
