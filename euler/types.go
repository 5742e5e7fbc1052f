package euler

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
//
// Errors:
//
//	ErrStartOutOfRange - start vertex is not an index of the adjacency lists.
//	ErrNoSafeEdge      - every remaining edge at the current vertex is a bridge
//	                     (the lists are not Eulerian).
//	ErrEdgesRemaining  - the walk closed but some edges were never reached
//	                     (the edge set is disconnected).
//	ErrNotClosed       - the walk ended away from the start vertex
//	                     (some vertex has odd degree).
//	ErrInvalidCircuit  - Validate found a walk that does not use every edge exactly once.
var (
	ErrStartOutOfRange = errors.New("euler: start vertex out of range")
	ErrNoSafeEdge      = errors.New("euler: no traversable edge")
	ErrEdgesRemaining  = errors.New("euler: edges left unvisited")
	ErrNotClosed       = errors.New("euler: walk does not return to start")
	ErrInvalidCircuit  = errors.New("euler: invalid circuit")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
	ErrUnknownAlgorithm = errors.New("euler: unknown algorithm")
)

// Algorithm selects an extraction strategy.
type Algorithm int

const (
	// AlgorithmFleury avoids bridges at every step; O(E·(V+E)).
	AlgorithmFleury Algorithm = iota

	// AlgorithmHierholzer splices sub-tours with a stack; O(V+E).
	AlgorithmHierholzer
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmFleury:
		return "fleury"
	case AlgorithmHierholzer:
		return "hierholzer"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps "fleury" or "hierholzer" (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fleury", "":
		return AlgorithmFleury, nil
	case "hierholzer":
		return AlgorithmHierholzer, nil
	default:
		return AlgorithmFleury, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Extract runs the selected algorithm; unknown values fall back to Fleury.
func Extract(a Algorithm, adj [][]int, start int) ([]int, error) {
	if a == AlgorithmHierholzer {
		return Hierholzer(adj, start)
	}

	return Fleury(adj, start)
}
