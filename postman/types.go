package postman

import (
	"errors"

	"github.com/katalvlaran/postman/euler"
	"github.com/katalvlaran/postman/matching"
)

// Sentinel errors returned by Solve and its phases.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("postman: graph is nil")

	// ErrUnreachable indicates some vertex cannot be reached from the start.
	// Errors carrying it also match dijkstra.ErrUnreachable.
	ErrUnreachable = errors.New("postman: graph is not connected")

	// ErrDegreeParity indicates an odd number of odd-degree vertices, which
	// contradicts the handshake lemma and means the graph state is corrupt.
	ErrDegreeParity = errors.New("postman: odd number of odd-degree vertices")

	// ErrTooManyOddVertices indicates the odd set exceeds WithMaxOddVertices.
	ErrTooManyOddVertices = errors.New("postman: too many odd-degree vertices")
)

// Extractor selects the Eulerian-circuit algorithm used in the last phase.
type Extractor = euler.Algorithm

const (
	// FleuryExtractor walks edge by edge and never crosses a bridge unless forced.
	FleuryExtractor = euler.AlgorithmFleury

	// HierholzerExtractor splices sub-tours in linear time.
	HierholzerExtractor = euler.AlgorithmHierholzer
)

// Result describes an optimal postman route.
type Result struct {
	// Weight is the total route cost: original edge weights plus ExtraWeight.
	Weight int64

	// Circuit is the closed walk as a vertex sequence, Start at both ends.
	Circuit []int

	Start int

	// OddVertices are the odd-degree vertices of the input, ascending.
	OddVertices []int

	// Pairs is the winning matching with the duplicated shortest paths.
	Pairs []matching.Pair

	// ExtraWeight is the matching score, the cost of the duplicated paths.
	ExtraWeight int64

	// MatchingsConsidered is the number of perfect matchings scored.
	MatchingsConsidered int

	// EdgeCount is the number of original edges; TraversalCount adds the duplicates.
	EdgeCount      int
	TraversalCount int

	Extractor Extractor
}

// Steps returns the number of edge traversals in the circuit.
func (r *Result) Steps() int {
	if len(r.Circuit) == 0 {
		return 0
	}

	return len(r.Circuit) - 1
}

// Eulerian reports whether the input needed no duplicated edges.
func (r *Result) Eulerian() bool { return len(r.OddVertices) == 0 }
