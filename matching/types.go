package matching

import "errors"

// Sentinel errors for the pairing search.
var (
	// ErrOddCount indicates an odd number of vertices; no perfect matching exists.
	ErrOddCount = errors.New("matching: odd number of vertices")

	// ErrDuplicateVertex indicates the same vertex ID appears twice in the input.
	ErrDuplicateVertex = errors.New("matching: duplicate vertex")

	// ErrNilOracle indicates MinimumWeight was called without a distance oracle.
	ErrNilOracle = errors.New("matching: oracle is nil")
)

// Oracle answers shortest-path queries between two vertices of the graph.
// Distance must be symmetric; Path returns the vertex sequence u … v with
// both endpoints included.
type Oracle interface {
	Distance(u, v int) (int64, error)
	Path(u, v int) ([]int, error)
}

// Pair is one unordered odd-vertex pair of a matching, U < V in enumeration
// order, together with the shortest path joining them and its weight.
type Pair struct {
	U, V   int
	Path   []int
	Weight int64
}

// Matching is a set of disjoint pairs covering the input vertex set.
// Score is the sum of the pair weights.
type Matching struct {
	Pairs []Pair
	Score int64

	// Considered is the number of perfect matchings scored during the search.
	Considered int
}
