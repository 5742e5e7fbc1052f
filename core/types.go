// Package core defines the Graph type used by the route-inspection solver:
// a fixed-capacity, undirected, weighted graph over dense integer vertex IDs.
//
// The Graph keeps two views of the same edge set:
//
//   - a symmetric weight matrix (0 = no edge), read by shortest-path code;
//   - per-vertex traversal lists, a multiset mirror of the matrix edges that
//     gains auxiliary (unweighted) entries during augmentation and is consumed
//     by Eulerian-circuit extraction.
//
// Errors:
//
//	ErrBadCapacity         - capacity is not positive.
//	ErrInvalidVertex       - vertex ID outside [0, capacity) or not added yet.
//	ErrVertexExists        - vertex ID already added.
//	ErrInvalidEdgeWeight   - edge weight is not positive.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - second original edge between the same endpoints.
//	ErrEdgeNotFound        - traversal edge to remove does not exist.
//	ErrWeightOverflow      - edge would lift the weight total past MaxTotalWeight.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadCapacity indicates NewGraph was called with capacity <= 0.
	ErrBadCapacity = errors.New("core: capacity must be positive")

	// ErrInvalidVertex indicates an operation referenced an ID outside [0, capacity)
	// or a vertex that was never added.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrVertexExists indicates AddVertex was called twice for the same ID.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrInvalidEdgeWeight indicates a non-positive weight passed to AddEdge.
	ErrInvalidEdgeWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel original edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEdgeNotFound indicates a traversal edge removal found no u–v entry.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrWeightOverflow indicates AddEdge would push the original weight total
	// past MaxTotalWeight.
	ErrWeightOverflow = errors.New("core: total edge weight overflow")
)

// NoEdge is the weight-matrix value meaning "no edge between i and j".
const NoEdge int64 = 0

// MaxTotalWeight bounds the sum of all original edge weights. Any shortest
// path, any optimal duplication and their sum then stay far below
// math.MaxInt64, which shortest-path code reserves for "unreachable".
const MaxTotalWeight int64 = math.MaxInt64 / 4

// Graph is the route-inspection graph.
//
// weights is a capacity×capacity row-major matrix; weights[i*capacity+j] is the
// original edge weight or NoEdge. adjacency[v] is the ordered traversal list of v.
// mu guards every field after construction.
type Graph struct {
	mu sync.RWMutex

	capacity  int     // fixed vertex capacity
	present   []bool  // present[v] once AddVertex(v) succeeded
	count     int     // number of added vertices
	edges     int     // number of original edges
	total     int64   // sum of original edge weights, <= MaxTotalWeight
	weights   []int64 // symmetric weight matrix, row-major
	adjacency [][]int // traversal multiset, one list per vertex
}

// NewGraph creates an empty Graph able to hold vertex IDs in [0, capacity).
// Complexity: O(capacity²) for the weight matrix.
func NewGraph(capacity int) (*Graph, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &Graph{
		capacity:  capacity,
		present:   make([]bool, capacity),
		weights:   make([]int64, capacity*capacity),
		adjacency: make([][]int, capacity),
	}, nil
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	Capacity       int   // fixed vertex capacity
	VertexCount    int   // vertices added so far
	EdgeCount      int   // original (weighted) edges
	TraversalCount int   // undirected entries currently in the traversal lists
	TotalWeight    int64 // sum of original edge weights
	OddVertexCount int   // vertices with odd matrix degree
}
