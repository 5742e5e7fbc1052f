// Package dijkstra defines the result type and sentinel errors of the
// single-source shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target vertex does not exist.
//	– ErrUnreachable     if the target has no finite distance from the source.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or target vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that the target cannot be reached from the source,
	// i.e. the graph is disconnected.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Infinity is the distance reported for vertices not reachable from the source.
const Infinity int64 = math.MaxInt64

// noPredecessor marks the source and every unreached vertex in Result.prev.
const noPredecessor = -1

// Result holds the finalized single-source state: tentative distances became
// final distances, and prev[v] is v's predecessor on a shortest path.
type Result struct {
	source  int
	dist    []int64 // indexed by vertex ID; Infinity when unreachable
	prev    []int   // indexed by vertex ID; noPredecessor for source/unreached
	present []bool  // vertices that existed when the run started
}

// Source returns the vertex the distances are measured from.
func (r *Result) Source() int { return r.source }
