// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// weight matrix of a core.Graph.
//
// Only the matrix is read; the traversal lists (which may already carry
// auxiliary duplicates) are never consulted.
//
// Complexity:
//
//   - Time:  O(V² + E log V); one O(V) matrix row scan per finalized vertex,
//     plus up to E lazy heap pushes.
//   - Space: O(V²) for the matrix snapshot, O(V + E) for state and heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - The heap orders by (distance, vertex ID), so among equal tentative
//     distances the lowest ID is finalized first; together with strict "<"
//     relaxation this makes predecessors, and therefore paths, deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/postman/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound, also matching core.ErrInvalidVertex).
//
// Unreachable vertices are not an error here; they surface as ErrUnreachable
// from Result.Distance / Result.PathTo.
func Dijkstra(g *core.Graph, source int) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source exists
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d: %w", ErrVertexNotFound, source, core.ErrInvalidVertex)
	}

	// 3) Snapshot the read-only inputs once.
	weights := g.AdjacencyMatrixSnapshot()
	n := len(weights)
	present := make([]bool, n)
	for _, v := range g.Vertices() {
		present[v] = true
	}

	r := &runner{
		weights: weights,
		res: &Result{
			source:  source,
			dist:    make([]int64, n),
			prev:    make([]int, n),
			present: present,
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize and run the main loop.
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	weights [][]int64 // matrix snapshot; weights[u][v] == core.NoEdge means no edge
	res     *Result   // distances and predecessors being finalized
	visited []bool    // visited[v] once v's distance is final
	pq      nodePQ    // min-heap of *nodeItem
}

// init sets every distance to Infinity, every predecessor to none, and
// pushes the source with distance 0.
func (r *runner) init() {
	for v := range r.res.dist {
		r.res.dist[v] = Infinity
		r.res.prev[v] = noPredecessor
	}
	r.res.dist[r.res.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.source, dist: 0})
}

// process repeatedly extracts the unvisited vertex with minimum tentative
// distance and relaxes its matrix neighbors, until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax scans row u of the matrix and improves neighbor distances.
// Assumes r.res.dist[u] is final.
func (r *runner) relax(u int) {
	du := r.res.dist[u]
	for v, w := range r.weights[u] {
		if w == core.NoEdge || !r.res.present[v] || r.visited[v] {
			continue
		}
		if w > Infinity-du {
			continue // du + w would not fit; treat v as out of reach via u
		}
		// Strict "<" keeps the first predecessor found.
		if nd := du + w; nd < r.res.dist[v] {
			r.res.dist[v] = nd
			r.res.prev[v] = u
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// Distance returns the shortest distance from the source to target.
func (r *Result) Distance(target int) (int64, error) {
	if err := r.checkTarget(target); err != nil {
		return Infinity, err
	}

	return r.dist[target], nil
}

// Reachable reports whether target has a finite distance from the source.
func (r *Result) Reachable(target int) bool {
	return target >= 0 && target < len(r.dist) && r.present[target] && r.dist[target] != Infinity
}

// Unreached returns, ascending, the vertices with no finite distance.
func (r *Result) Unreached() []int {
	var out []int
	for v, ok := range r.present {
		if ok && r.dist[v] == Infinity {
			out = append(out, v)
		}
	}

	return out
}

// PathTo reconstructs the vertex sequence source → … → target by following
// predecessors backwards and reversing. Both endpoints are included; the path
// to the source itself is [source].
func (r *Result) PathTo(target int) ([]int, error) {
	if err := r.checkTarget(target); err != nil {
		return nil, err
	}

	var path []int
	for v := target; v != noPredecessor; v = r.prev[v] {
		path = append(path, v)
	}
	slices.Reverse(path)

	return path, nil
}

// checkTarget validates target and reports ErrUnreachable for infinite distances.
func (r *Result) checkTarget(target int) error {
	if target < 0 || target >= len(r.dist) || !r.present[target] {
		return fmt.Errorf("%w: target %d: %w", ErrVertexNotFound, target, core.ErrInvalidVertex)
	}
	if r.dist[target] == Infinity {
		return fmt.Errorf("%w: %d→%d", ErrUnreachable, r.source, target)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex ID
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex ID so the lowest ID wins ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there first).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
