// File: methods_clone.go
// Role: Cloning and handing over the traversal lists.
// Concurrency:
//   - Clone takes a read lock on the source; TakeTraversal takes the write lock.

package core

import "slices"

// Clone returns a deep copy of the Graph: vertices, weight matrix and the
// current traversal lists.
// Complexity: O(capacity² + Σ deg).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		capacity:  g.capacity,
		present:   slices.Clone(g.present),
		count:     g.count,
		edges:     g.edges,
		total:     g.total,
		weights:   slices.Clone(g.weights),
		adjacency: make([][]int, g.capacity),
	}
	for v := range g.adjacency {
		clone.adjacency[v] = slices.Clone(g.adjacency[v])
	}

	return clone
}

// TakeTraversal moves the traversal lists out of the graph and leaves every
// list empty. The caller owns the returned lists; circuit extraction consumes
// them. Weights and vertices are not affected.
// Complexity: O(capacity).
func (g *Graph) TakeTraversal() [][]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.adjacency
	g.adjacency = make([][]int, g.capacity)

	return out
}
