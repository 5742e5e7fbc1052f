// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostic views: AdjacencyMatrixSnapshot, OddVertices, Stats.
// Policy:
//   - No algorithms here beyond counting.
//   - Every returned slice is a fresh copy the caller may mutate.

package core

// AdjacencyMatrixSnapshot returns a capacity×capacity copy of the weight matrix.
// Complexity: O(capacity²).
func (g *Graph) AdjacencyMatrixSnapshot() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int64, g.capacity)
	for i := range out {
		out[i] = make([]int64, g.capacity)
		copy(out[i], g.weights[i*g.capacity:(i+1)*g.capacity])
	}

	return out
}

// OddVertices returns, ascending, the added vertices whose matrix degree is odd.
// Complexity: O(capacity²).
func (g *Graph) OddVertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.oddVertices()
}

func (g *Graph) oddVertices() []int {
	var odd []int
	for v := 0; v < g.capacity; v++ {
		if g.present[v] && g.degree(v)%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}

// Stats produces a snapshot of sizes and totals for diagnostics.
// Complexity: O(capacity²).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &GraphStats{
		Capacity:       g.capacity,
		VertexCount:    g.count,
		EdgeCount:      g.edges,
		TraversalCount: g.traversalCount(),
		TotalWeight:    g.totalWeight(),
		OddVertexCount: len(g.oddVertices()),
	}
}
