// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddAuxiliaryEdge/RemoveTraversalEdge,
//       HasEdge/EdgeWeight/EdgeCount/TotalOriginalWeight.
// Determinism:
//   - Traversal lists keep insertion order until SortTraversal() is called.
//   - RemoveTraversalEdge removes the first matching entry in each direction.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// Method tags used for error context.
const (
	methodAddEdge             = "AddEdge"
	methodAddAuxiliaryEdge    = "AddAuxiliaryEdge"
	methodRemoveTraversalEdge = "RemoveTraversalEdge"
	methodEdgeWeight          = "EdgeWeight"
)

// AddEdge creates the original undirected edge u–v with the given weight.
//
// Steps:
//  1. Validate both endpoints exist, weight > 0, u != v.
//  2. Reject a second edge between the same endpoints.
//  3. Reject a weight that would lift the total past MaxTotalWeight.
//  4. Set W[u][v] = W[v][u] = weight.
//  5. Append v to u's traversal list and u to v's.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(methodAddEdge, u); err != nil {
		return err
	}
	if err := g.checkVertex(methodAddEdge, v); err != nil {
		return err
	}
	if weight <= 0 {
		return fmt.Errorf("%s(%d,%d): weight=%d: %w", methodAddEdge, u, v, weight, ErrInvalidEdgeWeight)
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, u, v, ErrLoopNotAllowed)
	}
	if g.weights[u*g.capacity+v] != NoEdge {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, u, v, ErrMultiEdgeNotAllowed)
	}
	if weight > MaxTotalWeight-g.total {
		return fmt.Errorf("%s(%d,%d): weight=%d, total=%d, limit=%d: %w",
			methodAddEdge, u, v, weight, g.total, MaxTotalWeight, ErrWeightOverflow)
	}

	g.weights[u*g.capacity+v] = weight
	g.weights[v*g.capacity+u] = weight
	g.edges++
	g.total += weight
	g.link(u, v)

	return nil
}

// AddAuxiliaryEdge appends u–v to the traversal lists only; the weight matrix is
// left untouched. Augmentation uses it to duplicate shortest-path edges.
// Complexity: O(1) amortized.
func (g *Graph) AddAuxiliaryEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(methodAddAuxiliaryEdge, u); err != nil {
		return err
	}
	if err := g.checkVertex(methodAddAuxiliaryEdge, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): %w", methodAddAuxiliaryEdge, u, v, ErrLoopNotAllowed)
	}
	g.link(u, v)

	return nil
}

// link appends the mirrored pair of traversal entries; callers hold mu.
func (g *Graph) link(u, v int) {
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
}

// RemoveTraversalEdge deletes exactly one occurrence of v from u's traversal list
// and one occurrence of u from v's list. Both entries are located before either
// is removed, so a missing entry leaves the lists untouched.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveTraversalEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(methodRemoveTraversalEdge, u); err != nil {
		return err
	}
	if err := g.checkVertex(methodRemoveTraversalEdge, v); err != nil {
		return err
	}
	iu := slices.Index(g.adjacency[u], v)
	iv := slices.Index(g.adjacency[v], u)
	if iu < 0 || iv < 0 {
		return fmt.Errorf("%s(%d,%d): %w", methodRemoveTraversalEdge, u, v, ErrEdgeNotFound)
	}
	g.adjacency[u] = slices.Delete(g.adjacency[u], iu, iu+1)
	g.adjacency[v] = slices.Delete(g.adjacency[v], iv, iv+1)

	return nil
}

// HasEdge reports whether an original (weighted) edge u–v exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return false
	}

	return g.weights[u*g.capacity+v] != NoEdge
}

// EdgeWeight returns W[u][v], which is NoEdge when the vertices are not adjacent.
func (g *Graph) EdgeWeight(u, v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(methodEdgeWeight, u); err != nil {
		return NoEdge, err
	}
	if err := g.checkVertex(methodEdgeWeight, v); err != nil {
		return NoEdge, err
	}

	return g.weights[u*g.capacity+v], nil
}

// EdgeCount returns the number of original edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// TotalOriginalWeight returns the sum of original edge weights (the upper
// triangle of the weight matrix). It never exceeds MaxTotalWeight.
// Complexity: O(1).
func (g *Graph) TotalOriginalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight()
}

// totalWeight is TotalOriginalWeight without locking; callers hold mu.
func (g *Graph) totalWeight() int64 {
	return g.total
}
