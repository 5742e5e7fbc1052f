// File: methods_adjacent.go
// Role: Adjacency queries over both views: Neighbors (traversal lists),
//       MatrixNeighbors/Degree (weight matrix), SortTraversal/TraversalSnapshot.
// Determinism:
//   - MatrixNeighbors returns ascending IDs.
//   - Neighbors returns the live order of the traversal list (ascending after SortTraversal).

package core

import "slices"

// Neighbors returns a copy of v's current traversal list, duplicates included.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}

	return slices.Clone(g.adjacency[v]), nil
}

// MatrixNeighbors returns the vertices w with W[v][w] != NoEdge, ascending.
// Shortest-path code walks these rather than the traversal lists.
// Complexity: O(capacity).
func (g *Graph) MatrixNeighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("MatrixNeighbors", v); err != nil {
		return nil, err
	}
	row := g.weights[v*g.capacity : (v+1)*g.capacity]
	out := make([]int, 0, len(g.adjacency[v]))
	for w, weight := range row {
		if weight != NoEdge {
			out = append(out, w)
		}
	}

	return out, nil
}

// Degree counts the nonzero entries in row v of the weight matrix.
// Auxiliary traversal entries are not counted.
// Complexity: O(capacity).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}

	return g.degree(v), nil
}

// degree is Degree without validation or locking; callers hold mu.
func (g *Graph) degree(v int) int {
	var d int
	for _, weight := range g.weights[v*g.capacity : (v+1)*g.capacity] {
		if weight != NoEdge {
			d++
		}
	}

	return d
}

// SortTraversal sorts every traversal list ascending by neighbor ID.
// Complexity: O(Σ deg·log deg).
func (g *Graph) SortTraversal() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for v := range g.adjacency {
		slices.Sort(g.adjacency[v])
	}
}

// TraversalSnapshot returns a deep copy of all traversal lists, indexed by vertex ID.
// Complexity: O(capacity + Σ deg).
func (g *Graph) TraversalSnapshot() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, g.capacity)
	for v := range g.adjacency {
		out[v] = slices.Clone(g.adjacency[v])
	}

	return out
}

// TraversalCount returns the number of undirected entries in the traversal lists.
func (g *Graph) TraversalCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.traversalCount()
}

func (g *Graph) traversalCount() int {
	var sum int
	for _, nbrs := range g.adjacency {
		sum += len(nbrs)
	}

	return sum / 2
}

// TraversalMultiplicity returns how many u–v entries u's traversal list holds.
func (g *Graph) TraversalMultiplicity(u, v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex("TraversalMultiplicity", u); err != nil {
		return 0, err
	}
	if err := g.checkVertex("TraversalMultiplicity", v); err != nil {
		return 0, err
	}
	var c int
	for _, w := range g.adjacency[u] {
		if w == v {
			c++
		}
	}

	return c, nil
}
