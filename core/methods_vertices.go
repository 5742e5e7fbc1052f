// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount/Capacity.
// Determinism:
//   - Vertices() returns IDs in ascending order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddVertex registers vertex id. The ID must lie in [0, Capacity()) and must not
// have been added before.
//
// Errors:
//   - ErrInvalidVertex if id is out of range (this also covers "capacity exceeded").
//   - ErrVertexExists if id was already added.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= g.capacity {
		return fmt.Errorf("AddVertex(%d): capacity=%d: %w", id, g.capacity, ErrInvalidVertex)
	}
	if g.present[id] {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrVertexExists)
	}
	g.present[id] = true
	g.count++

	return nil
}

// HasVertex reports whether id has been added.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

// hasVertex is HasVertex without locking; callers hold mu.
func (g *Graph) hasVertex(id int) bool {
	return id >= 0 && id < g.capacity && g.present[id]
}

// checkVertex returns a wrapped ErrInvalidVertex when id is unknown; callers hold mu.
func (g *Graph) checkVertex(method string, id int) error {
	if !g.hasVertex(id) {
		return fmt.Errorf("%s: vertex %d: %w", method, id, ErrInvalidVertex)
	}

	return nil
}

// Vertices returns the added vertex IDs in ascending order.
// Complexity: O(capacity).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.count)
	for v := 0; v < g.capacity; v++ {
		if g.present[v] {
			out = append(out, v)
		}
	}

	return out
}

// VertexCount returns the number of added vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.count
}

// Capacity returns the fixed vertex capacity chosen at construction.
func (g *Graph) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.capacity
}
