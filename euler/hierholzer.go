package euler

import (
	"fmt"
	"slices"
)

// Hierholzer returns an Eulerian circuit of the undirected multigraph adj,
// starting and ending at start, in O(V+E). Like Fleury it consumes adj.
// Each step takes the last remaining neighbor of the stack top, so the
// circuit differs from Fleury's but covers the same edge multiset.
func Hierholzer(adj [][]int, start int) ([]int, error) {
	if start < 0 || start >= len(adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, len(adj))
	}

	var circuit []int     // vertices in pop order (reversed walk)
	stack := []int{start} // DFS stack, initialized with start

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(adj[u]) == 0 {
			// no more edges: backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		// traverse one edge u→v and drop its mirror v→u
		v := adj[u][len(adj[u])-1]
		adj[u] = adj[u][:len(adj[u])-1]
		if i := slices.Index(adj[v], u); i >= 0 {
			adj[v] = slices.Delete(adj[v], i, i+1)
		}
		stack = append(stack, v)
	}
	slices.Reverse(circuit)

	if left := remainingEdges(adj); left > 0 {
		return circuit, fmt.Errorf("%w: %d edge(s) not reachable from %d", ErrEdgesRemaining, left, start)
	}
	if circuit[len(circuit)-1] != start {
		return circuit, fmt.Errorf("%w: stopped at %d, started at %d", ErrNotClosed, circuit[len(circuit)-1], start)
	}

	return circuit, nil
}
