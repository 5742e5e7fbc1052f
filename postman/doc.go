// Package postman solves the undirected Route Inspection (Chinese Postman)
// problem: the cheapest closed walk from a start vertex that traverses every
// edge of a connected, positively weighted graph at least once.
//
// Pipeline (Solve):
//
//  1. Clone the caller's graph and check every vertex is reachable from start.
//  2. OddVertices: collect the vertices of odd degree (always an even count).
//  3. Shortest paths: one Dijkstra run per odd vertex, in parallel over the
//     read-only weight matrix (errgroup, WithWorkers).
//  4. matching.MinimumWeight: exhaustive minimum-weight perfect matching of
//     the odd vertices under shortest-path distance.
//  5. Augment: duplicate every edge of each chosen path in the traversal
//     lists, then sort the lists ascending.
//  6. euler.Extract: Fleury (default) or Hierholzer over the augmented lists.
//
// The route weight is the original edge total plus the matching score.
// Ties are broken by lowest vertex ID throughout, so repeated calls on the
// same graph return identical circuits.
//
// Complexity is dominated by step 4: (2k-1)!! matchings for 2k odd vertices.
// WithMaxOddVertices bounds it.
//
// Example:
//
//	g, _ := core.NewGraph(3)
//	for v := 0; v < 3; v++ {
//		_ = g.AddVertex(v)
//	}
//	_ = g.AddEdge(0, 1, 2)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 0, 3)
//	res, err := postman.Solve(g, postman.WithStart(0))
//	// res.Weight == 7, res.Circuit == [0 1 2 0]
package postman
