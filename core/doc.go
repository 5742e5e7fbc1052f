// Package core provides the in-memory graph model of the route-inspection solver.
//
// A Graph G = (V,E) is undirected and weighted, with vertex IDs drawn from a
// fixed range [0, capacity). It stores every original edge twice over:
//
//   - Weight matrix: W[u][v] = W[v][u] = weight (> 0), or NoEdge (0).
//     Read by Dijkstra (MatrixNeighbors, EdgeWeight) and by degree/odd-vertex
//     detection (Degree, OddVertices). Never modified after AddEdge.
//   - Traversal lists: adjacency[v] is an ordered multiset of neighbor IDs.
//     AddEdge and AddAuxiliaryEdge append to both endpoints, RemoveTraversalEdge
//     deletes one entry from both endpoints; the two directions never diverge.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(6)      // capacity is fixed
//	_ = g.AddVertex(0)             // vertices first
//	_ = g.AddEdge(0, 1, 7)         // then weighted edges
//	_ = g.AddAuxiliaryEdge(0, 1)   // augmentation: traversal-only duplicates
//	g.SortTraversal()              // deterministic order before extraction
//	adj := g.TakeTraversal()       // hand the lists to circuit extraction
//
// Rejected inputs (see types.go for the sentinel set): self-loops, parallel
// original edges, non-positive weights, unknown vertex IDs.
//
// Concurrency: a single sync.RWMutex guards the graph. Read-only methods may
// run in parallel, which the solver relies on while it precomputes shortest
// paths from several sources.
//
// Complexity:
//
//	AddVertex, AddEdge, AddAuxiliaryEdge     O(1) amortized
//	RemoveTraversalEdge                      O(deg(u)+deg(v))
//	Degree, MatrixNeighbors                  O(capacity)
//	TotalOriginalWeight, OddVertices, Stats  O(capacity²)
//	Clone, AdjacencyMatrixSnapshot           O(capacity² + E)
package core
