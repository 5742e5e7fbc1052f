// Package euler extracts Eulerian circuits from undirected multigraphs given
// as adjacency lists ([][]int, one list of neighbor IDs per vertex).
//
// What:
//
//   - Fleury: walks edge by edge, refusing bridges unless forced, using a
//     reachability count before and after a provisional removal.
//   - Hierholzer: stack-based splice of closed sub-tours, linear time.
//   - Validate: checks a walk against the edge multiset it should cover.
//
// Both extractors consume the lists they are given; pass a copy to keep the
// original. Neither recurses: reachability uses an explicit work-stack, and
// the walk itself is a loop, so very large graphs cannot exhaust the stack.
//
// Complexity:
//
//   - Fleury:     O(E·(V+E)), Memory: O(V).
//   - Hierholzer: O(V+E),     Memory: O(V+E).
//   - Validate:   O(V+E),     Memory: O(E).
package euler
