// SPDX-License-Identifier: MIT
//
// fleury.go — Fleury's algorithm with a live bridge test.
//
// Contract:
//   • adj is an undirected multigraph in adjacency-list form: for every entry
//     v in adj[u] there is a matching entry u in adj[v].
//   • adj is consumed: every traversed edge is removed from both endpoints.
//   • Candidates at the current vertex are scanned in list order (callers sort
//     the lists ascending beforehand).
//   • A rejected candidate leaves adj exactly as it was, element positions included.
//
// Complexity:
//   • Time: O(E·(V+E)) — at most two reachability counts per rejected candidate.
//   • Space: O(V) for the visit stamps and the DFS work-stack.

package euler

import (
	"fmt"
	"slices"
)

// Fleury extracts an Eulerian circuit from adj starting and ending at start.
//
// At each step, with u the current vertex:
//  1. If u has a single remaining neighbor, that edge is forced.
//  2. Otherwise count₁ = |reach(u)|; for each candidate v in order, detach u–v,
//     count₂ = |reach(u)|. count₂ < count₁ marks a bridge: reattach and try the
//     next candidate. Otherwise the edge stays removed and the walk moves to v.
//
// The walk stops when u has no edges left. Leftover edges yield ErrEdgesRemaining;
// a stop away from start yields ErrNotClosed.
func Fleury(adj [][]int, start int) ([]int, error) {
	if start < 0 || start >= len(adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, len(adj))
	}

	f := &fleury{
		adj:   adj,
		stamp: make([]int, len(adj)),
	}
	circuit := []int{start}
	u := start
	for len(f.adj[u]) > 0 {
		v, err := f.next(u)
		if err != nil {
			return circuit, err
		}
		circuit = append(circuit, v)
		u = v
	}

	if left := remainingEdges(f.adj); left > 0 {
		return circuit, fmt.Errorf("%w: %d edge(s) not reachable from %d", ErrEdgesRemaining, left, start)
	}
	if u != start {
		return circuit, fmt.Errorf("%w: stopped at %d, started at %d", ErrNotClosed, u, start)
	}

	return circuit, nil
}

// fleury holds the consumed lists and the reusable DFS scratch space.
type fleury struct {
	adj   [][]int
	stamp []int // stamp[v] == round when v was reached in the current count
	round int   // bumped per reachability count so stamp never needs clearing
	stack []int // explicit DFS work-stack
}

// next consumes one edge at u and returns the vertex it leads to.
func (f *fleury) next(u int) (int, error) {
	// Forced move: skipping it would strand the rest of the component.
	if len(f.adj[u]) == 1 {
		v := f.adj[u][0]
		f.detach(u, 0)

		return v, nil
	}

	before := f.reach(u)
	for i := 0; i < len(f.adj[u]); i++ {
		v, j := f.detach(u, i)
		if f.reach(u) < before {
			// Bridge: put both entries back where they were.
			f.reattach(u, i, v, j)
			continue
		}

		return v, nil
	}

	return 0, fmt.Errorf("%w: at vertex %d with %d edge(s)", ErrNoSafeEdge, u, len(f.adj[u]))
}

// detach removes adj[u][i] (= v) and the first u in adj[v]; it returns v and
// the index the mirror entry occupied.
func (f *fleury) detach(u, i int) (v, j int) {
	v = f.adj[u][i]
	f.adj[u] = slices.Delete(f.adj[u], i, i+1)
	j = slices.Index(f.adj[v], u)
	f.adj[v] = slices.Delete(f.adj[v], j, j+1)

	return v, j
}

// reattach undoes detach.
func (f *fleury) reattach(u, i, v, j int) {
	f.adj[u] = slices.Insert(f.adj[u], i, v)
	f.adj[v] = slices.Insert(f.adj[v], j, u)
}

// reach counts the vertices reachable from src over the remaining edges,
// src included, using an explicit stack instead of recursion.
func (f *fleury) reach(src int) int {
	f.round++
	f.stack = append(f.stack[:0], src)
	f.stamp[src] = f.round
	count := 1
	for len(f.stack) > 0 {
		u := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		for _, v := range f.adj[u] {
			if f.stamp[v] != f.round {
				f.stamp[v] = f.round
				count++
				f.stack = append(f.stack, v)
			}
		}
	}

	return count
}

// remainingEdges counts undirected edges still present in adj.
func remainingEdges(adj [][]int) int {
	var sum int
	for _, nbrs := range adj {
		sum += len(nbrs)
	}

	return sum / 2
}
