// Package dijkstra_test contains unit tests for the matrix-based Dijkstra:
// validation, distances and paths on small graphs, deterministic tie-breaking,
// and unreachable targets.
package dijkstra_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// build creates a graph with vertices 0..n-1 and the given weighted edges.
func build(t *testing.T, n int, edges [][3]int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for v := 0; v < n; v++ {
		if err = g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if err = g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// canonical is the six-vertex street map (total weight 24).
func canonical(t *testing.T) *core.Graph {
	return build(t, 6, [][3]int64{
		{0, 1, 1}, {0, 3, 2}, {1, 2, 3}, {1, 3, 5},
		{2, 4, 6}, {2, 5, 2}, {3, 4, 4}, {4, 5, 1},
	})
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, 0); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := build(t, 2, nil)
	for _, src := range []int{-1, 2, 7} {
		_, err := dijkstra.Dijkstra(g, src)
		if !errors.Is(err, dijkstra.ErrVertexNotFound) || !errors.Is(err, core.ErrInvalidVertex) {
			t.Fatalf("source %d: expected ErrVertexNotFound wrapping core.ErrInvalidVertex, got %v", src, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: distances and reconstructed paths.
// ------------------------------------------------------------------------

func TestDijkstra_CanonicalDistances(t *testing.T) {
	res, err := dijkstra.Dijkstra(canonical(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{1, 0, 3, 3, 6, 5}
	for v, w := range want {
		got, err := res.Distance(v)
		if err != nil {
			t.Fatalf("Distance(%d): %v", v, err)
		}
		if got != w {
			t.Errorf("dist[%d] = %d; want %d", v, got, w)
		}
	}
}

func TestDijkstra_PathTo(t *testing.T) {
	res, err := dijkstra.Dijkstra(canonical(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[int][]int{
		1: {1},
		3: {1, 0, 3},
		4: {1, 2, 5, 4},
		5: {1, 2, 5},
	}
	for target, want := range cases {
		got, err := res.PathTo(target)
		if err != nil {
			t.Fatalf("PathTo(%d): %v", target, err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("PathTo(%d) = %v; want %v", target, got, want)
		}
	}
}

func TestDijkstra_TriangleShortcut(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): the two-hop route wins.
	res, err := dijkstra.Dijkstra(build(t, 3, [][3]int64{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(2); d != 3 {
		t.Errorf("dist[2] = %d; want 3", d)
	}
	if p, _ := res.PathTo(2); !slices.Equal(p, []int{0, 1, 2}) {
		t.Errorf("path = %v; want [0 1 2]", p)
	}
	if res.Source() != 0 {
		t.Errorf("Source() = %d; want 0", res.Source())
	}
}

// ------------------------------------------------------------------------
// 3. Determinism: equal-distance candidates resolve to the lowest ID.
// ------------------------------------------------------------------------

func TestDijkstra_TieBreakLowestID(t *testing.T) {
	// Square 0–1–3 and 0–2–3, all weights 1: both routes to 3 cost 2.
	g := build(t, 4, [][3]int64{{0, 2, 1}, {2, 3, 1}, {0, 1, 1}, {1, 3, 1}})
	for i := 0; i < 5; i++ {
		res, err := dijkstra.Dijkstra(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		p, err := res.PathTo(3)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(p, []int{0, 1, 3}) {
			t.Fatalf("run %d: path = %v; want [0 1 3]", i, p)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Unreachable and absent targets.
// ------------------------------------------------------------------------

func TestDijkstra_Unreachable(t *testing.T) {
	// Two components: {0,1} and {2,3}.
	g := build(t, 4, [][3]int64{{0, 1, 4}, {2, 3, 1}})
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = res.PathTo(3); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("PathTo(3): expected ErrUnreachable, got %v", err)
	}
	if d, err := res.Distance(2); !errors.Is(err, dijkstra.ErrUnreachable) || d != dijkstra.Infinity {
		t.Fatalf("Distance(2) = %d, %v; want Infinity, ErrUnreachable", d, err)
	}
	if res.Reachable(2) || !res.Reachable(1) {
		t.Fatalf("Reachable mismatch: 1=%v 2=%v", res.Reachable(1), res.Reachable(2))
	}
	if got := res.Unreached(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("Unreached() = %v; want [2 3]", got)
	}
}

func TestDijkstra_MissingVerticesAreSkipped(t *testing.T) {
	// Capacity 4 but only 0, 1, 3 added.
	g, _ := core.NewGraph(4)
	for _, v := range []int{0, 1, 3} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 3, 2)

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = res.Distance(2); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Distance(2): expected ErrVertexNotFound, got %v", err)
	}
	if d, _ := res.Distance(3); d != 4 {
		t.Fatalf("dist[3] = %d; want 4", d)
	}
	if len(res.Unreached()) != 0 {
		t.Fatalf("Unreached() = %v; want none", res.Unreached())
	}
}

func TestDijkstra_LargeWeightsStayExact(t *testing.T) {
	// The heaviest path the graph accepts: distances must not wrap or hit Infinity.
	w := core.MaxTotalWeight / 2
	g := build(t, 3, [][3]int64{{0, 1, w}, {1, 2, w}})
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	d, err := res.Distance(2)
	if err != nil || d != 2*w {
		t.Fatalf("Distance(2) = %d, %v; want %d", d, err, 2*w)
	}
	if got := res.Unreached(); len(got) != 0 {
		t.Fatalf("Unreached() = %v; want none", got)
	}
}
