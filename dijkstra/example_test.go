// Package dijkstra_test provides examples demonstrating how to use the Dijkstra engine.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
)

// ExampleDijkstra demonstrates distances and path reconstruction on a triangle.
func ExampleDijkstra() {
	// 1) Triangle 0—1 (1), 1—2 (2), 0—2 (5).
	g, _ := core.NewGraph(3)
	for v := 0; v < 3; v++ {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)

	// 2) Single-source run from 0.
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The detour through 1 is cheaper than the direct edge.
	d, _ := res.Distance(2)
	path, _ := res.PathTo(2)
	fmt.Printf("dist=%d path=%v\n", d, path)
	// Output: dist=3 path=[0 1 2]
}
