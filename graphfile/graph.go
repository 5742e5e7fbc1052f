package graphfile

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// Build validates s and returns a graph with vertices 0..Vertices-1 and the
// listed edges, added in document order.
func (s *Spec) Build() (*core.Graph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGraph(s.Vertices)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for v := 0; v < s.Vertices; v++ {
		if err = g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	for i, e := range s.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("Build: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a document: Vertices is the capacity and edges are
// listed from the upper triangle of the weight matrix in (from, to) order.
func FromGraph(g *core.Graph, name string) *Spec {
	w := g.AdjacencyMatrixSnapshot()
	s := &Spec{Name: name, Vertices: len(w)}
	for u := range w {
		for v := u + 1; v < len(w); v++ {
			if w[u][v] != core.NoEdge {
				s.Edges = append(s.Edges, Edge{From: u, To: v, Weight: w[u][v]})
			}
		}
	}

	return s
}
