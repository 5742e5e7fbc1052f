package postman

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/matching"
)

// Augment duplicates every edge along each pair's path in the traversal lists
// of g (the weight matrix is untouched) and then sorts every list ascending.
// After augmenting with a perfect matching of the odd vertices, every vertex
// has even traversal degree.
func Augment(g *core.Graph, pairs []matching.Pair) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, p := range pairs {
		for i := 0; i+1 < len(p.Path); i++ {
			if err := g.AddAuxiliaryEdge(p.Path[i], p.Path[i+1]); err != nil {
				return fmt.Errorf("Augment: pair %d–%d: %w", p.U, p.V, err)
			}
		}
	}
	g.SortTraversal()

	return nil
}
