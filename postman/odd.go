package postman

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

// OddVertices returns the vertices of g whose degree (count of nonzero row
// entries in the weight matrix) is odd, ascending.
//
// An empty result means g is Eulerian. An odd-length result is impossible for
// a consistent graph and is reported as ErrDegreeParity.
func OddVertices(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	odd := g.OddVertices()
	if err := checkParity(odd); err != nil {
		return nil, err
	}

	return odd, nil
}

// checkParity enforces the handshake lemma on an odd-degree vertex list.
func checkParity(odd []int) error {
	if len(odd)%2 != 0 {
		return fmt.Errorf("OddVertices: %d odd vertices %v: %w", len(odd), odd, ErrDegreeParity)
	}

	return nil
}
