// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges emitted for i<j in lexicographic (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(1) extra.
//
// K_n is Eulerian for odd n; for even n every vertex is odd, which makes it
// the worst case for the pairing search ((n-1)!! matchings).

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
