// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices 0..n-1; edges i–(i+1) for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.
//
// The two endpoints are the only odd vertices, so the optimal route walks the
// path out and back: weight = 2 × total.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
