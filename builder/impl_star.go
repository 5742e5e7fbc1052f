// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the center; leaves 1..n-1 are attached in ascending order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarCenter is the hub vertex of Star and Wheel.
	StarCenter = 0
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodStar, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(g, cfg, methodStar, StarCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
