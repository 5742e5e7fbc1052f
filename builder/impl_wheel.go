// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a ring of size (n-1) plus a hub vertex.
//   • Therefore n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • The hub is vertex 0 (StarCenter); the ring is 1..n-1.
//   • Ring edges first, i–i+1 and (n-1)–1, then spokes 0–i in ascending i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // because outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ with hub 0.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodWheel, n); err != nil {
			return err
		}

		// Outer ring over 1..n-1.
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := addEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		// Spokes from the hub in stable order.
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, StarCenter, i); err != nil {
				return err
			}
		}

		return nil
	}
}
