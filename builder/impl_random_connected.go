// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p) constructor.
//
// Model:
//   - A random spanning tree first: vertex i ≥ 1 attaches to rng.Intn(i).
//   - Then every remaining unordered pair {i,j}, i<j, is added independently
//     with probability p (Erdős–Rényi over the non-tree pairs).
//   - The result is always connected, which Route Inspection requires.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when n ≥ 3 or 0 < p < 1 (else ErrNeedRandSource):
//     for n ≤ 2 the tree is forced.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Tree draws for i asc, then trials for i asc, j asc. Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
	probMin                    = 0.0
	probMax                    = 1.0
)

// RandomConnected returns a Constructor that samples a connected graph on n
// vertices: a random spanning tree plus each other pair with probability p.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		// 1) Validate parameters (fail fast, zero side-effects on invalid input).
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := n >= 3 || (p > probMin && p < probMax)
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		if err := addVertices(g, methodRandomConnected, n); err != nil {
			return err
		}

		// 3) Spanning tree.
		for i := 1; i < n; i++ {
			parent := 0
			if cfg.rng != nil {
				parent = cfg.rng.Intn(i)
			}
			if err := addEdge(g, cfg, methodRandomConnected, parent, i); err != nil {
				return err
			}
		}

		// 4) Extra pairs with probability p.
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if g.HasEdge(i, j) {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomConnected, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
