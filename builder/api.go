// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(capacity, cons, opts...). Creates g, resolves cfg, runs cons.
//   - Topology constructors live in impl_*.go.
//   - Functional options resolve into a config passed by value (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const methodBuild = "Build"

// Constructor adds vertices and edges to g using the resolved config.
// Constructors validate their parameters first and add vertices 0..n-1 in
// ascending order, then edges in a documented, stable order.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a core.Graph of the given capacity, resolves options and
// applies cons. capacity must be at least the constructor's vertex count;
// extra capacity stays unused.
//
// Errors:
//   - core.ErrBadCapacity for capacity <= 0.
//   - ErrConstructFailed for a nil constructor.
//   - ErrNeedRandSource when WithWeightRange draws weights without a seed.
//   - Any constructor error, wrapped as "Build: %w".
func Build(capacity int, cons Constructor, opts ...Option) (*core.Graph, error) {
	if cons == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrConstructFailed)
	}
	g, err := core.NewGraph(capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	cfg := newConfig(opts...)
	if cfg.randomWeights && cfg.rng == nil {
		return nil, fmt.Errorf("%s: weight range [%d,%d] needs WithSeed or WithRand: %w",
			methodBuild, cfg.minWeight, cfg.maxWeight, ErrNeedRandSource)
	}
	if err = cons(g, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return g, nil
}

// addVertices inserts 0..n-1 in ascending order.
func addVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return nil
}

// addEdge draws a weight from cfg and inserts u–v.
func addEdge(g *core.Graph, cfg config, method string, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d,w=%d): %w", method, u, v, w, err)
	}

	return nil
}
