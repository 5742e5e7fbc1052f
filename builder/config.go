// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil   (pure/deterministic unless seeded)
//   • weights   = constant DefaultEdgeWeight
//
// newConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// DefaultEdgeWeight is the weight of every edge when no weight option is set.
const DefaultEdgeWeight int64 = 1

// config aggregates all knobs used by constructors.
// It is passed by value to constructors.
type config struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Inclusive weight range; randomWeights is set when min < max.
	minWeight     int64
	maxWeight     int64
	randomWeights bool
}

// newConfig constructs a config with deterministic defaults and applies opts.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:       nil,
		minWeight: DefaultEdgeWeight,
		maxWeight: DefaultEdgeWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.randomWeights = cfg.minWeight < cfg.maxWeight

	return cfg
}

// weight returns the next edge weight: constant, or uniform in
// [minWeight, maxWeight] drawn from rng.
func (c config) weight() int64 {
	if !c.randomWeights || c.rng == nil {
		return c.minWeight
	}

	return c.minWeight + c.rng.Int63n(c.maxWeight-c.minWeight+1)
}
