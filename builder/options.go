// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a config before graph construction begins.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange draws every edge weight uniformly from [lo, hi].
// lo == hi gives constant weights and needs no RNG.
// Panics if lo < 1 or hi < lo.
func WithWeightRange(lo, hi int64) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("builder: WithWeightRange(%d,%d)", lo, hi))
	}
	return func(c *config) {
		c.minWeight, c.maxWeight = lo, hi
	}
}
