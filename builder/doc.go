// Package builder constructs deterministic core.Graph fixtures for tests,
// examples and the postman CLI's generate command.
//
// Every constructor adds vertices 0..n-1 and emits edges in a documented,
// stable order, so a given (constructor, options, seed) always yields the same
// graph and therefore the same route.
//
//   - Topologies: Cycle, Path, Star, Wheel, Complete, Grid, RandomConnected.
//   - Options:    WithSeed / WithRand (RNG), WithWeightRange (edge weights).
//
// Option constructors panic on meaningless values; constructors return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource)
// wrapped with the method name.
//
//	g, err := builder.Build(16, builder.Grid(4, 4),
//		builder.WithSeed(7), builder.WithWeightRange(1, 9))
package builder
