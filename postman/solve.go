// SPDX-License-Identifier: MIT
//
// solve.go — the Route Inspection pipeline.
//
// Contract:
//   • The caller's graph is never mutated; every phase runs on a Clone.
//   • Every added vertex must be reachable from the start vertex, isolated
//     vertices included, otherwise ErrUnreachable.
//   • Weight = original edge total + matching score.
//   • Phase traces go to Options.Logger at Debug level only.

package postman

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/dijkstra"
	"github.com/katalvlaran/postman/euler"
	"github.com/katalvlaran/postman/matching"
)

const methodSolve = "Solve"

// Solve computes a minimum-weight closed walk over every edge of g.
// It is SolveContext with context.Background().
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	return SolveContext(context.Background(), g, opts...)
}

// SolveContext is Solve with cancellation. ctx is checked between phases,
// by the shortest-path workers, and on every distance lookup of the matching
// search, which is where large inputs spend their time.
//
// Errors:
//   - ErrNilGraph; core.ErrInvalidVertex for a start vertex not in g.
//   - ErrUnreachable (also dijkstra.ErrUnreachable) for disconnected input.
//   - ErrTooManyOddVertices when WithMaxOddVertices is exceeded.
//   - ErrDegreeParity for a corrupt degree sequence.
//   - ctx.Err() on cancellation.
func SolveContext(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("%s: start %d: %w", methodSolve, o.Start, core.ErrInvalidVertex)
	}
	logger := o.Logger.WithFields(log.Fields{"start": o.Start, "extractor": o.Extractor.String()})
	began := time.Now()

	// 2) Work on a private copy
	work := g.Clone()

	// 3) Connectivity from start
	if err := checkConnected(work, o.Start); err != nil {
		return nil, err
	}

	// 4) Odd vertices
	odd, err := OddVertices(work)
	if err != nil {
		return nil, err
	}
	logger.WithField("odd", odd).Debug("odd-degree vertices")
	if o.MaxOddVertices > 0 && len(odd) > o.MaxOddVertices {
		return nil, fmt.Errorf("%s: %d odd vertices, limit %d: %w",
			methodSolve, len(odd), o.MaxOddVertices, ErrTooManyOddVertices)
	}

	// 5) Pairing
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	best, err := pairOddVertices(ctx, work, odd, o.Workers)
	if err != nil {
		return nil, err
	}
	logger.WithFields(log.Fields{
		"matchings": best.Considered,
		"score":     best.Score,
	}).Debug("minimum-weight pairing")

	// 6) Augmentation
	if err = Augment(work, best.Pairs); err != nil {
		return nil, err
	}
	res := &Result{
		Start:               o.Start,
		OddVertices:         odd,
		Pairs:               best.Pairs,
		ExtraWeight:         best.Score,
		MatchingsConsidered: best.Considered,
		EdgeCount:           work.EdgeCount(),
		TraversalCount:      work.TraversalCount(),
		Extractor:           o.Extractor,
	}
	logger.WithField("edges", res.TraversalCount).Debug("graph augmented")

	// 7) Extraction
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	res.Circuit, err = euler.Extract(o.Extractor, work.TakeTraversal(), o.Start)
	if err != nil {
		if errors.Is(err, euler.ErrEdgesRemaining) {
			return nil, fmt.Errorf("%w: %w: %w", ErrUnreachable, dijkstra.ErrUnreachable, err)
		}

		return nil, fmt.Errorf("%s: extract: %w", methodSolve, err)
	}
	res.Weight = work.TotalOriginalWeight() + best.Score

	logger.WithFields(log.Fields{
		"weight":  res.Weight,
		"steps":   res.Steps(),
		"elapsed": time.Since(began),
	}).Debug("circuit extracted")

	return res, nil
}

// checkConnected reports ErrUnreachable unless every vertex of g is
// reachable from start over the weight matrix.
func checkConnected(g *core.Graph, start int) error {
	reach, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSolve, err)
	}
	if cut := reach.Unreached(); len(cut) > 0 {
		return fmt.Errorf("%w: vertices %v unreachable from %d: %w",
			ErrUnreachable, cut, start, dijkstra.ErrUnreachable)
	}

	return nil
}

// pairOddVertices finds the minimum-weight perfect matching of odd under
// shortest-path distance. An empty odd set yields an empty matching.
func pairOddVertices(ctx context.Context, g *core.Graph, odd []int, workers int) (*matching.Matching, error) {
	if len(odd) == 0 {
		return &matching.Matching{Considered: 1}, nil
	}
	table, err := buildPathTable(ctx, g, odd, workers)
	if err != nil {
		return nil, err
	}
	best, err := matching.MinimumWeight(odd, table)
	if err != nil {
		if errors.Is(err, dijkstra.ErrUnreachable) {
			return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
		}

		return nil, err
	}

	return best, nil
}
