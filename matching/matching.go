// Package matching enumerates perfect matchings of an even vertex set and
// selects the one with the smallest total shortest-path distance.
//
// Enumeration is exhaustive backtracking: take the first vertex not yet
// matched, pair it with every later unmatched vertex in input order, recurse
// on the rest. Each of the (2k-1)!! perfect matchings of 2k vertices is
// produced exactly once, always in the same order, so the selection
// "first minimum wins" is deterministic.
//
// Complexity:
//
//   - Enumerate:     O((2k-1)!! · k) time, O(k) recursion depth and space.
//   - MinimumWeight: Enumerate + one Oracle.Distance call per pair visited,
//     plus one Oracle.Path call per pair of the winner.
//
// The search is exponential in k and intended for a handful of odd vertices.
package matching

import (
	"fmt"
	"math"
	"slices"
)

// Enumerate calls visit once for every perfect matching of vertices, in the
// deterministic order described in the package doc. Each matching is passed
// as a slice of [u, v] pairs, with u earlier than v in the input.
// The slice is reused between calls; visit must copy it to keep it.
// Returning false from visit stops the enumeration.
//
// Errors: ErrOddCount, ErrDuplicateVertex.
func Enumerate(vertices []int, visit func(pairs [][2]int) bool) error {
	if err := validate(vertices); err != nil {
		return err
	}
	e := &enumerator{
		vertices: vertices,
		used:     make([]bool, len(vertices)),
		pairs:    make([][2]int, 0, len(vertices)/2),
		visit:    visit,
	}
	e.run()

	return nil
}

// enumerator carries the backtracking state shared across recursion levels.
type enumerator struct {
	vertices []int
	used     []bool
	pairs    [][2]int
	visit    func([][2]int) bool
	stopped  bool
}

// run pairs the first unused vertex with every later unused vertex.
func (e *enumerator) run() {
	if e.stopped {
		return
	}
	first := slices.Index(e.used, false)
	if first < 0 {
		// Every vertex is paired (also reached immediately for empty input).
		if !e.visit(e.pairs) {
			e.stopped = true
		}
		return
	}

	e.used[first] = true
	for j := first + 1; j < len(e.vertices) && !e.stopped; j++ {
		if e.used[j] {
			continue
		}
		e.used[j] = true
		e.pairs = append(e.pairs, [2]int{e.vertices[first], e.vertices[j]})
		e.run()
		e.pairs = e.pairs[:len(e.pairs)-1]
		e.used[j] = false
	}
	e.used[first] = false
}

// MinimumWeight scores every perfect matching of vertices by the sum of
// o.Distance over its pairs and returns the lowest-scoring one. Ties keep the
// matching enumerated first. Paths are reconstructed via o.Path for the
// winner only.
//
// An empty vertex set yields an empty matching with score 0.
// Any oracle error (e.g. an unreachable pair) aborts the search and is returned wrapped.
func MinimumWeight(vertices []int, o Oracle) (*Matching, error) {
	if o == nil {
		return nil, ErrNilOracle
	}

	var (
		best      [][2]int
		bestScore int64
		found     bool
		count     int
		oracleErr error
	)
	err := Enumerate(vertices, func(pairs [][2]int) bool {
		count++
		var score int64
		for _, p := range pairs {
			d, err := o.Distance(p[0], p[1])
			if err != nil {
				oracleErr = fmt.Errorf("matching: distance %d–%d: %w", p[0], p[1], err)
				return false
			}
			score = addSaturating(score, d)
		}
		// Strict "<" keeps the first minimum in enumeration order.
		if !found || score < bestScore {
			best = slices.Clone(pairs)
			bestScore = score
			found = true
		}

		return true
	})
	if err != nil {
		return nil, err
	}
	if oracleErr != nil {
		return nil, oracleErr
	}

	m := &Matching{Pairs: make([]Pair, 0, len(best)), Score: bestScore, Considered: count}
	for _, p := range best {
		path, err := o.Path(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("matching: path %d–%d: %w", p[0], p[1], err)
		}
		d, err := o.Distance(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("matching: distance %d–%d: %w", p[0], p[1], err)
		}
		m.Pairs = append(m.Pairs, Pair{U: p[0], V: p[1], Path: path, Weight: d})
	}

	return m, nil
}

// Count returns the number of perfect matchings of 2k vertices, (2k-1)!!.
// It returns 1 for k == 0 and 0 for k < 0. Counts that do not fit in uint64
// (k > 17) saturate at math.MaxUint64.
func Count(k int) uint64 {
	if k < 0 {
		return 0
	}
	c := uint64(1)
	for i := 2*k - 1; i > 1; i -= 2 {
		if c > math.MaxUint64/uint64(i) {
			return math.MaxUint64
		}
		c *= uint64(i)
	}

	return c
}

// addSaturating returns a + b for non-negative a and b, clamped to math.MaxInt64.
func addSaturating(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

// validate rejects odd-sized and duplicated vertex sets.
func validate(vertices []int) error {
	if len(vertices)%2 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrOddCount, len(vertices))
	}
	seen := make(map[int]struct{}, len(vertices))
	for _, v := range vertices {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}
