// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts:
// vertex/edge validation, traversal-list symmetry, and the matrix views.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
)

// canonicalEdges is the six-vertex street map used across the repository:
//
//	        3
//	 (1)--------(2)
//	1/ |          | \2
//	(0)| 5      6 | (5)
//	2\ |          | /1
//	 (3)--------(4)
//	        4
var canonicalEdges = [][3]int64{
	{0, 1, 1}, {0, 3, 2}, {1, 2, 3}, {1, 3, 5},
	{2, 4, 6}, {2, 5, 2}, {3, 4, 4}, {4, 5, 1},
}

// newCanonical builds the six-vertex graph; it fails the test on any error.
func newCanonical(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range canonicalEdges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

func TestNewGraph_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		g, err := core.NewGraph(c)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrBadCapacity)
	}
}

func TestAddVertex_RangeAndDuplicates(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddVertex(1))
	assert.ErrorIs(t, g.AddVertex(1), core.ErrVertexExists)
	assert.ErrorIs(t, g.AddVertex(2), core.ErrInvalidVertex, "capacity exceeded")
	assert.ErrorIs(t, g.AddVertex(-1), core.ErrInvalidVertex)

	assert.True(t, g.HasVertex(1))
	assert.False(t, g.HasVertex(0))
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 2, g.Capacity())
	assert.Equal(t, []int{1}, g.Vertices())
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrInvalidVertex, "vertex 2 not added")
	assert.ErrorIs(t, g.AddEdge(0, 5, 1), core.ErrInvalidVertex, "vertex 5 out of range")
	assert.ErrorIs(t, g.AddEdge(0, 1, 0), core.ErrInvalidEdgeWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, -3), core.ErrInvalidEdgeWeight)
	assert.ErrorIs(t, g.AddEdge(1, 1, 4), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge(0, 1, 4))
	assert.ErrorIs(t, g.AddEdge(1, 0, 9), core.ErrMultiEdgeNotAllowed)

	// The rejected calls left no trace.
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.TraversalCount())
	w, err := g.EdgeWeight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
}

func TestAddEdge_WeightOverflow(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for v := 0; v < 3; v++ {
		require.NoError(t, g.AddVertex(v))
	}

	assert.ErrorIs(t, g.AddEdge(0, 1, math.MaxInt64), core.ErrWeightOverflow)
	assert.ErrorIs(t, g.AddEdge(0, 1, core.MaxTotalWeight+1), core.ErrWeightOverflow)

	half := core.MaxTotalWeight / 2
	require.NoError(t, g.AddEdge(0, 1, half))
	require.NoError(t, g.AddEdge(1, 2, core.MaxTotalWeight-half))
	assert.Equal(t, core.MaxTotalWeight, g.TotalOriginalWeight())

	// The total is at the limit: even weight 1 no longer fits, in a clone too.
	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrWeightOverflow)
	c := g.Clone()
	assert.ErrorIs(t, c.AddEdge(0, 2, 1), core.ErrWeightOverflow)
	assert.Equal(t, core.MaxTotalWeight, c.TotalOriginalWeight())

	// The rejected calls left no trace.
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 2))
	assert.Equal(t, 2, g.TraversalCount())
}

func TestAddEdge_MatrixSymmetry(t *testing.T) {
	g := newCanonical(t)
	m := g.AdjacencyMatrixSnapshot()
	require.Len(t, m, 6)
	for i := range m {
		assert.Zero(t, m[i][i], "diagonal %d", i)
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i], "W[%d][%d]", i, j)
		}
	}
	assert.Equal(t, int64(3), m[1][2])
	assert.Equal(t, core.NoEdge, m[0][5])

	// Snapshot is a copy.
	m[0][1] = 99
	w, _ := g.EdgeWeight(0, 1)
	assert.Equal(t, int64(1), w)
}

func TestTotalOriginalWeight(t *testing.T) {
	g := newCanonical(t)
	assert.Equal(t, int64(24), g.TotalOriginalWeight())

	// Auxiliary edges never change the weight total.
	require.NoError(t, g.AddAuxiliaryEdge(0, 1))
	assert.Equal(t, int64(24), g.TotalOriginalWeight())
}

func TestDegree_HandshakeAndOdd(t *testing.T) {
	g := newCanonical(t)

	var sum int
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		sum += d
	}
	assert.Equal(t, 2*g.EdgeCount(), sum)
	assert.Equal(t, []int{1, 2, 3, 4}, g.OddVertices())

	_, err := g.Degree(17)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestMatrixNeighbors_Ascending(t *testing.T) {
	g := newCanonical(t)
	nb, err := g.MatrixNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nb)

	// Auxiliary entries only show up in the traversal view.
	require.NoError(t, g.AddAuxiliaryEdge(1, 5))
	nb, err = g.MatrixNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, nb)
	tl, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 5}, tl)
}

func TestAuxiliaryEdge_DuplicatesAndRemoval(t *testing.T) {
	g := newCanonical(t)
	require.NoError(t, g.AddAuxiliaryEdge(1, 0))
	require.NoError(t, g.AddAuxiliaryEdge(0, 1))

	c, err := g.TraversalMultiplicity(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, c)
	assert.Equal(t, 10, g.TraversalCount())

	require.NoError(t, g.RemoveTraversalEdge(1, 0))
	c, _ = g.TraversalMultiplicity(1, 0)
	assert.Equal(t, 2, c)
	c, _ = g.TraversalMultiplicity(0, 1)
	assert.Equal(t, 2, c, "both directions drop together")

	assert.ErrorIs(t, g.AddAuxiliaryEdge(2, 2), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddAuxiliaryEdge(2, 9), core.ErrInvalidVertex)
}

func TestRemoveTraversalEdge_MissingLeavesListsIntact(t *testing.T) {
	g := newCanonical(t)
	before := g.TraversalSnapshot()

	assert.ErrorIs(t, g.RemoveTraversalEdge(0, 5), core.ErrEdgeNotFound)
	assert.Equal(t, before, g.TraversalSnapshot())
}

func TestSortTraversal(t *testing.T) {
	g := newCanonical(t)
	require.NoError(t, g.AddAuxiliaryEdge(3, 0))
	require.NoError(t, g.AddAuxiliaryEdge(1, 0))
	g.SortTraversal()

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3, 3}, nb)
}

func TestCloneAndTakeTraversal(t *testing.T) {
	g := newCanonical(t)
	clone := g.Clone()

	lists := clone.TakeTraversal()
	assert.Len(t, lists, 6)
	assert.Equal(t, []int{1, 3}, lists[0])
	assert.Zero(t, clone.TraversalCount(), "taken lists leave the clone empty")
	assert.Equal(t, int64(24), clone.TotalOriginalWeight(), "weights stay")

	// The source graph is untouched.
	assert.Equal(t, 8, g.TraversalCount())
	lists[0][0] = 42
	nb, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 3}, nb)
}

func TestStats(t *testing.T) {
	g := newCanonical(t)
	s := g.Stats()
	assert.Equal(t, &core.GraphStats{
		Capacity:       6,
		VertexCount:    6,
		EdgeCount:      8,
		TraversalCount: 8,
		TotalWeight:    24,
		OddVertexCount: 4,
	}, s)
}
