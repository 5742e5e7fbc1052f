// SPDX-License-Identifier: MIT
// Package: postman/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex (r,c) has ID r·cols + c (row-major).
//   • 4-neighborhood; for each cell in row-major order the right edge is
//     emitted before the down edge.
//
// Complexity:
//   • Time: O(R·C) vertices + O(2·R·C) edges.
//   • Space: O(1) extra.
//
// Street-grid fixtures: border cells (except corners) have degree 3, so a
// rows×cols grid with both sides ≥ 3 has 2(rows-2) + 2(cols-2) odd vertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/postman/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	minGridLen = 2
)

// GridID returns the vertex ID of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < minGridLen {
			return fmt.Errorf("%s: rows=%d, cols=%d below %dx%d with %d cells: %w",
				methodGrid, rows, cols, minGridDim, minGridDim, minGridLen, ErrTooFewVertices)
		}
		if err := addVertices(g, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
