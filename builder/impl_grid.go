// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_grid.go — rows×cols 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1.
//   • Cell (r, c), 0-based, gets id base + r*cols + c + 1.
//   • Edges are emitted in row-major order: right neighbor first, then down.
//
// Complexity: O(rows*cols) nodes and edges.
// Determinism: fully deterministic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := reserve(el, rows*cols)
		id := func(r, c int) int { return base + r*cols + c + 1 }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(el, id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					link(el, id(r, c), id(r+1, c))
				}
			}
		}

		return nil
	}
}
