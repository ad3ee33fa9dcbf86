// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_simple.go — Isolated, Path, Cycle, Star and Complete constructors.
//
// Contract:
//   • Each constructor validates its size before touching the edge list.
//   • Nodes are allocated as base+1 .. base+n; edges stay inside the block.
//   • Edge order is fixed (documented per constructor).
//
// Complexity: O(n) edges for Path/Cycle/Star, O(n²) for Complete.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

const (
	methodIsolated = "Isolated"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minIsolatedNodes = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// tooFew formats the shared "n below minimum" error.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Isolated appends n nodes without any edges.
func Isolated(n int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if n < minIsolatedNodes {
			return tooFew(methodIsolated, n, minIsolatedNodes)
		}
		reserve(el, n)

		return nil
	}
}

// Path appends the chain base+1, base+2, …, base+n.
func Path(n int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		base := reserve(el, n)
		for i := 1; i < n; i++ {
			link(el, base+i, base+i+1)
		}

		return nil
	}
}

// Cycle appends a Path of n nodes plus the closing edge {base+n, base+1}.
func Cycle(n int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		base := reserve(el, n)
		for i := 1; i < n; i++ {
			link(el, base+i, base+i+1)
		}
		link(el, base+n, base+1)

		return nil
	}
}

// Star appends a hub base+1 connected to the leaves base+2 .. base+n.
func Star(n int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		base := reserve(el, n)
		for i := 2; i <= n; i++ {
			link(el, base+1, base+i)
		}

		return nil
	}
}

// Complete appends K_n with edges {i, j}, i < j, in lexicographic order.
func Complete(n int) Constructor {
	return func(el *core.EdgeList, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		base := reserve(el, n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				link(el, base+i, base+j)
			}
		}

		return nil
	}
}
