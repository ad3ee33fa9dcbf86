// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) block.
//
// Contract:
//   • n ≥ 1, p ∈ [0, 1].
//   • For 0 < p < 1 an RNG is required (WithSeed / WithRand).
//   • Pairs (i, j), i < j, are visited in ascending order; each is kept
//     with probability p by a single rng.Float64() draw.
//
// Complexity: O(n²) draws.
// Determinism: same seed ⇒ same edge list.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hopgraph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse appends n nodes and links every pair independently with
// probability p. p == 0 yields isolated nodes, p == 1 yields K_n; neither
// consumes randomness.
func RandomSparse(n int, p float64) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, n, minRandomNodes)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		stochastic := p > 0 && p < 1
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := reserve(el, n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				switch {
				case p == 1:
					link(el, base+i, base+j)
				case stochastic && cfg.rng.Float64() < p:
					link(el, base+i, base+j)
				}
			}
		}

		return nil
	}
}
