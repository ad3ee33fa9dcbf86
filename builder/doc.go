// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// Package builder generates deterministic synthetic edge lists (paths,
// cycles, stars, complete graphs, grids, sparse random graphs) for tests,
// examples and the benchmark driver.
//
// Composition model:
//
//	Build(opts, cons...) starts from an empty core.EdgeList and runs each
//	Constructor in order. Every constructor appends a fresh block of node ids
//	(N+1 .. N+n) and only links nodes inside its own block, so
//
//	    builder.Build(nil, builder.Path(4), builder.Path(2))
//
//	yields a graph with two components of sizes 4 and 2 ({1..4} and {5, 6}).
//
// Determinism:
//
//	Same options, same seed, same constructor order ⇒ identical edge lists.
//	Stochastic constructors (RandomSparse) require WithSeed or WithRand.
//
// Errors:
//
//	ErrTooFewVertices     – size parameter below the constructor minimum.
//	ErrInvalidProbability – p outside [0, 1].
//	ErrNeedRandSource     – stochastic constructor without an RNG.
//	ErrConstructFailed    – nil constructor.
package builder
