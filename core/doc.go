// Package core stores an undirected, unweighted graph over the integer nodes
// 1..N in one of two interchangeable adjacency representations and exposes a
// uniform neighbor view on top of them.
//
// Representations:
//
//	Matrix — (N+1)×(N+1) boolean grid, O(N²) memory; neighbors come out in
//	         ascending column order.
//	List   — N+1 neighbor slices, O(N+E) memory; neighbors come out in the
//	         order the edges were inserted.
//
// Node ids are 1-based. Every arena is allocated with N+1 slots and slot 0 is
// never populated, so node v always lives at index v. This is the only place
// the offset is handled; no caller ever adds or subtracts one.
//
// Lifecycle:
//
//	A Graph is built once by NewGraph (or FromEdgeList) and is immutable
//	afterwards. It carries no locks: any number of goroutines may read it
//	concurrently. Construction is atomic; on error no Graph is returned.
//
// Spanning trees:
//
//	SpanningTree is the shared result type of the bfs and dfs packages: a
//	partial map node → (parent, level). The root maps to (0, 0) and nodes the
//	traversal never reached are absent.
//
// Errors:
//
//	ErrConfiguration  – unknown representation selector.
//	ErrMalformedInput – negative N or an edge endpoint outside [1, N].
//	ErrOutOfRange     – query for a node outside [1, N].
//	ErrGraphNil       – nil *Graph passed to a package function.
package core
