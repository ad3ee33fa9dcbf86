// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: construction and read-only queries (the neighbor view) on Graph.
// Policy:
//   - Construction validates every endpoint before returning; nothing partial escapes.
//   - Queries never mutate; Neighbors always returns a fresh slice.

package core

import "fmt"

// NewGraph builds a Graph on nodes 1..n from edges using the selected
// representation. EdgeCount is incremented once per edge record consumed,
// duplicates included.
//
// Errors:
//   - ErrConfiguration if repr is not Matrix or List (checked first).
//   - ErrMalformedInput if n < 0 or an endpoint lies outside [1, n].
//
// Complexity:
//   - Matrix: O(n² + E) time and O(n²) memory.
//   - List:   O(n + E) time and memory.
func NewGraph(n int, edges []Edge, repr Representation, opts ...GraphOption) (*Graph, error) {
	if !repr.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrConfiguration, repr)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrMalformedInput, n)
	}
	// Validate everything up front so a bad record never leaves a half-built store.
	for i, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("%w: edge #%d (%d, %d) outside [1, %d]", ErrMalformedInput, i+1, e.U, e.V, n)
		}
	}

	g := &Graph{nNodes: n}
	for _, opt := range opts {
		opt(g)
	}

	switch repr {
	case Matrix:
		m := newAdjacencyMatrix(n)
		for _, e := range edges {
			m.link(e.U, e.V)
			g.nEdges++
		}
		g.adj = m
	case List:
		l := newAdjacencyList(n)
		for _, e := range edges {
			l.link(e.U, e.V)
			g.nEdges++
		}
		g.adj = l
	}

	return g, nil
}

// FromEdgeList is NewGraph over a parsed EdgeList.
func FromEdgeList(el *EdgeList, repr Representation, opts ...GraphOption) (*Graph, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil edge list", ErrMalformedInput)
	}

	return NewGraph(el.Nodes, el.Edges, repr, opts...)
}

// Name returns the graph name set by WithName, or "" if none.
func (g *Graph) Name() string { return g.name }

// NodeCount returns N.
func (g *Graph) NodeCount() int { return g.nNodes }

// EdgeCount returns the number of edge records consumed at construction.
func (g *Graph) EdgeCount() int { return g.nEdges }

// Representation reports the layout chosen at construction.
func (g *Graph) Representation() Representation { return g.adj.Representation() }

// Adjacency exposes the underlying representation for algorithms that keep
// separate per-representation loops. Its Row iterators are read-only views;
// no exported method returns backing storage. Type-switch on the result:
//
//	switch adj := g.Adjacency().(type) {
//	case *core.AdjacencyMatrix: ...
//	case *core.AdjacencyList:   ...
//	}
func (g *Graph) Adjacency() Adjacency { return g.adj }

// HasNode reports whether v lies in [1, N].
func (g *Graph) HasNode(v int) bool {
	return v >= 1 && v <= g.nNodes
}

// CheckNode returns ErrOutOfRange (wrapped with context) if v is not in [1, N].
func (g *Graph) CheckNode(v int) error {
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, v, g.nNodes)
	}

	return nil
}

// Neighbors returns the neighbors of v: ascending column order for Matrix,
// insertion order for List. The slice is a fresh copy.
//
// Complexity: O(N) for Matrix, O(deg(v)) for List.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.CheckNode(v); err != nil {
		return nil, err
	}

	return g.adj.neighbors(v), nil
}

// Degree returns len(Neighbors(v)) without allocating.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.CheckNode(v); err != nil {
		return 0, err
	}

	return g.adj.degree(v), nil
}
