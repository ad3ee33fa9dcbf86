// File: types.go
// Role: sentinel errors, representation selector, edge records and the Graph type.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrConfiguration indicates an invalid representation selector.
	// It is a programmer/configuration error and is raised before any I/O.
	ErrConfiguration = errors.New("core: invalid representation")

	// ErrMalformedInput indicates the edge list cannot describe a graph on [1, N].
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrOutOfRange indicates a node id outside [1, N].
	ErrOutOfRange = errors.New("core: node out of range")

	// ErrGraphNil indicates a nil graph pointer.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Unreachable is the sentinel reported for lookups that miss a spanning tree
// (distance to, level of or parent of a node the traversal never reached).
const Unreachable = -1

// Representation selects the internal adjacency layout of a Graph.
type Representation int

const (
	// Matrix stores adjacency as an (N+1)×(N+1) boolean grid.
	Matrix Representation = iota
	// List stores adjacency as N+1 insertion-ordered neighbor slices.
	List
)

// String returns the canonical selector name ("matrix" or "list").
func (r Representation) String() string {
	switch r {
	case Matrix:
		return "matrix"
	case List:
		return "list"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Valid reports whether r is one of the supported representations.
func (r Representation) Valid() bool {
	return r == Matrix || r == List
}

// ParseRepresentation maps a selector string to a Representation.
// Accepted values (case-insensitive): "matrix", "list", and the numeric
// selectors "0" (matrix) and "1" (list).
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matrix", "0":
		return Matrix, nil
	case "list", "1":
		return List, nil
	default:
		return 0, fmt.Errorf("%w: %q (want matrix or list)", ErrConfiguration, s)
	}
}

// Edge is one undirected edge record {U, V}.
type Edge struct {
	U int
	V int
}

// EdgeList is the parsed, representation-free form of a graph: a node count
// and the edge records in input order. Duplicates are kept as given.
type EdgeList struct {
	// Nodes is N; valid node ids are 1..N.
	Nodes int

	// Edges holds the edge records in input order.
	Edges []Edge
}

// GraphOption configures optional Graph metadata.
type GraphOption func(g *Graph)

// WithName attaches a human-readable name (usually the source file's base
// name) used by reports and tree dumps.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is an immutable undirected graph on nodes 1..N.
//
// Exactly one adjacency representation is held, behind the sealed
// Adjacency interface; algorithms that need representation-specific loops
// type-switch on Adjacency() instead of probing for nil fields.
type Graph struct {
	name   string
	nNodes int
	nEdges int
	adj    Adjacency
}
