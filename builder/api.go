// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// api.go — the Build orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

// Constructor appends one block of nodes and edges to el using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching el and return sentinel errors.
//   - Allocate their nodes as el.Nodes+1 .. el.Nodes+n.
//   - Emit edges in a stable, documented order.
type Constructor func(el *core.EdgeList, cfg builderConfig) error

// Build resolves the options, starts from an empty edge list and applies all
// constructors in order. Any constructor error is wrapped with "Build: %w"
// and returned immediately; the partial list is discarded.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(len(cons)).
func Build(opts []BuilderOption, cons ...Constructor) (*core.EdgeList, error) {
	cfg := newBuilderConfig(opts...)
	el := &core.EdgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return el, nil
}

// Graph is Build followed by core.FromEdgeList in the chosen representation.
func Graph(repr core.Representation, opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	el, err := Build(opts, cons...)
	if err != nil {
		return nil, err
	}

	return core.FromEdgeList(el, repr)
}

// reserve appends n fresh nodes to el and returns the id offset: the new
// nodes are base+1 .. base+n.
func reserve(el *core.EdgeList, n int) int {
	base := el.Nodes
	el.Nodes += n

	return base
}

// link appends the undirected edge {u, v}.
func link(el *core.EdgeList, u, v int) {
	el.Edges = append(el.Edges, core.Edge{U: u, V: v})
}
