// Package dfs defines options and errors for depth-first search traversal.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, origin, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Goal, if non-zero, stops the traversal as soon as Goal is pushed.
	Goal int

	// OnExplore, if non-nil, is invoked each time a node is popped and
	// explored, in exploration order.
	OnExplore func(node int)

	err error
}

// DefaultOptions returns a DFSOptions struct with no goal and no hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithGoal returns an Option that ends the traversal once goal is reached.
// A goal below 1 is rejected with ErrOptionViolation.
func WithGoal(goal int) Option {
	return func(o *DFSOptions) {
		if goal < 1 {
			o.err = fmt.Errorf("%w: goal must be a node id >= 1 (got %d)", ErrOptionViolation, goal)
			return
		}
		o.Goal = goal
	}
}

// WithOnExplore returns an Option that installs fn as an exploration hook.
func WithOnExplore(fn func(node int)) Option {
	return func(o *DFSOptions) {
		o.OnExplore = fn
	}
}
