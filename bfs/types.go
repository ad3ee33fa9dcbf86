// File: types.go
// Role: options and error definitions for breadth-first search.

package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// noGoal marks a traversal that runs to exhaustion.
const noGoal = 0

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive goal), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Goal, if non-zero, stops the search as soon as Goal is discovered.
	Goal int

	// OnDiscover, if non-nil, is called once per newly discovered node
	// (the origin included) with its parent and level.
	OnDiscover func(node, parent, level int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no goal and no hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{Goal: noGoal}
}

// WithGoal stops the traversal right after goal is discovered; the returned
// tree then holds only the nodes discovered up to and including goal.
//
//	goal >= 1: early termination target
//	goal <  1: invalid option → ErrOptionViolation
func WithGoal(goal int) Option {
	return func(o *BFSOptions) {
		if goal < 1 {
			o.err = fmt.Errorf("%w: goal must be a node id >= 1 (got %d)", ErrOptionViolation, goal)
			return
		}
		o.Goal = goal
	}
}

// WithOnDiscover registers a callback run when a node enters the tree.
func WithOnDiscover(fn func(node, parent, level int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
