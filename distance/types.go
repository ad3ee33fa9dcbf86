// File: types.go
// Role: options, policies and error definitions for distance queries.

package distance

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for distance queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("distance: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// DisconnectedPolicy selects what Diameter reports on a disconnected graph.
type DisconnectedPolicy int

const (
	// MaxComponentDiameter reports the largest diameter among the components.
	MaxComponentDiameter DisconnectedPolicy = iota

	// UnreachableIfDisconnected reports core.Unreachable.
	UnreachableIfDisconnected
)

// String implements fmt.Stringer.
func (p DisconnectedPolicy) String() string {
	switch p {
	case MaxComponentDiameter:
		return "max-component"
	case UnreachableIfDisconnected:
		return "unreachable"
	default:
		return fmt.Sprintf("DisconnectedPolicy(%d)", int(p))
	}
}

// DefaultSeed seeds the sampler when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// Option configures Diameter via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*DiameterOptions)

// DiameterOptions holds the knobs of Diameter.
type DiameterOptions struct {
	// SampleThreshold switches to sampled mode when N > SampleThreshold.
	// Zero or negative disables sampling.
	SampleThreshold int

	// Policy applies when the graph is disconnected.
	Policy DisconnectedPolicy

	// Rand draws sampled origins; nil means rand.New(rand.NewSource(DefaultSeed)).
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns exact mode with MaxComponentDiameter.
func DefaultOptions() DiameterOptions {
	return DiameterOptions{SampleThreshold: 0, Policy: MaxComponentDiameter}
}

// WithSampleThreshold enables sampled mode for graphs with more than n nodes.
// n <= 0 keeps exact mode for every size.
func WithSampleThreshold(n int) Option {
	return func(o *DiameterOptions) {
		o.SampleThreshold = n
	}
}

// WithDisconnectedPolicy selects the disconnected-graph policy.
func WithDisconnectedPolicy(p DisconnectedPolicy) Option {
	return func(o *DiameterOptions) {
		if p != MaxComponentDiameter && p != UnreachableIfDisconnected {
			o.err = fmt.Errorf("%w: unknown disconnected policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithRand injects the sampler's random source. nil is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *DiameterOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *DiameterOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}
