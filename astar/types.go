// Package astar defines configuration options and sentinel errors
// for A* search over an implicit grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNoPath indicates the frontier emptied without reaching the goal.
	// It is an expected outcome, not a failure of the search itself.
	ErrNoPath = errors.New("astar: no path found")

	// ErrStagnated indicates the stagnation limit was exceeded.
	// errors.Is(ErrStagnated, ErrNoPath) holds: callers that only care whether
	// a path exists can test for ErrNoPath alone.
	ErrStagnated = fmt.Errorf("%w: stagnation limit exceeded", ErrNoPath)

	// ErrNilWalkFunc indicates a nil walkability predicate.
	ErrNilWalkFunc = errors.New("astar: walkability predicate is nil")

	// ErrBadMaxDistance indicates a negative maxSearchDistance.
	ErrBadMaxDistance = errors.New("astar: maxSearchDistance must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures a single FindPath call.
//
// StagnationLimit – if > 0, give up after more than this many consecutive
//
//	dequeues fail to improve the best heuristic seen. 0 disables the limit.
//
// Conn            – neighbor connectivity. Every step costs 1 either way.
// Ctx             – checked once per dequeue; cancellation aborts with Ctx.Err().
// OnDequeue       – called for every dequeued cell with its g and h values.
type Options struct {
	StagnationLimit int
	Conn            grid.Connectivity
	Ctx             context.Context
	OnDequeue       func(p grid.Point, g, h int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - no stagnation limit
//   - Conn4 connectivity (Manhattan h is then admissible)
//   - context.Background()
//   - no-op OnDequeue
func DefaultOptions() Options {
	return Options{
		StagnationLimit: 0,
		Conn:            grid.Conn4,
		Ctx:             context.Background(),
		OnDequeue:       func(grid.Point, int, int) {},
	}
}

// WithStagnationLimit enables early termination after n consecutive
// non-improving dequeues. n ≤ 0 disables the limit.
func WithStagnationLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.StagnationLimit = n
	}
}

// WithConnectivity selects Conn4 or Conn8. Any other value is a violation.
//
// Under Conn8 diagonal steps still cost 1 while h stays Manhattan, so h
// overestimates and returned paths are valid but not guaranteed shortest.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithContext sets a context for cancellation. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDequeue registers a callback invoked for every dequeued cell.
func WithOnDequeue(fn func(p grid.Point, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
