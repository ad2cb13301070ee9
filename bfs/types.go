// Package bfs provides tunable options and error definitions
// for breadth-first expansion over an implicit grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures the iterator via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for one breadth-first expansion.
type Options struct {
	// Valid decides whether a newly discovered cell may be visited.
	// It is evaluated once per cell, at discovery time.
	Valid grid.WalkFunc

	// Conn selects 4- or 8-neighbor expansion.
	Conn grid.Connectivity

	// MaxDepth, if > 0, stops discovering cells beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnEnqueue is called when a cell is discovered and queued,
	// with its depth from the start. The start itself is reported at depth 0.
	OnEnqueue func(p grid.Point, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - every cell valid
//   - Conn4 connectivity
//   - no depth limit
//   - no-op OnEnqueue
func DefaultOptions() Options {
	return Options{
		Valid:     grid.Everywhere,
		Conn:      grid.Conn4,
		MaxDepth:  0,
		OnEnqueue: func(grid.Point, int) {},
	}
}

// WithValid sets the validity predicate. A nil fn keeps the default.
func WithValid(fn grid.WalkFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Valid = fn
		}
	}
}

// WithConnectivity selects Conn4 or Conn8. Any other value is a violation.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithMaxDepth limits discovery to cells at most d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(p grid.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
