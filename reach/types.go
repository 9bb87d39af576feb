// Package reach provides tunable options, result types and error definitions
// for the step-bounded reachability search.
package reach

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// DebugSteps is the step count whose result is rendered for inspection.
const DebugSteps = 64

// Mark replaces reached plots in Render output.
const Mark byte = 'O'

// Sentinel errors for Search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("reach: grid is nil")

	// ErrNegativeSteps is returned for a negative target step count.
	ErrNegativeSteps = errors.New("reach: target steps cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Position is a cell coordinate.
type Position struct {
	X, Y int
}

// State is a search frontier node: a position after Steps moves.
type State struct {
	Position
	Steps int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)@%d", s.X, s.Y, s.Steps)
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Wrap treats the grid as a tile of an infinite plane.
	Wrap bool

	// OnEnqueue is called for every state pushed onto the queue,
	// including duplicates that will later be discarded.
	OnEnqueue func(s State)

	// OnVisit is called once per distinct state, when it is expanded.
	// Returning an error aborts the search.
	OnVisit func(s State) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, bounded
// neighbors and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Wrap:      false,
		OnEnqueue: func(State) {},
		OnVisit:   func(State) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithWrap makes neighbors wrap around the grid edges.
func WithWrap() Option {
	return func(o *Options) {
		o.Wrap = true
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(s State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Target:    the requested step count.
//   - Positions: every position reached in exactly Target steps, row-major.
//   - Expanded:  number of distinct states taken off the queue.
type Result struct {
	Target    int
	Positions []Position
	Expanded  int
}

// Count returns the number of positions reached in exactly Target steps.
func (r *Result) Count() int { return len(r.Positions) }

// Contains reports whether p was reached in exactly Target steps.
func (r *Result) Contains(p Position) bool {
	_, ok := slices.BinarySearchFunc(r.Positions, p, comparePositions)
	return ok
}

// comparePositions orders positions row-major: by Y, then X.
func comparePositions(a, b Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
