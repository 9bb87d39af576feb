// Package reach provides the exact-N step search over a tilemap.Grid.
package reach

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepgarden/tilemap"
)

// ctxCheckEvery is the number of dequeues between cancellation checks.
const ctxCheckEvery = 1024

// neighborOffsets lists moves in expansion order: left, right, up, down.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// walker encapsulates mutable search state. Every field is owned by a single
// Search call; the grid is only read.
type walker struct {
	grid     *tilemap.Grid
	target   int
	opts     Options
	ctx      context.Context
	queue    []State
	visited  stateSet
	hits     []Position
	dequeued int
}

// Search runs the exact-N step search on g from its center, applying any
// number of functional Options.
// Returns ErrGridNil, ErrNegativeSteps or ErrOptionViolation for invalid input,
// the context error on cancellation, or a wrapped OnVisit error.
func Search(g *tilemap.Grid, target int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, target)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:   g,
		target: target,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]State, 0, 4*(target+1)),
	}
	if o.Wrap {
		w.visited = newSparseStates(4 * (target + 1))
	} else {
		w.visited = newDenseStates(g.Width(), g.Height())
	}

	cx, cy := g.Center()
	w.enqueue(State{Position: Position{X: cx, Y: cy}, Steps: 0})
	if err := w.loop(); err != nil {
		return nil, err
	}

	slices.SortFunc(w.hits, comparePositions)
	return &Result{
		Target:    target,
		Positions: w.hits,
		Expanded:  w.visited.len(),
	}, nil
}

// enqueue calls OnEnqueue and appends s to the queue.
func (w *walker) enqueue(s State) {
	w.opts.OnEnqueue(s)
	w.queue = append(w.queue, s)
}

// dequeue pops the first state.
func (w *walker) dequeue() State {
	s := w.queue[0]
	w.queue = w.queue[1:]
	w.dequeued++
	return s
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if w.dequeued%ctxCheckEvery == 0 {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
		}

		s := w.dequeue()
		if !w.visited.add(s) {
			continue
		}
		if err := w.opts.OnVisit(s); err != nil {
			return fmt.Errorf("reach: OnVisit error at %v: %w", s, err)
		}
		if s.Steps == w.target {
			w.hits = append(w.hits, s.Position)
			continue
		}
		w.enqueueNeighbors(s)
	}
	return nil
}

// enqueueNeighbors pushes every open neighbor of s one step deeper.
func (w *walker) enqueueNeighbors(s State) {
	for _, d := range neighborOffsets {
		nx, ny := s.X+d[0], s.Y+d[1]
		if w.opts.Wrap {
			if w.grid.Blocked(mod(nx, w.grid.Width()), mod(ny, w.grid.Height())) {
				continue
			}
		} else if !w.grid.InBounds(nx, ny) || w.grid.Blocked(nx, ny) {
			continue
		}
		w.enqueue(State{Position: Position{X: nx, Y: ny}, Steps: s.Steps + 1})
	}
}

// mod returns the non-negative remainder of a/m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
