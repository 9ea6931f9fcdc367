// Package bfs provides tunable options, error definitions and the result type
// for breadth-first search over a validated grid.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrUnreachable is returned when the frontier is exhausted before the
	// exit is dequeued.
	ErrUnreachable = errors.New("bfs: exit unreachable from entrance")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// DefaultNeighborOrder is the expansion order: up, right, down, left.
var DefaultNeighborOrder = [4]grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left}

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize Solve.
type Options struct {
	// Order is the sequence in which neighbours are expanded. It only decides
	// which of several equally short paths is chosen.
	Order [4]grid.Direction

	// OnEnqueue is called when a cell is enqueued, with its distance.
	OnEnqueue func(p grid.Position, depth int)

	// OnDequeue is called immediately before a cell is expanded.
	OnDequeue func(p grid.Position, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the up/right/down/left order and no-op
// hooks.
func DefaultOptions() Options {
	return Options{
		Order:     DefaultNeighborOrder,
		OnEnqueue: func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
	}
}

// WithNeighborOrder replaces the expansion order. order must be a permutation
// of the four directions.
func WithNeighborOrder(order [4]grid.Direction) Option {
	return func(o *Options) {
		var seen [4]bool
		for _, d := range order {
			if d < grid.Up || d > grid.Left || seen[d] {
				o.err = fmt.Errorf("%w: neighbor order %v is not a permutation", ErrOptionViolation, order)
				return
			}
			seen[d] = true
		}
		o.Order = order
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Path: cells from entrance to exit inclusive, all marked grid.Path.
//   - Distance: number of steps, len(Path)-1.
//   - Visited: cells enqueued during the search.
type Result struct {
	Path     []grid.Position
	Distance int
	Visited  int
}
