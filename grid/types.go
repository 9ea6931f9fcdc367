package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrIllegalChar indicates a character outside {'#', 'X', ' '}.
	ErrIllegalChar = errors.New("grid: illegal character")
	// ErrOpeningCount indicates the input does not hold exactly two openings.
	ErrOpeningCount = errors.New("grid: wrong number of openings")
	// ErrOutOfRange indicates a position outside the grid or its stored row.
	ErrOutOfRange = errors.New("grid: position out of range")
)

// Tile is the content of one cell.
type Tile byte

const (
	// Wall is an impassable boundary cell.
	Wall Tile = '#'
	// Opening is one of the two entrance/exit cells.
	Opening Tile = 'X'
	// Blank is passable interior or padding.
	Blank Tile = ' '
	// Path marks a cell on the discovered shortest route.
	Path Tile = 'o'
)

// String returns the tile as a one-character string.
func (t Tile) String() string { return string(rune(t)) }

// Skeleton reports whether t belongs to the wall skeleton (Wall or Opening).
func (t Tile) Skeleton() bool { return t == Wall || t == Opening }

// parseTile maps an input character onto the input alphabet.
func parseTile(c byte) (Tile, bool) {
	switch Tile(c) {
	case Wall, Opening, Blank:
		return Tile(c), true
	}
	return 0, false
}

// Position is a zero-based (column, row) pair. It carries no bounds of its
// own; validity is always relative to a specific Grid.
type Position struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction indexes the four orthogonal neighbours returned by Adjacent.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// offsets lists the neighbour deltas in Up, Right, Down, Left order.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Step returns the neighbour of p in direction d. The result is not
// bounds-checked.
func (p Position) Step(d Direction) Position {
	o := offsets[d]
	return Position{X: p.X + o[0], Y: p.Y + o[1]}
}

// Adjacent returns the four orthogonal neighbours of p in the fixed order
// up, right, down, left. Callers must bounds-check before dereferencing.
func Adjacent(p Position) [4]Position {
	var out [4]Position
	for d := Up; d <= Left; d++ {
		out[d] = p.Step(d)
	}
	return out
}

// Stage tells which meaning the per-row line lengths currently carry.
type Stage int

const (
	// StageRaw: each length is the row's original, pre-padding length.
	StageRaw Stage = iota
	// StageTrimmed: each length is one past the last non-blank tile.
	StageTrimmed
)

// ParseError reports why raw input could not become a Grid.
// Kind is one of ErrIllegalChar or ErrOpeningCount.
type ParseError struct {
	Kind  error
	Row   int  // offending row (ErrIllegalChar)
	Col   int  // offending column (ErrIllegalChar)
	Char  byte // offending character (ErrIllegalChar)
	Count int  // openings found (ErrOpeningCount)
}

func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrOpeningCount) {
		return fmt.Sprintf("%v: found %d, want 2", e.Kind, e.Count)
	}
	return fmt.Sprintf("%v %q at row %d, column %d", e.Kind, e.Char, e.Row, e.Col)
}

// Unwrap exposes Kind to errors.Is.
func (e *ParseError) Unwrap() error { return e.Kind }
