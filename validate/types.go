package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel kinds, one per structural rule.
var (
	// ErrIsolatedWall indicates a wall with no orthogonal wall neighbour.
	ErrIsolatedWall = errors.New("validate: isolated wall")
	// ErrRowLoneWall indicates a row with a single wall and no single opening.
	ErrRowLoneWall = errors.New("validate: row holds a lone wall")
	// ErrBadEntrance indicates the entrance is not framed as a corridor.
	ErrBadEntrance = errors.New("validate: invalid entrance")
	// ErrBadExit indicates the exit is not framed as a corridor.
	ErrBadExit = errors.New("validate: invalid exit")
	// ErrDisconnected indicates the wall skeleton splits into several parts.
	ErrDisconnected = errors.New("validate: wall skeleton is not connected")
	// ErrColumnLoneWall indicates a column with a single wall and no single opening.
	ErrColumnLoneWall = errors.New("validate: column holds a lone wall")
	// ErrGridNil is returned for a nil grid.
	ErrGridNil = errors.New("validate: grid is nil")
)

// ValidationError carries the failed rule and where it failed.
//
// Pos is set for cell-level failures (isolated wall, entrance, exit, the first
// unreached skeleton cell). Index is the offending row or column for the
// lone-wall rules.
type ValidationError struct {
	Kind  error
	Pos   grid.Position
	Index int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrRowLoneWall:
		return fmt.Sprintf("%v: row %d", e.Kind, e.Index)
	case ErrColumnLoneWall:
		return fmt.Sprintf("%v: column %d", e.Kind, e.Index)
	case ErrDisconnected:
		return fmt.Sprintf("%v: %v unreachable from the first wall", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v at %v", e.Kind, e.Pos)
}

// Unwrap exposes Kind to errors.Is.
func (e *ValidationError) Unwrap() error { return e.Kind }
