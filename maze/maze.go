// Package maze wires the pipeline together: text → grid.Grid → validation →
// shortest path → report.
//
// The grid is threaded explicitly from one stage to the next and never
// shared: Check returns the validated grid, Solve marks that same grid.
package maze

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazefile"
	"github.com/katalvlaran/mazepath/validate"
)

// Parse reads r and builds a grid without validating it.
func Parse(r io.Reader) (*grid.Grid, error) {
	lines, err := mazefile.ReadLines(r)
	if err != nil {
		return nil, err
	}
	return grid.Build(lines)
}

// Check parses r and validates the result. The returned grid is padded and
// trimmed, ready for Solve.
func Check(r io.Reader) (*grid.Grid, error) {
	g, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return checked(g)
}

// Load reads the maze file at path and validates it. Errors opening or
// reading the file wrap mazefile.ErrOpen or mazefile.ErrRead; anything else
// is a malformed maze.
func Load(path string) (*grid.Grid, error) {
	lines, err := mazefile.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := grid.Build(lines)
	if err != nil {
		return nil, err
	}
	return checked(g)
}

func checked(g *grid.Grid) (*grid.Grid, error) {
	if err := validate.Validate(g); err != nil {
		if errors.Is(err, validate.ErrDisconnected) {
			return nil, &SplitError{Err: err, Islands: len(validate.Components(g))}
		}
		return nil, err
	}
	return g, nil
}

// SplitError reports a wall skeleton broken into several islands.
type SplitError struct {
	Err     error
	Islands int
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("%v (%d wall islands)", e.Err, e.Islands)
}

func (e *SplitError) Unwrap() error { return e.Err }

// Solve marks the shortest path on a grid accepted by Check.
func Solve(g *grid.Grid, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.Solve(g, opts...)
}

// Point is a position in report form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Report summarises a checked and optionally solved maze.
type Report struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Walls    int   `yaml:"walls"`
	Entrance Point `yaml:"entrance"`
	Exit     Point `yaml:"exit"`
	Solved   bool  `yaml:"solved"`
	Steps    int   `yaml:"steps,omitempty"`
	Visited  int   `yaml:"visited,omitempty"`
}

// NewReport builds a Report from a validated grid and, when non-nil, the
// result of solving it.
func NewReport(g *grid.Grid, res *bfs.Result) Report {
	r := Report{
		Width:    g.Width,
		Height:   g.Height,
		Walls:    g.NumWalls,
		Entrance: Point{X: g.Entrance.X, Y: g.Entrance.Y},
		Exit:     Point{X: g.Exit.X, Y: g.Exit.Y},
	}
	if res != nil {
		r.Solved = true
		r.Steps = res.Distance
		r.Visited = res.Visited
	}
	return r
}

// YAML encodes the report as a YAML document.
func (r Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("maze: encode report: %w", err)
	}
	return out, nil
}
