package validate

import (
	"github.com/katalvlaran/mazepath/grid"
)

// Validate checks g against every structural rule, padding and trimming it on
// the way. It returns nil for a well-formed maze or the first
// *ValidationError encountered.
func Validate(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	if err := scanRows(g); err != nil {
		return err
	}
	g.Pad()
	g.Trim()
	if !isCorridor(g, g.Entrance) {
		return &ValidationError{Kind: ErrBadEntrance, Pos: g.Entrance}
	}
	if !isCorridor(g, g.Exit) {
		return &ValidationError{Kind: ErrBadExit, Pos: g.Exit}
	}
	if err := connected(g); err != nil {
		return err
	}

	return scanColumns(g)
}

// scanRows walks the grid row by row over [0,Width). Each wall must have a
// wall neighbour; a row with exactly one wall needs exactly one opening.
// NumWalls is reassigned after every row with the running total.
func scanRows(g *grid.Grid) error {
	total := 0
	for y := 0; y < g.Height; y++ {
		walls, openings := 0, 0
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			switch g.Cell(p) {
			case grid.Wall:
				walls++
				total++
				if !hasWallNeighbour(g, p) {
					return &ValidationError{Kind: ErrIsolatedWall, Pos: p, Index: y}
				}
			case grid.Opening:
				openings++
			}
		}
		g.NumWalls = total
		if walls == 1 && openings != 1 {
			return &ValidationError{Kind: ErrRowLoneWall, Pos: grid.Position{X: -1, Y: y}, Index: y}
		}
	}
	return nil
}

// scanColumns applies the lone-wall rule per column. It expects padded rows.
func scanColumns(g *grid.Grid) error {
	for x := 0; x < g.Width; x++ {
		walls, openings := 0, 0
		for y := 0; y < g.Height; y++ {
			switch g.Cell(grid.Position{X: x, Y: y}) {
			case grid.Wall:
				walls++
			case grid.Opening:
				openings++
			}
		}
		if walls == 1 && openings != 1 {
			return &ValidationError{Kind: ErrColumnLoneWall, Pos: grid.Position{X: x, Y: -1}, Index: x}
		}
	}
	return nil
}

func hasWallNeighbour(g *grid.Grid, p grid.Position) bool {
	for _, n := range grid.Adjacent(p) {
		if isWall(g, n) {
			return true
		}
	}
	return false
}

// isWall tests a neighbour: columns must fall in [0,Width), rows in
// [0,Height). Cell already reads unstored tiles as blank.
func isWall(g *grid.Grid, p grid.Position) bool {
	if p.X < 0 || p.X >= g.Width {
		return false
	}
	return g.Cell(p) == grid.Wall
}

// isCorridor reports whether p has walls on exactly one opposite pair:
// left and right, or up and down, and nothing on the other axis.
func isCorridor(g *grid.Grid, p grid.Position) bool {
	adj := grid.Adjacent(p)
	up := isWall(g, adj[grid.Up])
	right := isWall(g, adj[grid.Right])
	down := isWall(g, adj[grid.Down])
	left := isWall(g, adj[grid.Left])

	horizontal := left && right && !up && !down
	vertical := up && down && !left && !right
	return horizontal || vertical
}
