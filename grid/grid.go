package grid

import (
	"fmt"
	"strings"
)

// Grid is a maze drawn as text. Rows may be ragged until Pad runs.
//
// Width and Height are the maze dimensions (see package doc for the width
// rule). Entrance and Exit are the two openings in row-major order.
// NumWalls is maintained by the validator's row scan.
type Grid struct {
	Width, Height  int
	Entrance, Exit Position
	NumWalls       int

	rows        [][]Tile
	lineLengths []int
	stage       Stage
	padded      bool
}

// Build constructs a Grid from raw lines, one row per line. A trailing "\n"
// or "\r\n" is stripped from each line before its characters are classified.
// Returns a *ParseError wrapping ErrIllegalChar for a character outside the
// alphabet, or ErrOpeningCount when the input holds other than two openings.
// Complexity: O(W×H) time and memory.
func Build(lines []string) (*Grid, error) {
	g := &Grid{
		Height:      len(lines),
		rows:        make([][]Tile, len(lines)),
		lineLengths: make([]int, len(lines)),
		stage:       StageRaw,
	}
	rightmost := -1
	openings := 0
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		row := make([]Tile, len(line))
		for x := 0; x < len(line); x++ {
			t, ok := parseTile(line[x])
			if !ok {
				return nil, &ParseError{Kind: ErrIllegalChar, Row: y, Col: x, Char: line[x]}
			}
			row[x] = t
			switch t {
			case Wall:
				if x > rightmost {
					rightmost = x
				}
			case Opening:
				if openings == 0 {
					g.Entrance = Position{X: x, Y: y}
				} else if openings == 1 {
					g.Exit = Position{X: x, Y: y}
				}
				openings++
			}
		}
		g.rows[y] = row
		g.lineLengths[y] = len(row)
	}
	// The wall span is anchored at column 0; no wall means no width.
	g.Width = rightmost + 1
	if openings != 2 {
		return nil, &ParseError{Kind: ErrOpeningCount, Count: openings}
	}

	return g, nil
}

// InRect reports whether p lies in [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InRect(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Within reports whether p lies in the rectangle and before the current line
// length of its row. This is the bounds test for passable cells.
// Complexity: O(1).
func (g *Grid) Within(p Position) bool {
	return g.InRect(p) && p.X < g.lineLengths[p.Y]
}

// TileAt returns the tile at p, or ErrOutOfRange when p is outside the
// rectangle or beyond the tiles stored for its row. Once Pad has run every row
// spans Width, so no position inside the rectangle fails.
func (g *Grid) TileAt(p Position) (Tile, error) {
	if !g.InRect(p) || p.X >= len(g.rows[p.Y]) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfRange, p, g.Width, g.Height)
	}
	return g.rows[p.Y][p.X], nil
}

// Cell returns the tile at p, reading anything not stored as Blank.
func (g *Grid) Cell(p Position) Tile {
	if p.Y < 0 || p.Y >= g.Height || p.X < 0 || p.X >= len(g.rows[p.Y]) {
		return Blank
	}
	return g.rows[p.Y][p.X]
}

// Set writes t at p. Only positions accepted by Within may be written.
func (g *Grid) Set(p Position, t Tile) error {
	if !g.Within(p) {
		return fmt.Errorf("%w: cannot set %v", ErrOutOfRange, p)
	}
	g.rows[p.Y][p.X] = t
	return nil
}

// Pad right-extends every row shorter than Width with Blank tiles.
// It runs once; later calls do nothing. Line lengths are left untouched.
// Complexity: O(W×H).
func (g *Grid) Pad() {
	if g.padded {
		return
	}
	for y, row := range g.rows {
		if len(row) >= g.Width {
			continue
		}
		wide := make([]Tile, g.Width)
		copy(wide, row)
		for x := len(row); x < g.Width; x++ {
			wide[x] = Blank
		}
		g.rows[y] = wide
	}
	g.padded = true
}

// Trim sets every line length to one past the last non-blank tile inside
// [0,Width) and moves the grid to StageTrimmed. It is a fixed point: running
// it again yields the same lengths.
// Complexity: O(W×H).
func (g *Grid) Trim() {
	for y := range g.rows {
		n := 0
		for x := g.Width - 1; x >= 0; x-- {
			if g.Cell(Position{X: x, Y: y}) != Blank {
				n = x + 1
				break
			}
		}
		g.lineLengths[y] = n
	}
	g.stage = StageTrimmed
}

// LineLength returns the current length of row y (see Stage).
func (g *Grid) LineLength(y int) int { return g.lineLengths[y] }

// Stage returns the meaning the line lengths currently carry.
func (g *Grid) Stage() Stage { return g.stage }

// Padded reports whether Pad has run.
func (g *Grid) Padded() bool { return g.padded }

// Lines returns the stored rows as strings, including any padding.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		b := make([]byte, len(row))
		for x, t := range row {
			b[x] = byte(t)
		}
		out[y] = string(b)
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.rows = make([][]Tile, len(g.rows))
	for y, row := range g.rows {
		c.rows[y] = append([]Tile(nil), row...)
	}
	c.lineLengths = append([]int(nil), g.lineLengths...)
	return &c
}

// Index maps p to a row-major index: y*Width + x, for dense per-cell tables
// of size Width×Height. p must satisfy InRect.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}
