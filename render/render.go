// Package render projects a grid.Grid back to text, and optionally to a PNG
// image, trimmed of the unused margin.
//
// The leftmost column kept is the first non-blank column of any row; each row
// is cut at its trimmed line length. Without solving, Lines(Build(lines))
// reproduces the input modulo leading and trailing blank columns.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrGridNil is returned for a nil grid.
var ErrGridNil = errors.New("render: grid is nil")

// LeftMargin returns the first column holding a non-blank tile in any row,
// looking only inside [0,Width). It returns Width when every tile is blank.
func LeftMargin(g *grid.Grid) int {
	left := g.Width
	for y := 0; y < g.Height; y++ {
		for x := 0; x < left; x++ {
			if g.Cell(grid.Position{X: x, Y: y}) != grid.Blank {
				left = x
				break
			}
		}
	}
	return left
}

// Lines renders g as one string per row. The grid's line lengths are
// recomputed first, so a freshly marked grid renders correctly; rows with
// nothing between the margin and their length render as "".
func Lines(g *grid.Grid) []string {
	if g == nil {
		return nil
	}
	g.Trim()
	left := LeftMargin(g)
	out := make([]string, g.Height)
	for y := 0; y < g.Height; y++ {
		n := g.LineLength(y)
		if n <= left {
			continue
		}
		b := make([]byte, 0, n-left)
		for x := left; x < n; x++ {
			b = append(b, byte(g.Cell(grid.Position{X: x, Y: y})))
		}
		out[y] = string(b)
	}
	return out
}

// Write renders g to w, each line followed by "\n".
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	bw := bufio.NewWriter(w)
	for _, line := range Lines(g) {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("render: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("render: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}
