package validate

import (
	"github.com/katalvlaran/mazepath/grid"
)

// connected checks that every skeleton cell (wall or opening) before its
// row's line length is reachable from the first one in row-major order.
// A grid with no skeleton cell is vacuously connected.
func connected(g *grid.Grid) error {
	start, ok := firstSkeleton(g)
	if !ok {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	flood(g, start, seen)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.LineLength(y); x++ {
			p := grid.Position{X: x, Y: y}
			if g.Cell(p).Skeleton() && !seen[g.Index(p)] {
				return &ValidationError{Kind: ErrDisconnected, Pos: p}
			}
		}
	}
	return nil
}

func firstSkeleton(g *grid.Grid) (grid.Position, bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.LineLength(y); x++ {
			p := grid.Position{X: x, Y: y}
			if g.Cell(p).Skeleton() {
				return p, true
			}
		}
	}
	return grid.Position{}, false
}

// flood marks in seen every skeleton cell 4-connected to start inside
// [0,Width)×[0,Height) and returns those cells in visit order. The queue is a
// slice drained by index, so each cell is appended at most once.
func flood(g *grid.Grid, start grid.Position, seen []bool) []grid.Position {
	queue := []grid.Position{start}
	seen[g.Index(start)] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range grid.Adjacent(queue[qi]) {
			if !g.InRect(n) || !g.Cell(n).Skeleton() {
				continue
			}
			if i := g.Index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// Components returns the connected parts of the wall skeleton inside
// [0,Width)×[0,Height), each in BFS order, components ordered by their first
// cell in row-major order. A valid maze has exactly one.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func Components(g *grid.Grid) [][]grid.Position {
	if g == nil || g.Width == 0 {
		return nil
	}
	seen := make([]bool, g.Width*g.Height)
	var comps [][]grid.Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			if !g.Cell(p).Skeleton() || seen[g.Index(p)] {
				continue
			}
			comps = append(comps, flood(g, p, seen))
		}
	}
	return comps
}
