package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

// TestBuild_Corridor checks dimensions and openings of a 3×3 corridor.
func TestBuild_Corridor(t *testing.T) {
	g, err := grid.Build([]string{"#X#\n", "# #\n", "#X#\n"})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, grid.Position{X: 1, Y: 0}, g.Entrance)
	assert.Equal(t, grid.Position{X: 1, Y: 2}, g.Exit)
	assert.Equal(t, grid.StageRaw, g.Stage())
	assert.Equal(t, 3, g.LineLength(1))
}

// TestBuild_WidthFollowsWalls shows that width is the wall span, not the
// longest row: trailing blanks and a far opening do not widen the grid.
func TestBuild_WidthFollowsWalls(t *testing.T) {
	g, err := grid.Build([]string{"#X#      ", "#", "#X#"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 9, g.LineLength(0), "raw stage keeps the original length")
	assert.Equal(t, 1, g.LineLength(1))
}

// TestBuild_NoWalls yields a zero width; validation rejects it later.
func TestBuild_NoWalls(t *testing.T) {
	g, err := grid.Build([]string{"X X"})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Width)
}

func TestBuild_CRLF(t *testing.T) {
	g, err := grid.Build([]string{"#X#\r\n", "#X#\r\n"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#X#", "#X#"}, g.Lines())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		kind  error
	}{
		{"illegal char", []string{"#X#", "#.#", "#X#"}, grid.ErrIllegalChar},
		{"tab", []string{"#X#", "#\t#", "#X#"}, grid.ErrIllegalChar},
		{"path marker on input", []string{"#X#", "#o#", "#X#"}, grid.ErrIllegalChar},
		{"three openings", []string{"#X#", "#X#", "#X#"}, grid.ErrOpeningCount},
		{"one opening", []string{"#X#", "# #", "###"}, grid.ErrOpeningCount},
		{"empty input", nil, grid.ErrOpeningCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Build(tc.lines)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.kind)

			var pe *grid.ParseError
			require.True(t, errors.As(err, &pe))
		})
	}
}

func TestParseError_Context(t *testing.T) {
	_, err := grid.Build([]string{"#X#", "#?#"})
	var pe *grid.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Row)
	assert.Equal(t, 1, pe.Col)
	assert.Equal(t, byte('?'), pe.Char)

	_, err = grid.Build([]string{"XXX#"})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Count)
	assert.Contains(t, err.Error(), "found 3")
}

func TestAdjacent_Order(t *testing.T) {
	got := grid.Adjacent(grid.Position{X: 0, Y: 0})
	want := [4]grid.Position{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	assert.Equal(t, want, got)
	assert.Equal(t, grid.Position{X: 4, Y: 3}, grid.Position{X: 5, Y: 3}.Step(grid.Left))
}

// TestTileAt_BeforeAndAfterPad exercises the out-of-range rules across padding.
func TestTileAt_BeforeAndAfterPad(t *testing.T) {
	g, err := grid.Build([]string{"#X###", "#  #", "#X###"})
	require.NoError(t, err)

	_, err = g.TileAt(grid.Position{X: 4, Y: 1})
	require.ErrorIs(t, err, grid.ErrOutOfRange, "row 1 stores only 4 tiles")
	_, err = g.TileAt(grid.Position{X: -1, Y: 0})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.TileAt(grid.Position{X: 0, Y: 3})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.Equal(t, grid.Blank, g.Cell(grid.Position{X: 4, Y: 1}))

	g.Pad()
	require.True(t, g.Padded())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			_, err := g.TileAt(grid.Position{X: x, Y: y})
			require.NoError(t, err)
		}
	}
	tile, err := g.TileAt(grid.Position{X: 4, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.Blank, tile)
}

func TestPadTrim_FixedPoint(t *testing.T) {
	g, err := grid.Build([]string{"#X####", "#   #", "#", "#X####"})
	require.NoError(t, err)
	g.Pad()
	g.Trim()
	require.Equal(t, grid.StageTrimmed, g.Stage())
	first := []int{g.LineLength(0), g.LineLength(1), g.LineLength(2), g.LineLength(3)}
	assert.Equal(t, []int{6, 5, 1, 6}, first)

	lines := g.Lines()
	g.Pad()
	g.Trim()
	assert.Equal(t, lines, g.Lines())
	assert.Equal(t, first, []int{g.LineLength(0), g.LineLength(1), g.LineLength(2), g.LineLength(3)})
}

func TestTrim_AllBlankRow(t *testing.T) {
	g, err := grid.Build([]string{"#X#", "   ", "#X#"})
	require.NoError(t, err)
	g.Pad()
	g.Trim()
	assert.Equal(t, 0, g.LineLength(1))
	assert.False(t, g.Within(grid.Position{X: 1, Y: 1}))
}

func TestSet_WithinOnly(t *testing.T) {
	g, err := grid.Build([]string{"#X#", "# #", "#X#"})
	require.NoError(t, err)
	g.Pad()
	g.Trim()
	require.NoError(t, g.Set(grid.Position{X: 1, Y: 1}, grid.Path))
	assert.Equal(t, grid.Path, g.Cell(grid.Position{X: 1, Y: 1}))
	require.ErrorIs(t, g.Set(grid.Position{X: 3, Y: 1}, grid.Path), grid.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	g, err := grid.Build([]string{"#X#", "# #", "#X#"})
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.Set(grid.Position{X: 1, Y: 1}, grid.Path))
	assert.Equal(t, grid.Blank, g.Cell(grid.Position{X: 1, Y: 1}))
	assert.Equal(t, grid.Path, c.Cell(grid.Position{X: 1, Y: 1}))
}

func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := grid.Build([]string{"#X###", "#   #", "###X#"})
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			assert.Equal(t, p, g.Coordinate(g.Index(p)))
		}
	}
}

func TestTile_Skeleton(t *testing.T) {
	assert.True(t, grid.Wall.Skeleton())
	assert.True(t, grid.Opening.Skeleton())
	assert.False(t, grid.Blank.Skeleton())
	assert.False(t, grid.Path.Skeleton())
	assert.Equal(t, "#", grid.Wall.String())
	assert.Equal(t, "left", grid.Left.String())
}
