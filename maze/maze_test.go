package maze_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazefile"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/validate"
)

func TestCheck_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"A corridor", "#X#\n# #\n#X#\n", nil},
		{"B three openings", "#X#\n#X#\n#X#\n", grid.ErrOpeningCount},
		{"C two rooms", "#X#  #X#\n# #  # #\n###  ###\n", validate.ErrDisconnected},
		{"D entrance boxed in", "#####\n##X##\n#   #\n##X##\n", validate.ErrBadEntrance},
		{"illegal character", "#X#\n#-#\n#X#\n", grid.ErrIllegalChar},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Check(strings.NewReader(tc.in))
			if tc.want == nil {
				require.NoError(t, err)
				require.NotNil(t, g)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

// TestCheck_ParseBeforeValidate: with three openings the parse error wins even
// though the layout would also fail structural checks.
func TestCheck_ParseBeforeValidate(t *testing.T) {
	_, err := maze.Check(strings.NewReader("X#X\n #\nX \n"))
	require.ErrorIs(t, err, grid.ErrOpeningCount)
	var ve *validate.ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestCheck_IslandCount(t *testing.T) {
	_, err := maze.Check(strings.NewReader("#X#  #X#\n# #  # #\n###  ###\n"))
	var split *maze.SplitError
	require.ErrorAs(t, err, &split)
	assert.Equal(t, 2, split.Islands)
	assert.Contains(t, err.Error(), "2 wall islands")

	var ve *validate.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, grid.Position{X: 5, Y: 0}, ve.Pos)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("#X#\n# #\n#X#\n"), 0o644))
	g, err := maze.Load(good)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("#X#\n#X#\n#X#\n"), 0o644))
	_, err = maze.Load(bad)
	require.ErrorIs(t, err, grid.ErrOpeningCount)

	_, err = maze.Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, mazefile.ErrOpen)
}

func TestSolve_Pipeline(t *testing.T) {
	g, err := maze.Check(strings.NewReader("##X###\n#    #\n#    #\n###X##\n"))
	require.NoError(t, err)
	res, err := maze.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"##o###", "# oo #", "#  o #", "###o##"}, render.Lines(g))

	rep := maze.NewReport(g, res)
	assert.Equal(t, maze.Report{
		Width: 6, Height: 4, Walls: 14,
		Entrance: maze.Point{X: 2, Y: 0},
		Exit:     maze.Point{X: 3, Y: 3},
		Solved:   true, Steps: 4, Visited: res.Visited,
	}, rep)
}

func TestSolve_Unreachable(t *testing.T) {
	g, err := maze.Check(strings.NewReader("#X#\n# #\n###\n###\n# #\n#X#\n"))
	require.NoError(t, err)
	_, err = maze.Solve(g)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestReport_YAML(t *testing.T) {
	g, err := maze.Check(strings.NewReader("#X#\n# #\n#X#\n"))
	require.NoError(t, err)

	out, err := maze.NewReport(g, nil).YAML()
	require.NoError(t, err)

	var back maze.Report
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, 3, back.Width)
	assert.Equal(t, 6, back.Walls)
	assert.False(t, back.Solved)
	assert.NotContains(t, string(out), "steps")
}
