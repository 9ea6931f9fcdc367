package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/internal/mazefile"
	"github.com/katalvlaran/mazepath/maze"
)

func newSolveCommand(a *app) *cobra.Command {
	var pngPath string

	c := &cobra.Command{
		Use:   "solve INPUT_FILE OUTPUT_FILE",
		Short: "Mark the shortest path through a maze",
		Long: `Validate a maze, find the shortest route between its two openings and
write the maze to OUTPUT_FILE with the route drawn as 'o'. Nothing is written
when the maze is invalid or has no route.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			g, err := maze.Load(in)
			if err != nil {
				a.log.Info("maze rejected", "input", in, "err", err)
				return invalidMaze(err)
			}

			var opts []bfs.Option
			if a.log.Enabled(cmd.Context(), slog.LevelDebug) {
				opts = append(opts, bfs.WithOnDequeue(func(p grid.Position, depth int) {
					a.log.Debug("dequeue", "pos", p.String(), "depth", depth)
				}))
			}
			res, err := maze.Solve(g, opts...)
			if errors.Is(err, bfs.ErrUnreachable) {
				a.log.Info("no route", "input", in)
				return fmt.Errorf("no solution found: %w", err)
			}
			if err != nil {
				return err
			}

			if err := mazefile.Save(out, g); err != nil {
				return err
			}
			if pngPath != "" {
				if err := mazefile.SavePNG(pngPath, g, a.cfg.Render.PNGScale); err != nil {
					return err
				}
			}

			rep := maze.NewReport(g, res)
			a.log.Info("maze solved",
				"input", in,
				"output", out,
				"steps", rep.Steps,
				"visited", rep.Visited,
			)
			return nil
		},
	}
	c.Flags().StringVar(&pngPath, "png", "", "also write the solved maze as a PNG image")
	return c
}
