package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/maze"
)

func newCheckCommand(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "check INPUT_FILE",
		Short: "Validate a maze",
		Long: `Validate a maze file. Prints "Maze is OK." when every structural rule
holds, or a report of the maze with --format yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := maze.Load(args[0])
			if err != nil {
				a.log.Info("maze rejected", "input", args[0], "err", err)
				return invalidMaze(err)
			}
			a.log.Info("maze accepted", "input", args[0], "width", g.Width, "height", g.Height)

			out := cmd.OutOrStdout()
			if format == formatYAML {
				doc, err := maze.NewReport(g, nil).YAML()
				if err != nil {
					return err
				}
				_, err = out.Write(doc)
				return err
			}
			_, err = fmt.Fprintln(out, "Maze is OK.")
			return err
		},
	}
	c.Flags().Var(newFormatValue(&format), "format", "output format (text, yaml)")
	return c
}
