// Package cmd provides the mazepath command line.
//
// Configuration is resolved once per invocation, before the subcommand runs:
//
//	--config / MAZEPATH_CONFIG_FILE / .mazepath.yaml   config file
//	MAZEPATH_LOG_LEVEL, MAZEPATH_LOG_FORMAT, ...       environment overrides
//	--log-level, --log-format                          flag overrides
//
// Diagnostics go to stderr as "Error: <reason>" and the process exits with 1.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/logging"
	"github.com/katalvlaran/mazepath/internal/mazefile"
)

// app carries what every subcommand needs once configuration is resolved.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "mazepath",
		Short: "Validate ASCII mazes and mark their shortest path",
		Long: `mazepath reads a maze drawn with '#' walls, exactly two 'X' openings and
blank corridors, checks that it is well formed, and can write it back with the
shortest route between the openings marked by 'o'.

  mazepath check maze.txt                Validate only
  mazepath check maze.txt --format yaml  Print a report
  mazepath solve maze.txt out.txt        Validate, solve and write the result`,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .mazepath.yaml, can also use MAZEPATH_CONFIG_FILE)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")

	root.AddCommand(newCheckCommand(a), newSolveCommand(a), newVersionCommand())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves configuration and the logger. Usage output is silenced from
// here on: argument errors have already been reported by then.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	v, err := config.NewViper(config.Sources{ConfigFile: a.cfgFile})
	if err != nil {
		return err
	}
	root := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyLogLevel, root.Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyLogFormat, root.Lookup("log-format")); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log.With(slog.String("cmd", cmd.Name()))
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", "file", used)
	}
	return nil
}

// invalidMaze prefixes a load failure unless it is an I/O problem, which
// already says what went wrong.
func invalidMaze(err error) error {
	if errors.Is(err, mazefile.ErrOpen) || errors.Is(err, mazefile.ErrRead) {
		return err
	}
	return fmt.Errorf("invalid maze: %w", err)
}
