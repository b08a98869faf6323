// Package cli implements the tesseract command line: loading maze
// descriptors, solving them, pricing prize detours and generating fixtures.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tesseract/loader"
	"github.com/katalvlaran/tesseract/maze"
)

const rootLongDescription = `Tesseract finds shortest paths through four-dimensional mazes whose
cells allow one-way moves, and decides which prizes are worth a detour.

A maze descriptor is a YAML (or JSON) file:

  dimensions: [x, y, z, w]   # 1 to 4 names; missing axes are fixed at 0
  size: 3
  spaces:
    - {x: 0, y: 0, moves: xy} # lowercase +1, uppercase -1
  start: "(0, 0, 0, 0)"
  end: "(2, 2, 2, 2)"
  prizes:
    "(0, 2, 0, 0)": 5`

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	var (
		logFile       string
		verbose       bool
		maxExpansions int
	)

	cmd := &cobra.Command{
		Use:           "tesseract",
		Short:         "4D maze pathfinding and prize detours",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logFile, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verbose, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().IntVar(&maxExpansions, maxExpansionsFlagName, viper.GetInt(maxExpansionsKey), "settle at most N cells per search (0 = unlimited)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxExpansionsFlagName), maxExpansionsKey)

	cmd.AddCommand(
		newSolveCmd(),
		newPrizesCmd(),
		newReachCmd(),
		newGenerateCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the command tree with os.Args, cancelling searches when ctx ends.
func ExecuteContext(ctx context.Context) error {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}

	return nil
}

// bindFlagToConfig wires a cobra flag to a viper key so config and env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// problem is a loaded descriptor and the maze it builds.
type problem struct {
	desc *loader.Descriptor
	maze *maze.Maze
	from maze.Coord
	to   maze.Coord
}

func loadProblem(path string) (*problem, error) {
	d, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := d.Maze()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	from, to, err := d.Endpoints()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &problem{desc: d, maze: m, from: from, to: to}, nil
}
