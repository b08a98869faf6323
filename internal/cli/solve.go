package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tesseract/astar"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <maze.yaml>",
		Short: "Find the shortest path from start to end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}

			res, err := astar.Search(p.maze, p.from, p.to,
				astar.WithContext(cmd.Context()),
				astar.WithMaxExpansions(viper.GetInt(maxExpansionsKey)))
			if err != nil {
				if errors.Is(err, astar.ErrNoPath) {
					slog.Info("No path", "file", args[0], "from", p.from.String(), "to", p.to.String(), "expanded", res.Expanded)
					cmd.Printf("no path from %v to %v (%d cells expanded)\n", p.from, p.to, res.Expanded)
				}
				return err
			}

			slog.Info("Solved maze", "file", args[0], "length", res.Path.Len(), "expanded", res.Expanded)
			cmd.Printf("path: %s\n", res.Path.Moves())
			cmd.Printf("length: %d\n", res.Path.Len())
			cmd.Printf("expanded: %d\n", res.Expanded)

			return nil
		},
	}

	return cmd
}
