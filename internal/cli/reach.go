package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tesseract/bfs"
)

func newReachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reach <maze.yaml>",
		Short: "Count the cells reachable from start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}

			res, err := bfs.BFS(p.maze, p.from, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			slog.Info("Explored maze", "file", args[0], "reachable", len(res.Order), "cells", p.maze.ActiveCells())
			cmd.Printf("reachable: %d of %d cells\n", len(res.Order), p.maze.ActiveCells())
			if depth, ok := res.Depth[p.to]; ok {
				cmd.Printf("end %v: depth %d\n", p.to, depth)
			} else {
				cmd.Printf("end %v: unreachable\n", p.to)
			}

			return nil
		},
	}
}
