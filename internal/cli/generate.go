package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tesseract/builder"
	"github.com/katalvlaran/tesseract/loader"
	"github.com/katalvlaran/tesseract/maze"
	"github.com/katalvlaran/tesseract/prize"
)

var axisNames = [maze.Dimensions]string{"x", "y", "z", "w"}

// generateArgs holds the generate command's flags.
type generateArgs struct {
	dimensions int
	size       int
	density    float64
	seed       int64
	twoWay     bool
	prizes     int
	output     string
}

func newGenerateCmd() *cobra.Command {
	var a generateArgs

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random maze descriptor",
		Long: `Generate a maze whose moves along every declared axis are kept with the
given density, then write it as YAML. The start is the origin and the end
the far corner. The same seed always yields the same descriptor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := generate(a)
			if err != nil {
				return err
			}

			slog.Info("Generated maze", "dimensions", a.dimensions, "size", a.size,
				"density", a.density, "seed", a.seed, "spaces", len(d.Spaces))

			return writeDescriptor(d, a.output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&a.dimensions, "dimensions", "d", maze.Dimensions, "number of axes (1-4)")
	cmd.Flags().IntVarP(&a.size, "size", "n", 3, "cells per axis")
	cmd.Flags().Float64Var(&a.density, "density", 0.6, "probability each move is kept")
	cmd.Flags().Int64Var(&a.seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&a.twoWay, "two-way", false, "mirror every kept move")
	cmd.Flags().IntVar(&a.prizes, "prizes", 0, "number of prizes to place")
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeDescriptor encodes d to path, or to stdout when path is "" or "-".
// A failed close is reported, since it can lose buffered writes.
func writeDescriptor(d *loader.Descriptor, path string, stdout io.Writer) error {
	if path == "" || path == "-" {
		return d.Encode(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func generate(a generateArgs) (*loader.Descriptor, error) {
	if a.dimensions < 1 || a.dimensions > maze.Dimensions {
		return nil, fmt.Errorf("dimensions must be 1-%d, got %d", maze.Dimensions, a.dimensions)
	}
	if a.size > maze.MaxSize {
		return nil, fmt.Errorf("size must be <= %d, got %d", maze.MaxSize, a.size)
	}
	if a.prizes < 0 {
		return nil, fmt.Errorf("prizes must be >= 0, got %d", a.prizes)
	}

	labels := make([]string, maze.Dimensions)
	copy(labels, axisNames[:a.dimensions])

	bopts := []builder.BuilderOption{builder.WithSeed(a.seed)}
	if a.twoWay {
		bopts = append(bopts, builder.WithTwoWay())
	}
	cells, err := builder.Draft(labels, a.size, bopts, builder.RandomSparse(a.density))
	if err != nil {
		return nil, err
	}

	var end maze.Coord
	for i := 0; i < a.dimensions; i++ {
		end[i] = a.size - 1
	}

	// Prizes use their own stream so the maze does not depend on --prizes.
	rng := rand.New(rand.NewSource(a.seed + 1))
	placed := make(map[maze.Coord]bool, a.prizes)
	prizes := make([]prize.Prize, 0, a.prizes)
	total := 1
	for i := 0; i < a.dimensions; i++ {
		total *= a.size
	}
	for len(prizes) < a.prizes && len(placed) < total {
		var c maze.Coord
		for i := 0; i < a.dimensions; i++ {
			c[i] = rng.Intn(a.size)
		}
		if placed[c] {
			continue
		}
		placed[c] = true
		prizes = append(prizes, prize.Prize{At: c, Points: 1 + rng.Intn(2*a.size*a.dimensions)})
	}

	return loader.NewDescriptor(axisNames[:a.dimensions], a.size, cells, maze.Coord{}, end, prizes), nil
}
