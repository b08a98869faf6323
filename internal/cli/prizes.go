package cli

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tesseract/astar"
	"github.com/katalvlaran/tesseract/prize"
)

func newPrizesCmd() *cobra.Command {
	var (
		workers  int
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "prizes <maze.yaml>",
		Short: "Solve, then list the prizes worth a detour",
		Long: `Solve the maze, then judge every prize on its own: a prize is kept when
the cheapest round trip from some node of the base path costs strictly
fewer moves than the prize is worth.

By default the return leg is assumed to cost as much as the outbound leg.
With --directed-return it is searched separately, since moves are one-way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			prizes, err := p.desc.PrizeList()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			search := []astar.Option{astar.WithMaxExpansions(viper.GetInt(maxExpansionsKey))}
			base, err := astar.ShortestPath(p.maze, p.from, p.to,
				append(search, astar.WithContext(cmd.Context()))...)
			if err != nil {
				return fmt.Errorf("base path: %w", err)
			}

			mode := prize.Mirrored
			if viper.GetBool(directedReturnKey) {
				mode = prize.Directed
			}
			detours, err := prize.Evaluate(p.maze, base, prizes,
				prize.WithContext(cmd.Context()),
				prize.WithWorkers(viper.GetInt(workersKey)),
				prize.WithRoundTrip(mode),
				prize.WithLogger(slog.Default()),
				prize.WithSearchOptions(search...))
			if err != nil {
				return err
			}

			slog.Info("Evaluated prizes", "file", args[0], "prizes", len(prizes), "kept", len(detours), "mode", mode.String())
			cmd.Printf("base path: %s (length %d)\n", base.Moves(), base.Len())
			if len(detours) == 0 {
				cmd.Printf("no prize of %d is worth a detour\n", len(prizes))
				return nil
			}
			cmd.Print(renderDetourTable(detours))

			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, workersFlagName, "p", viper.GetInt(workersKey), "number of prizes evaluated in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(workersFlagName), workersKey)
	cmd.Flags().BoolVar(&directed, directedReturnFlagName, viper.GetBool(directedReturnKey), "search the return leg instead of mirroring the outbound one")
	bindFlagToConfig(cmd.Flags().Lookup(directedReturnFlagName), directedReturnKey)

	return cmd
}

func renderDetourTable(detours []prize.Detour) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Prize", "Points", "From", "Cost", "Profit", "Route"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, d := range detours {
		table.Append([]string{
			d.Prize.At.String(),
			fmt.Sprintf("%d", d.Prize.Points),
			fmt.Sprintf("%s #%d", d.From, d.FromIndex),
			fmt.Sprintf("%d", d.Cost),
			fmt.Sprintf("%d", d.Profit),
			route(d),
		})
	}

	cost, points := prize.Total(detours)
	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(detours)),
		fmt.Sprintf("%d", points),
		"",
		fmt.Sprintf("%d", cost),
		fmt.Sprintf("%d", points-cost),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// route renders the outbound moves, followed by the return moves when they
// were searched. "-" marks an empty leg.
func route(d prize.Detour) string {
	leg := func(p astar.Path) string {
		if p.Len() == 0 {
			return "-"
		}
		return p.Moves()
	}
	if d.Inbound == nil {
		return leg(d.Outbound)
	}

	return leg(d.Outbound) + " / " + leg(*d.Inbound)
}
