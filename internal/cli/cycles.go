package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/moves"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles <moves...>",
	Short: "Show the cycle decomposition and period of a sequence",
	Long: `Decompose the permutation produced by a move sequence into disjoint
cycles of facelet positions and report its period: how many times the
sequence must be repeated to return to solved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCycles,
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	sequence := strings.Join(args, " ")
	state, err := moves.Default().Scramble(sequence)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cycles := state.Cycles()
	fmt.Fprintf(out, "Sequence: %s\n", sequence)
	fmt.Fprintf(out, "Cycles:   %d\n", len(cycles))
	for _, c := range cycles {
		fmt.Fprintf(out, "  (%d) %v\n", len(c), c)
	}
	fmt.Fprintf(out, "Period:   %d\n", state.Period())

	return nil
}
