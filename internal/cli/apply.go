package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/render"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a move sequence to a solved cube and print the result.

Moves use standard notation: U F R D B L, slices M E S, rotations x y z and
wide turns Uw (or u), each optionally followed by 2 or '.

By default an unknown move aborts the whole sequence. With --lenient unknown
moves are skipped with a warning instead.

Examples:
  permcube apply "R U R' U'"
  permcube apply M2 E2 S2
  permcube apply --lenient "R foo U"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var (
	applyLenient bool
	applyRaw     bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyLenient, "lenient", false, "Skip unknown moves instead of failing")
	applyCmd.Flags().BoolVar(&applyRaw, "raw", false, "Also print the raw permutation")
}

func runApply(cmd *cobra.Command, args []string) error {
	sequence := strings.Join(args, " ")
	catalog := moves.Default()

	var state cube.State
	if applyLenient {
		state = catalog.ApplySequenceLenient(cube.Solved, sequence, loggerFromContext(cmd.Context()))
	} else {
		s, err := catalog.Scramble(sequence)
		if err != nil {
			return err
		}
		state = s
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Net(state, colorEnabled()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Solved: %v\n", state.IsSolved())
	fmt.Fprintf(out, "Period: %d\n", state.Period())
	if applyRaw {
		fmt.Fprintf(out, "State:  %s\n", state.String())
	}

	return nil
}
