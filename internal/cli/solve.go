package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/moves"
	"github.com/SeamusWaldron/permcube/internal/render"
	"github.com/SeamusWaldron/permcube/internal/solver"
	"github.com/SeamusWaldron/permcube/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble...>",
	Short: "Search for a face-turn solution to a scramble",
	Long: `Scramble a solved cube and search for a sequence of face turns that
solves it again.

The search is an exhaustive iterative-deepening search: it tries every
sequence of length 0, 1, 2, ... up to but not including --max-depth, so
the first solution found is also a shortest one. Cost grows roughly 13x per
extra move; depths above 7 take a long time.

The scramble may only use face turns (U F R D B L with 2 or ').

Results are saved to the solve history unless --no-save is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

var (
	solveMaxDepth int
	solveNoSave   bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveMaxDepth, "max-depth", "d", 0, "Exclusive search depth bound (default from config)")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the result in the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	scramble := strings.Join(args, " ")
	catalog := moves.Default()

	depth := solveMaxDepth
	if depth == 0 {
		depth = appConfig.MaxDepth
	}
	if depth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", depth)
	}

	names, err := catalog.Validate(scramble)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !moves.IsFaceTurn(name) {
			return fmt.Errorf("scramble must use face turns only, got %q", name)
		}
	}

	state, err := catalog.Scramble(scramble)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Scramble: "+scramble))
	fmt.Fprint(out, render.Net(state, colorEnabled()))
	fmt.Fprintln(out)

	res, err := solver.New(
		solver.WithMaxDepth(depth),
		solver.WithLogger(logger),
		solver.WithCatalog(catalog),
	).Solve(cmd.Context(), state)
	if err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}

	if res.Found {
		fmt.Fprintf(out, "Solution: %s\n", moveStyle.Render(moves.FormatSequence(res.Moves)))
		fmt.Fprintf(out, "Length:   %d\n", len(res.Moves))
	} else {
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("No solution shorter than %d moves", depth)))
	}
	fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("Searched %d nodes in %s", res.Nodes, res.Duration.Round(time.Millisecond))))

	if solveNoSave {
		return nil
	}
	return saveSolution(cmd, scramble, state, depth, res)
}

func saveSolution(cmd *cobra.Command, scramble string, state cube.State, depth int, res solver.Result) error {
	logger := loggerFromContext(cmd.Context())

	path, err := getDBPath()
	if err != nil {
		return err
	}

	db, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer db.Close()

	saved, err := storage.NewSolutionRepository(db).Create(storage.Solution{
		Scramble:   scramble,
		State:      state.String(),
		Moves:      moves.FormatSequence(res.Moves),
		Found:      res.Found,
		MaxDepth:   depth,
		Depth:      res.Depth,
		Nodes:      res.Nodes,
		DurationMs: res.Duration.Milliseconds(),
	})
	if err != nil {
		return err
	}

	logger.Debug("saved solution", "id", saved.SolutionID, "db", path)
	return nil
}
