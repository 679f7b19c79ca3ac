package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/cube"
	"github.com/SeamusWaldron/permcube/internal/render"
	"github.com/SeamusWaldron/permcube/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solver runs",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <solution-id>",
	Short: "Show a saved solver run with its scrambled cube",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <solution-id>",
	Short: "Delete a saved solver run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}

func openHistory() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return db, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	solutions, err := storage.NewSolutionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solutions) == 0 {
		fmt.Fprintln(out, "No solves recorded yet. Run: permcube solve <scramble>")
		return nil
	}

	for _, s := range solutions {
		fmt.Fprintf(out, "%s  %s\n", statusStyle.Render(s.CreatedAt.Local().Format(time.DateTime)), s.SolutionID)
		fmt.Fprintf(out, "  scramble: %s\n", s.Scramble)
		fmt.Fprintf(out, "  solution: %s\n", solutionText(s))
		fmt.Fprintf(out, "  nodes: %d  time: %dms\n", s.Nodes, s.DurationMs)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSolutionRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	state, err := cube.ParseState(s.State)
	if err != nil {
		return fmt.Errorf("solution %s has a corrupt state: %w", s.SolutionID, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Scramble: "+s.Scramble))
	fmt.Fprint(out, render.Net(state, colorEnabled()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Solution: %s\n", solutionText(*s))
	fmt.Fprintf(out, "Period:   %d\n", state.Period())
	fmt.Fprintf(out, "Searched: %d nodes in %dms (max depth %d)\n", s.Nodes, s.DurationMs, s.MaxDepth)
	fmt.Fprintln(out, statusStyle.Render("Saved "+s.CreatedAt.Local().Format(time.DateTime)))

	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSolutionRepository(db).Delete(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}

func solutionText(s storage.Solution) string {
	switch {
	case !s.Found:
		return errorStyle.Render(fmt.Sprintf("not found (depth < %d)", s.MaxDepth))
	case s.Moves == "":
		return "(already solved)"
	default:
		return s.Moves
	}
}
