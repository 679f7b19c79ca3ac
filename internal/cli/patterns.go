package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/analysis"
	"github.com/SeamusWaldron/permcube/internal/storage"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show move sequences that recur across saved solutions",
	RunE:  runPatterns,
}

var (
	patternsMin   int
	patternsMax   int
	patternsTop   int
	patternsLimit int
)

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().IntVar(&patternsMin, "min", 2, "Shortest pattern length")
	patternsCmd.Flags().IntVar(&patternsMax, "max", 4, "Longest pattern length")
	patternsCmd.Flags().IntVar(&patternsTop, "top", 5, "Patterns to show per length")
	patternsCmd.Flags().IntVarP(&patternsLimit, "limit", "n", 100, "Number of recent solutions to scan")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}

	db, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer db.Close()

	solutions, err := storage.NewSolutionRepository(db).List(patternsLimit)
	if err != nil {
		return err
	}

	var seqs []analysis.Sequence
	for _, s := range solutions {
		if s.Found && s.Moves != "" {
			seqs = append(seqs, analysis.Sequence{ID: s.SolutionID, Moves: strings.Fields(s.Moves)})
		}
	}
	loggerFromContext(cmd.Context()).Debug("mining patterns", "solutions", len(seqs))

	out := cmd.OutOrStdout()
	report := analysis.MineNGrams(seqs, patternsMin, patternsMax, patternsTop)
	if len(report.TopNGrams) == 0 {
		fmt.Fprintln(out, "No repeated patterns found.")
		return nil
	}

	for _, n := range report.Sizes() {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Length %d", n)))
		for _, g := range report.TopNGrams[n] {
			fmt.Fprintf(out, "  %-20s x%d\n", moveStyle.Render(g.String()), g.Count)
		}
	}
	return nil
}
