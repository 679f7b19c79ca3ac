package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/moves"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the supported move names",
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

func runMoves(cmd *cobra.Command, args []string) error {
	catalog := moves.Default()
	out := cmd.OutOrStdout()

	for _, base := range moves.BaseNames() {
		names := []string{base, base + "2", base + "'"}
		if strings.HasSuffix(base, "w") {
			alias := strings.ToLower(base[:1])
			names = append(names, alias, alias+"2", alias+"'")
		}
		fmt.Fprintf(out, "%-3s %s\n", base, strings.Join(names, " "))
	}
	fmt.Fprintf(out, "\n%d moves\n", catalog.Len())

	return nil
}
