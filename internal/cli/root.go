// Package cli implements the command-line interface for permcube.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/permcube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	noColor    bool

	// appConfig is loaded before any command runs, from appConfigPath.
	appConfig     = config.Default()
	appConfigPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "permcube",
	Short: "3x3 cube permutation toolkit",
	Long: `permcube models a 3x3 cube as a permutation of its 54 facelets.

Apply move sequences, inspect their cycle structure and period, and search
for short face-turn solutions with a bounded iterative-deepening solver.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.permcube/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.permcube/permcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored cube output")
}

// setup loads the config file and attaches a logger to the command context.
func setup(cmd *cobra.Command, args []string) error {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(os.Stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	appConfig = cfg
	appConfigPath = path
	logger.Debug("loaded config", "path", path, "max_depth", cfg.MaxDepth)

	return nil
}

// colorEnabled reports whether cube output should be colored.
func colorEnabled() bool {
	return appConfig.Color && !noColor
}

// getDBPath returns the database path from flag, config, or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if appConfig.DBPath != "" {
		return appConfig.DBPath, nil
	}
	return config.DefaultDBPath()
}
