// serpentium is a classic grid snake game for the terminal.
//
// Usage:
//
//	serpentium                 - Home screen (same as menu)
//	serpentium menu            - Home screen: pick a speed, view scores
//	serpentium play            - Play straight away
//	serpentium scores          - Show high scores
//	serpentium config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.serpentium/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination (default: ~/.serpentium/serpentium.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpentium/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpentium",
	Short: "Serpentium - the snake game for your terminal",
	Long: `Serpentium is a terminal snake game. Steer the snake, eat the food,
and avoid the walls and your own tail.

Available commands:
  menu     - Home screen (default)
  play     - Start a game directly
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  serpentium
  serpentium play --difficulty fast
  serpentium scores --difficulty slow
  serpentium --config ./my-board.yaml`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogPath(), "Path to log file")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
