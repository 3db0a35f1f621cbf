// runner is an endless-runner game played in the terminal.
//
// Usage:
//
//	runner play              - Start a run
//	runner scores            - Show the leaderboard
//	runner stats             - Show lifetime stats and achievements
//	runner shop              - View and buy upgrades
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set save database path (default: ~/.runner/saves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump and slide in your terminal",
	Long: `Endless Runner is a terminal game: dodge obstacles, grab coins and
power-ups, and chase the leaderboard.

Available commands:
  play     - Start a run
  scores   - View the leaderboard
  stats    - View lifetime stats and achievements
  shop     - View and buy upgrades with collected coins
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner scores
  runner serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/saves.db", "Path to save database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(serveCmd)
}
