package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime stats and achievements",
	Long: `Display lifetime totals and achievement progress.

Examples:
  runner stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best, _ := store.Stat(runner.StatBestScore)
	coins, _ := store.Stat(runner.StatTotalCoins)
	jumps, _ := store.Stat(runner.StatTotalJumps)
	games, _ := store.Stat(runner.StatTotalGames)

	fmt.Println("Lifetime Stats")
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Best score", best)
	fmt.Printf("  %-12s %d\n", "Runs", games)
	fmt.Printf("  %-12s %d\n", "Coins", coins)
	fmt.Printf("  %-12s %d\n", "Jumps", jumps)

	unlocked, err := store.Achievements()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving achievements: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Achievements")
	fmt.Println()
	for _, a := range runner.Catalog() {
		mark := "[ ]"
		if unlocked[a.ID] {
			mark = "[x]"
		}
		fmt.Printf("  %s %s\n", mark, a.Title)
	}
}
