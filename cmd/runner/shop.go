package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// upgrade is a purchasable item paid for with lifetime coins.
type upgrade struct {
	ID          string
	Title       string
	Description string
	Cost        int64
}

var upgrades = []upgrade{
	{
		ID:          runner.PurchaseDoubleScore,
		Title:       "Double Score",
		Description: "Doubles all score gains, permanently",
		Cost:        500,
	},
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "View and buy upgrades",
	Long: `View upgrades and buy them with collected coins.

Examples:
  runner shop
  runner shop buy double_score`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <upgrade>",
	Short: "Buy an upgrade",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

func runShop(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	coins, _ := store.Stat(runner.StatTotalCoins)
	owned, err := store.Purchases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving purchases: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shop - you have %d coins\n", coins)
	fmt.Println()
	for _, u := range upgrades {
		status := fmt.Sprintf("%d coins", u.Cost)
		if owned[u.ID] {
			status = "owned"
		}
		fmt.Printf("  %-14s %-10s %s\n", u.ID, status, u.Description)
	}
	fmt.Println()
	fmt.Println("Buy with 'runner shop buy <upgrade>'")
}

func runShopBuy(cmd *cobra.Command, args []string) {
	id := args[0]

	var item *upgrade
	for i := range upgrades {
		if upgrades[i].ID == id {
			item = &upgrades[i]
			break
		}
	}
	if item == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown upgrade %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner shop' to see available upgrades.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	owned, err := store.Purchases()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving purchases: %v\n", err)
		os.Exit(1)
	}
	if owned[item.ID] {
		fmt.Printf("You already own %s.\n", item.Title)
		return
	}

	coins, _ := store.Stat(runner.StatTotalCoins)
	if coins < item.Cost {
		fmt.Printf("Not enough coins: %s costs %d, you have %d.\n", item.Title, item.Cost, coins)
		os.Exit(1)
	}

	if _, err := store.UpdateStat(runner.StatTotalCoins, func(v int64) int64 { return v - item.Cost }); err != nil {
		fmt.Fprintf(os.Stderr, "Error charging coins: %v\n", err)
		os.Exit(1)
	}
	if err := store.Purchase(item.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording purchase: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bought %s for %d coins.\n", item.Title, item.Cost)
}
