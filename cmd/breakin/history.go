package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/platform/tui"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
	flagHistoryClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show match history",
	Long: `Display the most recent finished matches and the win totals.

Examples:
  breakin history
  breakin history --limit 50
  breakin history -i        # browse in a table
  breakin history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse the history in a table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryInteractive {
		rt := runtimeConfig()
		if err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Finish a 'breakin play' or 'breakin sim' match to start the history!")
		return
	}

	fmt.Printf("  %-16s  %-7s  %8s  %-7s  %-5s  %6s  %4s  %6s\n",
		"Date", "Winner", "Time", "Preset", "Mode", "Bricks", "Lost", "Placed")
	fmt.Printf("  %-16s  %-7s  %8s  %-7s  %-5s  %6s  %4s  %6s\n",
		"----", "------", "----", "------", "----", "------", "----", "------")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-7s  %7.1fs  %-7s  %-5s  %6d  %4d  %6d\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Winner, m.Duration, m.Preset, m.Mode,
			m.BricksBroken, m.BallsLost, m.Placements)
	}

	totals, err := store.Totals()
	if err == nil {
		fmt.Println()
		fmt.Println(tui.Summary(*totals))
	}
}
