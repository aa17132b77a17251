package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display the most recent matches and totals for a profile.

Examples:
  pong history
  pong history --limit 50
  pong history --profile alice
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the profile's match history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("History cleared for %s\n", flagProfile)
		return
	}

	matches, err := store.RecentMatches(flagProfile, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match History - %s\n", flagProfile)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-7s  %-8s  %s\n", "Date", "Level", "Score", "Winner", "Time")
	fmt.Printf("  %-16s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for _, m := range matches {
		dateStr := m.CreatedAt.Local().Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d:%d", m.ComputerScore, m.PlayerScore)
		fmt.Printf("  %-16s  %-6s  %-7s  %-8s  %ds\n", dateStr, m.Difficulty, score, m.Winner, m.Duration)
	}

	stats, err := store.Stats(flagProfile)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
		stats.Played, stats.Wins, stats.Losses, stats.WinRate()*100)
}
