package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treblecross/internal/platform/tui"
	"github.com/vovakirdan/treblecross/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsTUI   bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show match results",
	Long: `Show recorded match results.

Prints the most recent matches and a win/draw summary. Use --tui
for the interactive table view.`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "How many matches to show")
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Interactive table instead of plain output")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResultsTUI {
		rc := runtimeConfig()
		if _, err := tui.RunResults(store, rc.ScreenW, rc.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
			os.Exit(1)
		}
		return
	}

	matches, err := store.RecentMatches(flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading matches: %v\n", err)
		os.Exit(1)
	}
	summary, err := store.Summarize("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading summary: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet. Play a game first!")
		return
	}

	fmt.Printf("%-20s %-5s %-6s %-10s %-6s\n", "When", "Mode", "Board", "Result", "Moves")
	fmt.Println("--------------------------------------------------")
	for _, m := range matches {
		fmt.Printf("%-20s %-5s %-6d %-10s %-6d\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Mode, m.BoardSize, describeResult(m.Result), m.Moves)
	}

	fmt.Printf("\nTotal: %d", summary.Total)
	for side, wins := range summary.BySide {
		fmt.Printf("  |  %s wins: %d", side, wins)
	}
	fmt.Printf("  |  draws: %d\n", summary.Draws)
}

func describeResult(result string) string {
	switch result {
	case storage.ResultDraw:
		return "draw"
	case storage.ResultAbandoned:
		return "abandoned"
	default:
		return result + " wins"
	}
}
