package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flood-arcade/floodit/internal/registry"
	"github.com/flood-arcade/floodit/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded results for a variant",
	Long: `Display the top 10 results for the specified variant,
plus aggregate stats. Defaults to the classic variant.

Examples:
  floodit scores
  floodit scores floodit_zen`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "floodit"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'floodit list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'floodit play %s' to record the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Result", "Moves", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "------", "-----", "-----", "----")

	for i, r := range results {
		outcome := "loss"
		if r.Won {
			outcome = "win"
		}
		board := fmt.Sprintf("%dx%d/%d", r.BoardSize, r.BoardSize, r.Colors)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6s  %-5d  %-8s  %s\n", i+1, r.Score, outcome, r.Moves, board, dateStr)
	}

	fmt.Println()
	stats, err := store.GameStats(gameID)
	if err == nil && stats.Played > 0 {
		fmt.Printf("Played: %d   Wins: %d   Best score: %d", stats.Played, stats.Wins, stats.BestScore)
		if stats.BestMoves > 0 {
			fmt.Printf("   Fewest moves in a win: %d", stats.BestMoves)
		}
		fmt.Println()
	}
}
