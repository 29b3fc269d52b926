package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapball/internal/registry"
	"github.com/vovakirdan/tapball/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the best sessions and the persisted high score for a variant
(default: tapball).

Examples:
  tapball scores
  tapball scores tapball_jitter --limit 20
  tapball scores tapball_teleport --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and high score of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "tapball"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tapball list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tapball play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Sessions: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
