package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clusterpop/internal/games/clusterpop"
	"github.com/vovakirdan/clusterpop/internal/registry"
	"github.com/vovakirdan/clusterpop/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresGames bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and statistics for a game (default: clusterpop).

Examples:
  clusterpop scores
  clusterpop scores --limit 20
  clusterpop scores --all
  clusterpop scores --games     # recent games with their replay IDs
  clusterpop scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresGames, "games", false, "Show recent stored games instead of scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := clusterpop.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'clusterpop list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Scores for %s cleared.\n", game.Title())
		return nil
	}

	if flagScoresGames {
		return printRecentGames(cmd, store, gameID, game.Title())
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'clusterpop play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRecentGames lists stored game records with the IDs `replay` accepts.
func printRecentGames(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	games, err := store.RecentGames(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Recent Games - %s\n", title)
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-8s  %-5s  %-7s  %s\n", "ID", "Score", "Moves", "Result", "Date")
	for _, g := range games {
		result := "stuck"
		if g.Cleared {
			result = "cleared"
		}
		fmt.Fprintf(out, "  %-36s  %-8d  %-5d  %-7s  %s\n",
			g.ID, g.Score, g.MoveCount, result, g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
