package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clusterpop/internal/config"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"
	"github.com/vovakirdan/clusterpop/internal/storage"
)

var (
	flagReplayLast  bool
	flagReplaySteps bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Rebuild a stored game from its seed and moves",
	Long: `Replay a finished game stored in the scores database and print the
final board. The replayed score is checked against the stored one.

IDs are listed by 'clusterpop scores --games'.

Examples:
  clusterpop replay --last
  clusterpop replay 3f1c2a4e-5b6d-4e7f-8091-a2b3c4d5e6f7
  clusterpop replay --last --steps`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayLast, "last", false, "Replay the most recent game")
	replayCmd.Flags().BoolVar(&flagReplaySteps, "steps", false, "Print the board after every move")
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to the game config the game was played with")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !flagReplayLast {
		return errors.New("give a game ID or --last")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	rec, err := findRecord(store, args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadClusterPop(flagConfig)
	if err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("replaying", "id", rec.ID, "seed", rec.Seed, "moves", rec.MoveCount)

	return replayRecord(cmd.OutOrStdout(), rec, cfg.Scoring.ClearBonus, flagReplaySteps)
}

// findRecord loads the record named by args, or the latest one.
func findRecord(store *storage.Store, args []string) (*storage.GameRecord, error) {
	if len(args) > 0 {
		return store.GameByID(args[0])
	}

	recent, err := store.RecentGames(clusterpop.GameID, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, fmt.Errorf("no stored games: %w", storage.ErrNotFound)
	}
	return &recent[0], nil
}

// replayRecord rebuilds rec and writes the result to out.
// It fails if the moves diverge or the score does not match.
func replayRecord(out io.Writer, rec *storage.GameRecord, clearBonus int, steps bool) error {
	moves, err := engine.DecodeMoves(rec.Moves)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Game %s\n", rec.ID)
	fmt.Fprintf(out, "Seed %d, %d moves, played %s\n", rec.Seed, len(moves), rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(out)

	if steps {
		c := engine.NewController(rec.Seed, engine.WithClearBonus(clearBonus))
		board := c.Snapshot().Board
		fmt.Fprintln(out, "Start")
		fmt.Fprint(out, board.String())
		for i, m := range moves {
			res := c.HandleClick(m.Row, m.Col)
			board = c.Snapshot().Board
			fmt.Fprintf(out, "\nMove %d at %v: %s, removed %d, +%d\n", i+1, m, res.Outcome, res.Removed, res.Gained)
			fmt.Fprint(out, board.String())
		}
		fmt.Fprintln(out)
	}

	snap, err := engine.Replay(rec.Seed, moves, engine.WithClearBonus(clearBonus))
	if err != nil {
		return err
	}

	if !steps {
		fmt.Fprint(out, snap.Board.String())
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Score %d, %d cells left, %s\n", snap.Score, snap.Remaining, snap.Phase)

	if snap.Score != rec.Score {
		return fmt.Errorf("replayed score %d does not match stored score %d", snap.Score, rec.Score)
	}
	return nil
}
