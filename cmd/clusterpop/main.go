// clusterpop is a terminal cluster-popping puzzle: click groups of two or
// more same-colored bubbles to clear them from an 11x11 board.
//
// Usage:
//
//	clusterpop list              - List available games
//	clusterpop play [game]       - Play a game (default: clusterpop)
//	clusterpop menu              - Start menu to pick games interactively
//	clusterpop serve             - Start SSH server for remote play
//	clusterpop scores [game]     - Show high scores and statistics
//	clusterpop replay [id]       - Replay a stored game
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>  - Write in-game logs to a file
//	-v, --verbose      - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/clusterpop/internal/games/clusterpop"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clusterpop",
	Short: "Cluster Pop - pop same-colored bubbles in your terminal",
	Long: `Cluster Pop is a terminal puzzle. Click a group of two or more
same-colored bubbles to pop it; the score grows by the square of the
group size. Bubbles fall down and columns slide left to fill the gaps.
The game ends when no group is left.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Rebuild a stored game from its seed and moves

Examples:
  clusterpop play
  clusterpop play --seed 42
  clusterpop menu
  clusterpop serve --ssh :2222
  clusterpop scores
  clusterpop replay --last`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", os.Getenv("ARCADE_LOG"), "Write in-game logs to this file (default $ARCADE_LOG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
