package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clusterpop/internal/config"
	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop"
	"github.com/vovakirdan/clusterpop/internal/platform/tui"
	"github.com/vovakirdan/clusterpop/internal/registry"
	"github.com/vovakirdan/clusterpop/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: clusterpop).

Controls:
  Mouse click       - Pop the cluster under the pointer
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Pop the cluster under the cursor
  ?                 - Move the cursor to the largest cluster
  P                 - Pause
  R                 - New game (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Configuration is read from --config, then ~/.arcade/configs/clusterpop.{yaml,toml},
then ./configs/clusterpop.{yaml,toml}, then the built-in defaults.

Examples:
  clusterpop play
  clusterpop play --seed 42
  clusterpop play --config ./my-clusterpop.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
}

// terminalConfig builds a runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// useGameConfig checks the --config file and hands it to the game.
// A file that is missing, unparsable or out of range is an error here, since
// the game itself falls back to defaults.
func useGameConfig(path string) error {
	if _, err := config.LoadClusterPop(path); err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	clusterpop.SetConfigPath(path)
	return nil
}

// openStore opens the score database. Games still run without it.
func openStore(ctx context.Context) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		loggerFromContext(ctx).Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := clusterpop.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'clusterpop list' to see available games", gameID)
	}

	if err := useGameConfig(flagConfig); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	ctx := cmd.Context()
	logger, closeLog, err := gameLogger(ctx, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(ctx)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
