package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clusterpop/internal/platform/tui"
	"github.com/vovakirdan/clusterpop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores and recent games
  Q            - Quit

Examples:
  clusterpop menu
  clusterpop menu --fps 60
  clusterpop menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := useGameConfig(flagConfig); err != nil {
		return err
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

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		// Fresh board for each game unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, tui.WithLogger(logger), tui.WithBackToMenu())
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
