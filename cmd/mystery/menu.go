package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mystery-maze/internal/games/mystery"
	"github.com/vovakirdan/mystery-maze/internal/platform/tui"
	"github.com/vovakirdan/mystery-maze/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze size and play",
	Long: `Start in interactive menu mode.

Pick a maze size with the arrow keys or j/k and press Enter to play.
Press B or Esc after a win to return to the menu; Tab opens the
best-times board.

The intro plays before the first maze only.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected size
  Tab          - Best times
  Q/Esc        - Quit

Examples:
  mystery menu
  mystery menu --fps 30
  mystery menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	preset := sizePreset(flagSize)
	player := playerName()
	firstGame := true

	mystery.SetConfigPath(flagConfig)
	mystery.SetSkipIntro(flagNoIntro)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		preset = menuResult.Preset
		mystery.SetSizePreset(preset)
		mystery.SetDimensions(0, 0)

		game, err := registry.Create(mystery.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		// Fresh seed for each maze after the first
		if !firstGame {
			cfg.Seed = cfg.NextSeed()
		}
		firstGame = false
		logger.Debug("starting maze", "size", preset, "seed", cfg.Seed)

		backToMenu, err := tui.Run(game, store, player, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		logFinalState(game)

		// The intro plays once per program
		mystery.SetSkipIntro(true)

		if !backToMenu {
			return
		}
	}
}
