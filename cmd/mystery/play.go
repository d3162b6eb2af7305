package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/games/mystery"
	"github.com/vovakirdan/mystery-maze/internal/platform/tui"
	"github.com/vovakirdan/mystery-maze/internal/registry"
)

var (
	flagConfig  string
	flagSize    string
	flagWidth   int
	flagHeight  int
	flagNoIntro bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start a maze straight away.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Continue (any key works)
  R            - New maze (after a win)
  B/Esc        - Back (after a win)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Size presets:
  small   - 13x7
  normal  - 21x11
  large   - 41x17
  huge    - 61x21
  fit     - Largest maze the terminal can show

Examples:
  mystery play
  mystery play --size fit
  mystery play --width 31 --height 15
  mystery play --no-intro --seed 42
  mystery play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func registerPlayFlags() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSize, "size", config.EnvOr(config.EnvSize, ""),
		"Size preset: small, normal, large, huge, fit")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width (overrides --size)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height (overrides --size)")
	playCmd.Flags().BoolVar(&flagNoIntro, "no-intro", false, "Skip the intro sequence")

	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagSize, "size", config.EnvOr(config.EnvSize, ""),
		"Size preset selected when the menu opens")
	menuCmd.Flags().BoolVar(&flagNoIntro, "no-intro", false, "Skip the intro sequence")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := sizePreset(flagSize)
	if (flagWidth > 0) != (flagHeight > 0) {
		fmt.Fprintln(os.Stderr, "Error: --width and --height must be given together")
		os.Exit(1)
	}

	// Set game options before creation
	mystery.SetConfigPath(flagConfig)
	mystery.SetSizePreset(preset)
	mystery.SetDimensions(flagWidth, flagHeight)
	mystery.SetSkipIntro(flagNoIntro)

	game, err := registry.Create(mystery.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	logger.Debug("starting maze",
		"size", preset, "width", flagWidth, "height", flagHeight,
		"seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	store := openStore()

	_, runErr := tui.Run(game, store, playerName(), cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	logFinalState(game)
}

// logFinalState writes the last maze state at debug level.
func logFinalState(game registry.Game) {
	g, ok := game.(*mystery.Game)
	if !ok {
		return
	}
	snap := g.Snapshot()
	logger.Debug("final state",
		"state", snap.State, "maze", fmt.Sprintf("%dx%d", snap.Width, snap.Height),
		"steps", snap.Steps, "bumps", snap.Bumps, "elapsed_ms", snap.ElapsedMs,
		"revealed", snap.Revealed)
	if snap.Board != "" {
		logger.Debug("board\n" + snap.Board)
	}
}
