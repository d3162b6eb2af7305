// mystery is a fog-of-war maze game for the terminal.
//
// Usage:
//
//	mystery play             - Play a maze
//	mystery menu             - Pick a maze size interactively
//	mystery scores [size]    - Show best times
//	mystery serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.mystery/scores.db)
//	--debug         - Log chosen sizes, seeds and final states
//
// Flag defaults can be overridden with MYSTERY_DB, MYSTERY_SIZE and
// MYSTERY_SSH_ADDR, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/core"
	"github.com/vovakirdan/mystery-maze/internal/registry"
	"github.com/vovakirdan/mystery-maze/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mystery",
})

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Warn("could not load .env file", "error", err)
	}
	registerFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mystery",
	Short: "Mystery Maze - find the exit of a maze you cannot see",
	Long: `Mystery Maze drops you at the entrance of a hidden maze.
Every step reveals the tile you tried to enter: a wall stops you,
a path lets you through. Find the exit as fast as you can.

Available commands:
  play     - Play a maze directly
  menu     - Pick a maze size, play, and browse best times
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  mystery play
  mystery play --size large --no-intro
  mystery menu
  mystery scores small
  mystery serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		logger.Debug("registered games", "ids", registry.IDs())
	},
}

// registerFlags binds flags once the environment has been loaded, so that
// .env values can provide defaults.
func registerFlags() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db",
		config.EnvOr(config.EnvDB, "~/.mystery/scores.db"), "Path to runs database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	registerPlayFlags()
	registerScoresFlags()
	registerServeFlags()

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from the local terminal size.
// The seed is always resolved here so that debug logs can reproduce a run.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		FixedSeed: flagSeed != 0,
	}
	if !cfg.FixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the runs database. A failure is only a warning; the
// game runs without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName is the name recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// sizePreset parses a size flag and exits on error.
func sizePreset(name string) config.SizePreset {
	preset, err := config.ParseSizePreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset
}
