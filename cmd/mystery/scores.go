package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mystery-maze/internal/config"
	"github.com/vovakirdan/mystery-maze/internal/games/mystery"
	"github.com/vovakirdan/mystery-maze/internal/registry"
	"github.com/vovakirdan/mystery-maze/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
	flagAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show best times",
	Long: `Display the ten best times for a maze size.

The size is a preset name (small, normal, large, huge) or WIDTHxHEIGHT.
Without a size, a summary of every size played so far is shown.

Examples:
  mystery scores
  mystery scores small
  mystery scores 31x15
  mystery scores small --all
  mystery scores --recent 5
  mystery scores large --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func registerScoresFlags() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs of any size")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs (for the given size, or all)")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every run of the given size instead of the top ten")
}

// parseSizeArg accepts a preset name or WIDTHxHEIGHT.
func parseSizeArg(arg string) (w, h int, err error) {
	if preset, perr := config.ParseSizePreset(arg); perr == nil {
		if w, h, ok := preset.Dimensions(); ok {
			return w, h, nil
		}
		return 0, 0, fmt.Errorf("size %q depends on the terminal; use WIDTHxHEIGHT", arg)
	}

	if _, serr := fmt.Sscanf(strings.ToLower(arg), "%dx%d", &w, &h); serr != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q (want a preset name or WIDTHxHEIGHT)", arg)
	}
	return w, h, nil
}

func runScores(_ *cobra.Command, args []string) {
	var w, h int
	if len(args) == 1 {
		var err error
		if w, h, err = parseSizeArg(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if flagAll && w == 0 {
		fmt.Fprintln(os.Stderr, "Error: --all needs a size")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearRuns(store, w, h)
	case flagRecent > 0:
		err = printRecent(store, flagRecent)
	case flagAll:
		err = printAllRuns(store, w, h)
	case w > 0:
		err = printBestTimes(store, w, h, 10)
	default:
		err = printSummary(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
}

func printBestTimes(store *storage.Store, w, h, limit int) error {
	runs, err := store.BestTimes(w, h, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Times - %s\n", sizeLabel(w, h))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mystery play --width %d --height %d' to set the first time!\n", w, h)
		return nil
	}

	printRuns(runs, true)

	stats, err := store.GetRunStats(w, h)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %ss  Average: %ss  Runs: %d\n",
			seconds(stats.Best), seconds(stats.Average), stats.Runs)
	}
	return nil
}

func printAllRuns(store *storage.Store, w, h int) error {
	runs, err := store.AllRuns(w, h)
	if err != nil {
		return err
	}

	fmt.Printf("All Runs - %s\n", sizeLabel(w, h))
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	printRuns(runs, true)
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	printRuns(runs, false)
	return nil
}

func printSummary(store *storage.Store) error {
	sizes, err := store.PlayedSizes()
	if err != nil {
		return err
	}

	fmt.Printf("%s - Runs by Size\n", registry.Title(mystery.ID))
	fmt.Println()

	if len(sizes) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mystery play' to set the first time!")
		return nil
	}

	fmt.Printf("  %-16s  %5s  %8s  %8s  %s\n", "Size", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %5s  %8s  %8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, sz := range sizes {
		stats, err := store.GetRunStats(sz.Width, sz.Height)
		if err != nil {
			return err
		}
		fmt.Printf("  %-16s  %5d  %8s  %8s  %s\n",
			sizeLabel(sz.Width, sz.Height), stats.Runs,
			seconds(stats.Best), seconds(stats.Average),
			stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func clearRuns(store *storage.Store, w, h int) error {
	if err := store.ClearRuns(w, h); err != nil {
		return err
	}
	if w > 0 {
		fmt.Printf("Cleared runs for %s.\n", sizeLabel(w, h))
	} else {
		fmt.Println("Cleared all runs.")
	}
	return nil
}

// printRuns prints a ranked table; unranked tables include the size.
func printRuns(runs []storage.Run, ranked bool) {
	if ranked {
		fmt.Printf("  %-4s  %8s  %5s  %5s  %-12s  %s\n", "Rank", "Seconds", "Steps", "Bumps", "Player", "Date")
		fmt.Printf("  %-4s  %8s  %5s  %5s  %-12s  %s\n", "----", "-------", "-----", "-----", "------", "----")
	} else {
		fmt.Printf("  %-7s  %8s  %5s  %5s  %-12s  %s\n", "Size", "Seconds", "Steps", "Bumps", "Player", "Date")
		fmt.Printf("  %-7s  %8s  %5s  %5s  %-12s  %s\n", "----", "-------", "-----", "-----", "------", "----")
	}

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		date := r.CreatedAt.Local().Format("2006-01-02 15:04")
		if ranked {
			fmt.Printf("  %-4d  %8s  %5d  %5d  %-12s  %s\n", i+1, seconds(r.Elapsed), r.Steps, r.Bumps, player, date)
		} else {
			size := fmt.Sprintf("%dx%d", r.Width, r.Height)
			fmt.Printf("  %-7s  %8s  %5d  %5d  %-12s  %s\n", size, seconds(r.Elapsed), r.Steps, r.Bumps, player, date)
		}
	}
}

// sizeLabel names a size by its preset when it has one.
func sizeLabel(w, h int) string {
	if preset, ok := config.PresetFor(w, h); ok {
		return preset.Label()
	}
	return fmt.Sprintf("%dx%d", w, h)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
