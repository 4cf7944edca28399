package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresRun   string
	flagScoresClear bool
)

// errRunNotFound is returned by printRun for an unknown run ID.
var errRunNotFound = errors.New("run not found")

var scoresCmd = &cobra.Command{
	Use:   "scores <preset>",
	Short: "Show high scores for a world",
	Long: `Display the top 10 runs for the specified world preset.

A run's seed can be passed back with --seed to dig the same world again.

Examples:
  miner scores miner
  miner scores miner_small --all
  miner scores --run 6f1c2d3e-...
  miner scores miner --clear`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagScoresRun != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every run instead of the top 10")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the world")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresRun != "" {
		if err := printRun(os.Stdout, store, flagScoresRun); err != nil {
			store.Close()
			exitf("%v", err)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'miner list' to see available worlds.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			exitf("%v", err)
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		store.Close()
		exitf("creating world: %v", err)
	}

	if err := printScores(os.Stdout, store, gameID, game.Title(), flagScoresAll); err != nil {
		store.Close()
		exitf("%v", err)
	}
}

// printScores writes the score table for a world, the top 10 unless all is set.
func printScores(w io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", title)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'miner play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-11s  %-7s  %-20s  %s\n", "Rank", "Score", "Ended", "Ticks", "Seed", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-11s  %-7s  %-20s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-11s  %-7d  %-20d  %s\n",
			i+1, entry.Score, entry.Reason, entry.Ticks, entry.Seed, dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f  Out of fuel: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.OutOfFuel)
	}
	return nil
}

// printRun writes one stored run and the command that replays its world.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: %s", errRunNotFound, runID)
	}

	fmt.Fprintf(w, "Run:    %s\n", entry.RunID)
	fmt.Fprintf(w, "World:  %s\n", entry.GameID)
	fmt.Fprintf(w, "Score:  %d\n", entry.Score)
	fmt.Fprintf(w, "Ended:  %s after %d ticks\n", entry.Reason, entry.Ticks)
	fmt.Fprintf(w, "Date:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Replay: miner play %s --seed %d\n", entry.GameID, entry.Seed)
	return nil
}
