package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/platform/tui"
	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a world",
	Long: `Start a mining run on the given world preset (default "miner").

Controls:
  W/A/S/D, arrows  - Move and dig
  Space            - Interact
  E/Esc/Q          - Surface and quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy    - 200 fuel
  normal  - 100 fuel
  hard    - 60 fuel, half the treasure
  fixed   - Use the config as-is

Examples:
  miner play
  miner play miner_deep --difficulty easy
  miner play --seed 42
  miner play --config ./my-miner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addWorldFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "miner"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'miner list' to see available worlds.")
		os.Exit(1)
	}
	if _, err := applyWorldFlags(); err != nil {
		exitf("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating world: %v", err)
	}

	logger, closer := openLogger()
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil // The game still works without storage
	}

	result, runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closer.Close()
		exitf("running game: %v", runErr)
	}

	switch result.State.Reason {
	case "out_of_fuel":
		fmt.Println("You ran out of fuel!")
	case "player_quit":
		fmt.Println("You surfaced.")
	}
	fmt.Printf("Final score: %d\n", result.State.Score)
}
