package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/games/miner"
	"github.com/vovakirdan/tui-miner/internal/platform/tui"
	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a world picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a world, left/right to change the
difficulty and Enter to dig. After a run ends you return to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Start a run
  Tab            - Scoreboard
  Q              - Quit

Examples:
  miner menu
  miner menu --fps 20
  miner menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addWorldFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	difficulty, err := applyWorldFlags()
	if err != nil {
		exitf("%v", err)
	}

	logger, closer := openLogger()
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
			continue
		}
		if g, ok := game.(*miner.Game); ok {
			g.SetDifficulty(difficulty)
		}

		if _, err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("run failed", "game", menuResult.GameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
