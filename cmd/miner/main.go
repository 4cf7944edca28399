// miner is a terminal mining game: dig down through the ground, collect
// ore and treasure, and surface before the fuel runs out.
//
// Usage:
//
//	miner list                 - List world presets
//	miner play [preset]        - Play a world (default "miner")
//	miner menu                 - Pick worlds interactively
//	miner scores <preset>      - Show high scores for a preset
//	miner generate             - Print a generated world and its fingerprint
//	miner script <frames...>   - Run a scripted session and print every frame
//	miner serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set world seed (0 = random)
//	--db <path>           - Set database path (default: ~/.miner/scores.db)
//	--log-file <path>     - Set log file (default: ~/.miner/miner.log)
//	--log-level <level>   - Set log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner"
	"github.com/vovakirdan/tui-miner/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     uint64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Shared by the commands that build worlds
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "Miner - dig for treasure in your terminal",
	Long: `Miner is a terminal mining game. Drive the miner down through the
ground, mine copper ore and treasure, and keep an eye on the fuel gauge:
every tile moved costs fuel and the run ends when the tank is empty.

Available commands:
  list      - Show all world presets
  play      - Play a world directly
  menu      - Interactive world picker
  scores    - View high scores
  generate  - Print a generated world
  script    - Replay a list of key frames
  serve     - Start SSH server for remote play

Examples:
  miner play
  miner play miner_small --difficulty hard
  miner generate --seed 42
  miner script d s*3 e
  miner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "World seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.miner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(serveCmd)
}

// addWorldFlags registers the config and difficulty flags on cmd.
func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom miner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyWorldFlags hands the config path and difficulty to the miner package.
func applyWorldFlags() (config.DifficultyPreset, error) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return "", err
	}
	miner.SetConfigPath(flagConfig)
	miner.SetDifficultyPreset(difficulty)
	return difficulty, nil
}

// openLogger opens the log file named by the global flags.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger, closer, _ = logging.Open("", "info")
	}
	return logger, closer
}

// runtimeConfig builds a runtime config sized to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// findPreset looks up a registered world preset by ID.
func findPreset(id string) (miner.Preset, bool) {
	for _, p := range miner.Presets {
		if p.ID == id {
			return p, true
		}
	}
	return miner.Preset{}, false
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
