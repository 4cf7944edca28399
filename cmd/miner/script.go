package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/engine"
	"github.com/vovakirdan/tui-miner/internal/games/miner"
)

var (
	flagScriptPreset   string
	flagScriptInterval time.Duration
)

var scriptCmd = &cobra.Command{
	Use:   "script <frames...>",
	Short: "Run a scripted session",
	Long: `Play a world from a list of frames and print the world after each one.

Each argument is one frame: a key ("d"), keys held together ("a+s"),
an empty frame ("."), with an optional "*N" suffix to repeat it.
The run stops when the world terminates or the frames run out.

Examples:
  miner script d s*3 e
  miner script --seed 7 --preset miner_small s s d d
  miner script --interval 200ms s*10`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScript,
}

func init() {
	addWorldFlags(scriptCmd)
	scriptCmd.Flags().StringVar(&flagScriptPreset, "preset", "miner_small", "World preset to play")
	scriptCmd.Flags().DurationVar(&flagScriptInterval, "interval", 0, "Delay between frames")
}

func runScript(_ *cobra.Command, args []string) {
	src, err := engine.ParseScript(args)
	if err != nil {
		exitf("%v", err)
	}
	p, ok := findPreset(flagScriptPreset)
	if !ok {
		exitf("unknown world %q", flagScriptPreset)
	}
	if _, err := applyWorldFlags(); err != nil {
		exitf("%v", err)
	}

	game := miner.New(p)
	if err := game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}); err != nil {
		exitf("%v", err)
	}

	logger, closer := openLogger()
	defer closer.Close()
	logger = logger.With("mode", "script", "seed", game.Seed())

	renderer := engine.NewTextRenderer(os.Stdout)
	if err := renderer.Render(game); err != nil {
		exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := engine.NewLoop(game, renderer, logger, engine.WithFrameInterval(flagScriptInterval))
	result, err := loop.Run(ctx, src)
	if err != nil && ctx.Err() == nil {
		closer.Close()
		exitf("%v", err)
	}

	status := "running"
	if result.State.GameOver {
		status = result.State.Reason
	}
	fmt.Printf("seed: %d  ticks: %d  status: %s  score: %d  fuel: %d\n",
		game.Seed(), result.Tick, status, result.State.Score, result.State.Fuel)
}
