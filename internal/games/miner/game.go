// Package miner implements the mining game on top of the world simulation.
package miner

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

// hudHeight is the number of screen rows above the map.
const hudHeight = 2

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the YAML config file used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty for games created afterwards.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Preset describes a registered world size.
type Preset struct {
	ID     string
	Title  string
	Width  int // 0 keeps the configured width
	Height int // 0 keeps the configured height
}

// Presets are the world sizes offered by the registry.
var Presets = []Preset{
	{ID: "miner", Title: "Motherload"},
	{ID: "miner_small", Title: "Motherload (Small)", Width: 10, Height: 5},
	{ID: "miner_deep", Title: "Motherload (Deep)", Width: 40, Height: 60},
}

func init() {
	for _, p := range Presets {
		p := p
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
}

// Game implements registry.Game for a mining run.
type Game struct {
	preset     Preset
	override   *config.MinerConfig
	difficulty config.DifficultyPreset

	cfg      config.MinerConfig
	bindings *core.Bindings
	sim      *world.Sim
	seed     uint64
}

// New creates a game for a preset. The world is built by Reset.
func New(p Preset) *Game {
	return &Game{
		preset:     p,
		difficulty: difficultyPreset,
		bindings:   core.DefaultBindings(),
	}
}

// NewWithConfig creates a game that uses cfg instead of loading one from disk.
// The difficulty preset is not applied to cfg.
func NewWithConfig(p Preset, cfg config.MinerConfig) *Game {
	g := New(p)
	g.override = &cfg
	return g
}

// SetDifficulty overrides the package difficulty for this game.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.difficulty = preset
}

// Difficulty returns the difficulty applied on Reset.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// Reset loads the configuration and generates a fresh world.
// Seed 0 picks a random seed; Seed reports the one used.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	bindings, err := core.BindingsFromMap(cfg.Keys)
	if err != nil {
		return fmt.Errorf("miner: key bindings: %w", err)
	}

	g.seed = rc.Seed
	for g.seed == 0 {
		g.seed = rand.Uint64()
	}

	params := world.GenParams{
		SurfaceRows:    cfg.World.SurfaceRows,
		TreasureChance: cfg.Generation.TreasureChance,
		CopperChance:   cfg.Generation.CopperChance,
	}
	grid, err := world.Generate(cfg.World.Width, cfg.World.Height, params, world.NewRand(g.seed))
	if err != nil {
		return fmt.Errorf("miner: generate world: %w", err)
	}

	g.cfg = cfg
	g.bindings = bindings
	g.sim = world.NewSim(grid, world.NewPlayer(cfg.Player.Fuel), world.Rules{MoveCost: cfg.Player.MoveCost})
	return nil
}

// loadConfig resolves the config for this preset.
func (g *Game) loadConfig() (config.MinerConfig, error) {
	var cfg config.MinerConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadMiner(configPath)
		if err != nil {
			return cfg, fmt.Errorf("miner: %w", err)
		}
		cfg = loaded
		config.ApplyMinerPreset(&cfg, g.difficulty)
	}

	cfg = cfg.WithSize(g.preset.Width, g.preset.Height)
	if err := config.ValidateMiner(&cfg); err != nil {
		return cfg, fmt.Errorf("miner: %s: %w", g.preset.ID, err)
	}
	return cfg, nil
}

// Step advances the world by one tick.
func (g *Game) Step(cmds core.CommandState, dt float64) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}
	g.sim.Step(cmds, dt)
	return core.StepResult{
		State: g.State(),
		Tick:  g.sim.Tick(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	p := g.sim.Player()
	st := g.sim.Status()
	return core.GameState{
		Score:    int(p.Score),
		Fuel:     int(p.Fuel),
		GameOver: st.Terminated(),
		Reason:   st.Reason.String(),
	}
}

// Bindings returns the active key bindings.
func (g *Game) Bindings() *core.Bindings {
	return g.bindings
}

// Snapshot returns a detached copy of the world.
func (g *Game) Snapshot() world.Snapshot {
	if g.sim == nil {
		return world.Snapshot{}
	}
	return g.sim.Snapshot()
}

// Dump returns the world as text.
func (g *Game) Dump() string {
	return world.Dump(g.Snapshot())
}

// Seed returns the seed of the current world.
func (g *Game) Seed() uint64 {
	return g.seed
}

// Fingerprint returns the digest of the current world's tiles.
func (g *Game) Fingerprint() string {
	if g.sim == nil {
		return ""
	}
	return world.Fingerprint(g.sim.Grid())
}

// Count returns how many cells of the current world hold t.
func (g *Game) Count(t world.Tile) int {
	if g.sim == nil {
		return 0
	}
	return g.sim.Grid().Count(t)
}

// Status returns the simulation status.
func (g *Game) Status() world.Status {
	if g.sim == nil {
		return world.Status{}
	}
	return g.sim.Status()
}
