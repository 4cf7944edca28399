package miner

import (
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

func newTestGame(t *testing.T, p Preset, seed uint64) *Game {
	t.Helper()
	g := NewWithConfig(p, config.DefaultMinerConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		if !registry.Exists(p.ID) {
			t.Errorf("preset %q not registered", p.ID)
		}
	}
}

func TestPresetSizes(t *testing.T) {
	tests := []struct {
		preset Preset
		w, h   int
	}{
		{Presets[0], 40, 20},
		{Presets[1], 10, 5},
		{Presets[2], 40, 60},
	}

	for _, tc := range tests {
		t.Run(tc.preset.ID, func(t *testing.T) {
			snap := newTestGame(t, tc.preset, 1).Snapshot()
			if snap.Width != tc.w || snap.Height != tc.h {
				t.Errorf("world = %dx%d, expected %dx%d", snap.Width, snap.Height, tc.w, tc.h)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, Presets[0], 12345)
	g2 := newTestGame(t, Presets[0], 12345)

	if g1.Fingerprint() != g2.Fingerprint() {
		t.Fatal("same seed should generate the same world")
	}

	moves := []core.CommandState{
		core.Press(core.CommandDown),
		core.Press(core.CommandDown, core.CommandRight),
		core.Press(core.CommandRight),
		core.Press(),
		core.Press(core.CommandLeft),
	}
	for _, m := range moves {
		g1.Step(m, 1.0/30)
		g2.Step(m, 1.0/30)
	}

	if g1.Dump() != g2.Dump() {
		t.Errorf("dumps diverged:\n%s\nvs\n%s", g1.Dump(), g2.Dump())
	}
	if g1.State() != g2.State() {
		t.Errorf("state diverged: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestRandomSeedRecorded(t *testing.T) {
	g := newTestGame(t, Presets[1], 0)
	if g.Seed() == 0 {
		t.Error("Seed() should report the chosen seed")
	}
}

func TestStepReportsState(t *testing.T) {
	g := newTestGame(t, Presets[0], 7)

	res := g.Step(core.Press(core.CommandDown), 0.1)
	if res.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", res.Tick)
	}
	if res.State.Fuel != 90 {
		t.Errorf("Fuel = %d, expected 90", res.State.Fuel)
	}
	if res.State.GameOver {
		t.Error("game should still be running")
	}

	res = g.Step(core.Press(core.CommandExit), 0.1)
	if !res.State.GameOver || res.State.Reason != "player_quit" {
		t.Errorf("State = %+v, expected game over by player_quit", res.State)
	}
}

func TestRunsOutOfFuel(t *testing.T) {
	cfg := config.DefaultMinerConfig()
	cfg.Player.Fuel = 30
	g := NewWithConfig(Presets[0], cfg)
	if err := g.Reset(core.RuntimeConfig{Seed: 3}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	var res core.StepResult
	for i := 0; i < 3; i++ {
		res = g.Step(core.Press(core.CommandRight), 0)
	}
	if !res.State.GameOver || res.State.Reason != "out_of_fuel" {
		t.Errorf("State = %+v, expected out_of_fuel", res.State)
	}
	if g.Status().Reason != world.ReasonOutOfFuel {
		t.Errorf("Status().Reason = %v, expected out_of_fuel", g.Status().Reason)
	}
}

func TestResetInvalidConfig(t *testing.T) {
	cfg := config.DefaultMinerConfig()
	cfg.Generation.TreasureChance = 0.9
	cfg.Generation.CopperChance = 0.9

	g := NewWithConfig(Presets[0], cfg)
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("expected error for invalid distribution")
	}
}

func TestResetCustomBindings(t *testing.T) {
	cfg := config.DefaultMinerConfig()
	cfg.Keys = map[string][]string{"exit": {"x"}, "down": {"j"}}

	g := NewWithConfig(Presets[0], cfg)
	if err := g.Reset(core.RuntimeConfig{Seed: 1}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if cmd, ok := g.Bindings().Lookup("j"); !ok || cmd != core.CommandDown {
		t.Errorf("Lookup(j) = %v, %v; expected down", cmd, ok)
	}
	if _, ok := g.Bindings().Lookup("s"); ok {
		t.Error("default binding s should be replaced")
	}
}

func TestRenderHUDAndPlayer(t *testing.T) {
	g := newTestGame(t, Presets[1], 5)
	screen := core.NewScreen(60, 10)

	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Fuel: 100") {
		t.Errorf("HUD = %q, expected score and fuel", hud)
	}
	if want := " Motherload (Small) | Score: 0"; !strings.HasPrefix(hud, want) {
		t.Errorf("HUD = %q, expected prefix %q", hud, want)
	}
	if !strings.Contains(screen.String(), "M") {
		t.Error("player should be drawn")
	}
	if screen.GetCell(0, 1).Rune != '─' {
		t.Error("expected HUD separator on row 1")
	}
}

func TestRenderScrollsToPlayer(t *testing.T) {
	g := newTestGame(t, Presets[2], 9)
	screen := core.NewScreen(20, 12)

	for i := 0; i < 9; i++ {
		g.Step(core.Press(core.CommandDown), 0)
	}
	g.Render(screen)

	found := false
	for y := hudHeight; y < screen.Height(); y++ {
		if strings.ContainsRune(screen.Row(y), 'M') {
			found = true
		}
	}
	if !found {
		t.Errorf("player at depth 9 should stay in view:\n%s", screen.String())
	}
}

func TestRenderOverlayOnTermination(t *testing.T) {
	g := newTestGame(t, Presets[0], 5)
	g.Step(core.Press(core.CommandExit), 0)

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Final Score: 0") {
		t.Errorf("expected final score overlay:\n%s", screen.String())
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, Presets[0], 5)
	// Must not panic
	g.Render(core.NewScreen(3, 1))
	g.Render(core.NewScreen(0, 0))
}

func TestCamera(t *testing.T) {
	tests := []struct {
		pos, size, view int
		origin, offset  int
	}{
		{0, 10, 20, 0, 5},
		{0, 40, 20, 0, 0},
		{30, 40, 20, 20, 0},
		{39, 40, 20, 20, 0},
		{15, 40, 20, 5, 0},
	}

	for _, tc := range tests {
		origin, offset := camera(tc.pos, tc.size, tc.view)
		if origin != tc.origin || offset != tc.offset {
			t.Errorf("camera(%d, %d, %d) = (%d, %d), expected (%d, %d)",
				tc.pos, tc.size, tc.view, origin, offset, tc.origin, tc.offset)
		}
	}
}

func TestUnresetGame(t *testing.T) {
	g := New(Presets[0])
	if g.State() != (core.GameState{}) {
		t.Error("unreset game should report zero state")
	}
	g.Step(core.Press(core.CommandDown), 0)
	g.Render(core.NewScreen(10, 5))
}

func TestSetDifficulty(t *testing.T) {
	prev := difficultyPreset
	defer SetDifficultyPreset(prev)

	SetDifficultyPreset(config.DifficultyEasy)
	g := New(Presets[0])
	if g.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, expected package default easy", g.Difficulty())
	}

	g.SetDifficulty(config.DifficultyHard)
	if g.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q, expected hard", g.Difficulty())
	}
}

func TestResetLoadsConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := t.TempDir() + "/miner.yaml"
	if err := os.WriteFile(path, []byte("player: {fuel: 500}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := configPath
	SetConfigPath(path)
	defer SetConfigPath(prev)

	g := New(Presets[1])
	g.SetDifficulty(config.DifficultyFixed)
	if err := g.Reset(core.RuntimeConfig{Seed: 1}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.State().Fuel != 500 {
		t.Errorf("Fuel = %d, expected 500 from config file", g.State().Fuel)
	}

	g.SetDifficulty(config.DifficultyHard)
	if err := g.Reset(core.RuntimeConfig{Seed: 1}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if g.State().Fuel != 60 {
		t.Errorf("Fuel = %d, expected 60 on hard", g.State().Fuel)
	}
}

func TestCountCoversWorld(t *testing.T) {
	g := newTestGame(t, Presets[1], 4)
	snap := g.Snapshot()

	total := 0
	for _, tile := range []world.Tile{world.TileAir, world.TileRegolith, world.TileTreasure, world.Ore(world.GradeCopper)} {
		total += g.Count(tile)
	}
	if total != snap.Width*snap.Height {
		t.Errorf("tile counts sum to %d, expected %d", total, snap.Width*snap.Height)
	}
	if air := g.Count(world.TileAir); air < snap.Width*3 {
		t.Errorf("Count(Air) = %d, expected at least the %d surface cells", air, snap.Width*3)
	}

	if n := New(Presets[0]).Count(world.TileAir); n != 0 {
		t.Errorf("Count() before Reset = %d, expected 0", n)
	}
}
