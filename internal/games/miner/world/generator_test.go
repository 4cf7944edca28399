package world_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-miner/internal/games/miner/world"
)

func TestGenerateSurfaceIsAir(t *testing.T) {
	params := world.DefaultGenParams()
	g, err := world.Generate(12, 8, params, world.NewRand(7))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := g.Get(world.C(x, y))
			if y < params.SurfaceRows {
				if tile != world.TileAir {
					t.Errorf("surface cell (%d,%d) = %v, expected air", x, y, tile)
				}
				continue
			}
			switch tile {
			case world.TileTreasure, world.Ore(world.GradeCopper), world.TileRegolith:
			default:
				t.Errorf("ground cell (%d,%d) = %v, expected treasure, copper or regolith", x, y, tile)
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	params := world.DefaultGenParams()

	g1, err := world.Generate(30, 20, params, world.NewRand(12345))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, err := world.Generate(30, 20, params, world.NewRand(12345))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !slices.Equal(g1.Tiles(), g2.Tiles()) {
		t.Error("same seed should produce identical worlds")
	}
	if world.Fingerprint(g1) != world.Fingerprint(g2) {
		t.Error("same seed should produce identical fingerprints")
	}

	g3, err := world.Generate(30, 20, params, world.NewRand(54321))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if slices.Equal(g1.Tiles(), g3.Tiles()) {
		t.Error("different seeds should produce different worlds")
	}
}

func TestGenerateDistribution(t *testing.T) {
	g, err := world.Generate(100, 103, world.DefaultGenParams(), world.NewRand(1))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	ground := float64(100 * 100)
	treasure := float64(g.Count(world.TileTreasure)) / ground
	copper := float64(g.Count(world.Ore(world.GradeCopper))) / ground
	regolith := float64(g.Count(world.TileRegolith)) / ground

	// 10k samples; allow a generous margin
	if treasure < 0.07 || treasure > 0.13 {
		t.Errorf("treasure ratio %.3f, expected about 0.1", treasure)
	}
	if copper < 0.36 || copper > 0.44 {
		t.Errorf("copper ratio %.3f, expected about 0.4", copper)
	}
	if regolith < 0.46 || regolith > 0.54 {
		t.Errorf("regolith ratio %.3f, expected about 0.5", regolith)
	}
}

func TestGenerateExtremes(t *testing.T) {
	params := world.DefaultGenParams()
	params.TreasureChance = 0
	params.CopperChance = 0

	g, err := world.Generate(5, 5, params, world.NewRand(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n := g.Count(world.TileRegolith); n != 10 {
		t.Errorf("expected 10 regolith cells with no treasure or copper, got %d", n)
	}

	params.TreasureChance = 1
	g, err = world.Generate(5, 5, params, world.NewRand(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if n := g.Count(world.TileTreasure); n != 10 {
		t.Errorf("expected 10 treasure cells, got %d", n)
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		params world.GenParams
		err    error
	}{
		{"height equals surface", 10, 3, world.DefaultGenParams(), world.ErrInvalidDimensions},
		{"height below surface", 10, 2, world.DefaultGenParams(), world.ErrInvalidDimensions},
		{"zero width", 0, 10, world.DefaultGenParams(), world.ErrInvalidDimensions},
		{"shallow surface", 10, 10, world.GenParams{SurfaceRows: 2, CopperChance: 0.4}, world.ErrInvalidDimensions},
		{"probabilities over one", 10, 10, world.GenParams{SurfaceRows: 3, TreasureChance: 0.6, CopperChance: 0.6}, world.ErrInvalidParams},
		{"negative probability", 10, 10, world.GenParams{SurfaceRows: 3, TreasureChance: -0.1}, world.ErrInvalidParams},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := world.Generate(tc.w, tc.h, tc.params, world.NewRand(1))
			if !errors.Is(err, tc.err) {
				t.Errorf("Generate error = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestGenerateNilRand(t *testing.T) {
	g, err := world.Generate(4, 4, world.DefaultGenParams(), nil)
	if err != nil {
		t.Fatalf("Generate with entropy rand failed: %v", err)
	}
	if g.Count(world.TileAir) < 12 {
		t.Errorf("surface rows should be air, got %d air cells", g.Count(world.TileAir))
	}
}
