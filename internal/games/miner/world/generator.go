package world

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidDimensions is returned when a world cannot be built at the requested size.
	ErrInvalidDimensions = errors.New("world: invalid dimensions")

	// ErrInvalidParams is returned when the tile distribution is not a valid probability split.
	ErrInvalidParams = errors.New("world: invalid generation parameters")
)

// MinSurfaceRows is the smallest open shaft left above the ground.
const MinSurfaceRows = 3

// GenParams configures world generation.
type GenParams struct {
	SurfaceRows    int     // Rows of Air at the top of the world (>= MinSurfaceRows)
	TreasureChance float64 // Probability a ground cell is Treasure
	CopperChance   float64 // Probability a ground cell is copper ore
}

// DefaultGenParams returns the stock distribution:
// 10% treasure, 40% copper, the rest regolith.
func DefaultGenParams() GenParams {
	return GenParams{
		SurfaceRows:    MinSurfaceRows,
		TreasureChance: 0.1,
		CopperChance:   0.4,
	}
}

// NewRand creates a deterministic PCG generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// EntropyRand creates a generator seeded from the runtime's entropy source.
func EntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Generate builds a w x h world: the top SurfaceRows rows are Air and every
// remaining cell is drawn from the distribution in p. A nil rng is replaced
// by an entropy-seeded one.
func Generate(w, h int, p GenParams, rng *rand.Rand) (*Grid, error) {
	if p.SurfaceRows < MinSurfaceRows {
		return nil, fmt.Errorf("%w: %d surface rows, need at least %d", ErrInvalidDimensions, p.SurfaceRows, MinSurfaceRows)
	}
	if w <= 0 || h <= p.SurfaceRows {
		return nil, fmt.Errorf("%w: %dx%d with %d surface rows", ErrInvalidDimensions, w, h, p.SurfaceRows)
	}
	if p.TreasureChance < 0 || p.CopperChance < 0 || p.TreasureChance+p.CopperChance > 1 {
		return nil, fmt.Errorf("%w: treasure %.2f, copper %.2f", ErrInvalidParams, p.TreasureChance, p.CopperChance)
	}
	if rng == nil {
		rng = EntropyRand()
	}

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}

	copperLimit := p.TreasureChance + p.CopperChance
	for y := p.SurfaceRows; y < h; y++ {
		for x := 0; x < w; x++ {
			v := rng.Float64()
			switch {
			case v < p.TreasureChance:
				g.Set(C(x, y), TileTreasure)
			case v < copperLimit:
				g.Set(C(x, y), Ore(GradeCopper))
			default:
				g.Set(C(x, y), TileRegolith)
			}
		}
	}

	return g, nil
}
