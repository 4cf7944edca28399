package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-miner/internal/core"
)

//go:embed defaults/miner.yaml
var defaultMinerYAML []byte

// DefaultKeys returns the stock key bindings by command name.
func DefaultKeys() map[string][]string {
	return core.DefaultKeyMap()
}

// DefaultMinerConfig returns the default miner configuration.
func DefaultMinerConfig() MinerConfig {
	return MinerConfig{
		World: WorldConfig{
			Width:       40,
			Height:      20,
			SurfaceRows: 3,
		},
		Generation: GenerationConfig{
			TreasureChance: 0.1,
			CopperChance:   0.4,
		},
		Player: PlayerConfig{
			Fuel:     100,
			MoveCost: 10,
		},
		Keys: DefaultKeys(),
	}
}
