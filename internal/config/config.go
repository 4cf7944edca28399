// Package config provides YAML-based world configuration loading and
// difficulty presets for the miner.
package config

import "fmt"

// MinerConfig contains all configuration for a mining run.
type MinerConfig struct {
	World      WorldConfig         `yaml:"world"`
	Generation GenerationConfig    `yaml:"generation"`
	Player     PlayerConfig        `yaml:"player"`
	Keys       map[string][]string `yaml:"keys" validate:"required,min=1,dive,keys,oneof=exit up down left right interact,endkeys,min=1,dive,required"`
}

// WorldConfig defines the world dimensions.
type WorldConfig struct {
	Width       int `yaml:"width" validate:"gte=1,lte=1000"`
	Height      int `yaml:"height" validate:"gtfield=SurfaceRows,lte=1000"`
	SurfaceRows int `yaml:"surface_rows" validate:"gte=3"`
}

// GenerationConfig defines the ground tile distribution.
// Chances are independent per cell; their sum must not exceed 1.
type GenerationConfig struct {
	TreasureChance float64 `yaml:"treasure_chance" validate:"gte=0,lte=1"`
	CopperChance   float64 `yaml:"copper_chance" validate:"gte=0,lte=1"`
}

// PlayerConfig defines the starting player.
type PlayerConfig struct {
	Fuel     uint `yaml:"fuel" validate:"gte=1"`
	MoveCost uint `yaml:"move_cost" validate:"gte=1"`
}

// WithSize returns a copy of the config with the world resized.
// Zero values keep the configured dimension.
func (c MinerConfig) WithSize(width, height int) MinerConfig {
	if width > 0 {
		c.World.Width = width
	}
	if height > 0 {
		c.World.Height = height
	}
	return c
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// FuelForPreset returns the starting fuel for a preset, or 0 when the
// preset keeps the configured value.
func FuelForPreset(preset DifficultyPreset) uint {
	switch preset {
	case DifficultyEasy:
		return 200
	case DifficultyNormal:
		return 100
	case DifficultyHard:
		return 60
	default:
		return 0
	}
}

// ApplyMinerPreset modifies the config based on a difficulty preset.
// The fixed preset leaves the config untouched.
func ApplyMinerPreset(cfg *MinerConfig, preset DifficultyPreset) {
	if fuel := FuelForPreset(preset); fuel > 0 {
		cfg.Player.Fuel = fuel
	}

	// Hard worlds are also poorer
	if preset == DifficultyHard {
		cfg.Generation.TreasureChance = cfg.Generation.TreasureChance / 2
	}
}
