package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMiner loads miner configuration. Keys missing from a file keep
// their default values.
// Search order: customPath -> ~/.miner/configs/miner.yaml -> ./configs/miner.yaml -> embedded default
func LoadMiner(customPath string) (MinerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMiner(data)
		if err != nil {
			return MinerConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("miner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMiner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "miner.yaml")); err == nil {
		if cfg, err := parseMiner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMiner(defaultMinerYAML)
	if err != nil {
		return DefaultMinerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMiner decodes YAML over the defaults and validates the result.
func parseMiner(data []byte) (MinerConfig, error) {
	cfg := DefaultMinerConfig()
	// A keys section replaces the default bindings rather than merging
	cfg.Keys = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinerConfig{}, fmt.Errorf("parse: %w", err)
	}
	if cfg.Keys == nil {
		cfg.Keys = DefaultKeys()
	}
	if err := ValidateMiner(&cfg); err != nil {
		return MinerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".miner", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
