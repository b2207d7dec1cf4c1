package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "breakin.yaml"

// LoadBreakin loads the match configuration.
// Search order: customPath -> ~/.breakin/configs/breakin.yaml -> ./configs/breakin.yaml -> embedded default
func LoadBreakin(customPath string) (BreakinConfig, error) {
	// Unset keys keep their default values.
	cfg := DefaultBreakinConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultBreakinConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultBreakinConfig()
	}

	if err := yaml.Unmarshal(defaultBreakinYAML, &cfg); err != nil {
		return DefaultBreakinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakin", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg BreakinConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyBreakinPreset modifies the config based on a difficulty preset.
// Presets tune the paddle side's margin against the brick side.
func ApplyBreakinPreset(cfg *BreakinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Match.Lives = 5
		cfg.Match.SpawnShapeTime = 10
		cfg.Match.SpecialBrickChance = 0.6
	case DifficultyNormal:
		cfg.Match.Lives = 3
		cfg.Match.SpawnShapeTime = 8
		cfg.Match.SpecialBrickChance = 0.5
	case DifficultyHard:
		cfg.Match.Lives = 1
		cfg.Match.SpawnShapeTime = 6
		cfg.Match.SpecialBrickChance = 0.4
	}
}
