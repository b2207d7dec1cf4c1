package config

import (
	_ "embed"
)

//go:embed defaults/breakin.yaml
var defaultBreakinYAML []byte

// DefaultBreakinConfig returns the built-in Break-In configuration.
func DefaultBreakinConfig() BreakinConfig {
	return BreakinConfig{
		Match: MatchConfig{
			Lives:              3,
			SpawnShapeTime:     8,
			ComboMax:           4,
			SpecialBrickChance: 0.5,
			SpeedUp:            false,
			AIAutoplace:        true,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakinYAML
}
