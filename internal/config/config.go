// Package config loads Break-In match settings from YAML.
package config

import (
	"errors"
	"fmt"
)

// BreakinConfig is the full match configuration. It is read once at match
// start; changes take effect on the next match.
type BreakinConfig struct {
	Match MatchConfig `yaml:"match"`
	Audio AudioConfig `yaml:"audio"`
}

// MatchConfig contains gameplay rules.
type MatchConfig struct {
	Lives              int     `yaml:"lives"`                // Extra balls before the bricks win
	SpawnShapeTime     float64 `yaml:"spawn_shape_time"`     // Seconds between shape promotions
	ComboMax           int     `yaml:"combo_max"`            // Same-color breaks per bonus drop (0 = off)
	SpecialBrickChance float64 `yaml:"special_brick_chance"` // Probability a new shape carries a special
	SpeedUp            bool    `yaml:"speed_up"`             // Raise game speed every minute
	AIAutoplace        bool    `yaml:"ai_autoplace"`         // Let the AI place shapes for the brick side
}

// AudioConfig contains sound settings forwarded with sound events.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
}

// Validate reports the first invalid field.
func (c BreakinConfig) Validate() error {
	m := c.Match
	switch {
	case m.Lives < 0:
		return fmt.Errorf("match.lives must be >= 0, got %d", m.Lives)
	case m.SpawnShapeTime <= 0:
		return fmt.Errorf("match.spawn_shape_time must be > 0, got %g", m.SpawnShapeTime)
	case m.ComboMax < 0:
		return fmt.Errorf("match.combo_max must be >= 0, got %d", m.ComboMax)
	case m.SpecialBrickChance < 0 || m.SpecialBrickChance > 1:
		return fmt.Errorf("match.special_brick_chance must be in [0, 1], got %g", m.SpecialBrickChance)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume must be in [0, 1], got %g", c.Audio.MasterVolume)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for preset names outside the known set.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset converts a flag value into a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}
