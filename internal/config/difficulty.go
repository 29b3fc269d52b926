package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all presets in selector order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset converts a CLI or YAML value to a preset.
// "normal" is accepted as an alias for medium. An empty string yields medium.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium", "normal":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Level returns the scaling for a preset.
// Missing presets scale by 1 so a partial config never freezes the ball.
func (d DifficultyConfig) Level(preset DifficultyPreset) LevelConfig {
	lvl, ok := d.Levels[string(preset)]
	if !ok {
		return LevelConfig{SpeedScale: 1, NudgeScale: 1}
	}
	if lvl.SpeedScale <= 0 {
		lvl.SpeedScale = 1
	}
	if lvl.NudgeScale < 0 {
		lvl.NudgeScale = 0
	}
	return lvl
}

// DefaultPreset returns the configured starting difficulty, falling back to medium.
func (d DifficultyConfig) DefaultPreset() DifficultyPreset {
	p, err := ParsePreset(d.Default)
	if err != nil {
		return DifficultyMedium
	}
	return p
}
