package config

import (
	_ "embed"
)

//go:embed defaults/tapball.yaml
var defaultTapBallYAML []byte

// DefaultTapBallConfig returns the default Tap the Ball configuration.
// It mirrors defaults/tapball.yaml and is used when the embedded YAML cannot be parsed.
func DefaultTapBallConfig() TapBallConfig {
	return TapBallConfig{
		Canvas: CanvasConfig{
			Width:  1080,
			Height: 1920,
		},
		Session: SessionConfig{
			DurationSecs:        30,
			MotionIntervalMS:    16,
			ParticleIntervalMS:  16,
			CountdownIntervalMS: 1000,
		},
		Ball: BallConfig{
			Radius:         60,
			StartX:         60,
			StartY:         60,
			StartVX:        2,
			StartVY:        2,
			StartColor:     "#ff0000",
			Damping:        0.95,
			Gravity:        0.1,
			NudgeChance:    5,
			NudgeMagnitude: 1,
		},
		Particles: ParticleConfig{
			BurstCount: 16,
			Speed:      8,
			Life:       60,
			Radius:     5,
		},
		PowerUp: PowerUpConfig{
			SpawnIntervalMS: 10000,
			VisibleMS:       5000,
			HitRadius:       30,
			Bonus:           10,
		},
		Variants: VariantConfig{
			JitterStep:         10,
			TeleportIntervalMS: 500,
		},
		Difficulty: DifficultyConfig{
			Default: string(DifficultyMedium),
			Levels: map[string]LevelConfig{
				string(DifficultyEasy):   {SpeedScale: 0.75, NudgeScale: 0.5},
				string(DifficultyMedium): {SpeedScale: 1.0, NudgeScale: 1.0},
				string(DifficultyHard):   {SpeedScale: 1.5, NudgeScale: 2.0},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tapball":
		return defaultTapBallYAML
	default:
		return nil
	}
}
