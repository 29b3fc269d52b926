package tapball

import (
	"slices"
	"time"

	"github.com/vovakirdan/tapball/internal/config"
	"github.com/vovakirdan/tapball/internal/core"
)

// Motion selects how the ball moves between taps.
type Motion int

const (
	MotionBounce   Motion = iota // Velocity, gravity, damped wall bounces
	MotionJitter                 // Random per-tick offset, clamped to the canvas
	MotionTeleport               // Jumps to a random spot on a fixed period
)

// String returns the variant name.
func (m Motion) String() string {
	switch m {
	case MotionBounce:
		return "bounce"
	case MotionJitter:
		return "jitter"
	case MotionTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// Difficulty scales ball speed and nudges for a session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the display name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Preset returns the config key for this difficulty.
func (d Difficulty) Preset() config.DifficultyPreset {
	switch d {
	case DifficultyEasy:
		return config.DifficultyEasy
	case DifficultyHard:
		return config.DifficultyHard
	default:
		return config.DifficultyMedium
	}
}

// Prev returns the next easier difficulty, stopping at the first preset.
func (d Difficulty) Prev() Difficulty {
	return d.step(-1)
}

// Next returns the next harder difficulty, stopping at the last preset.
func (d Difficulty) Next() Difficulty {
	return d.step(1)
}

// step moves along the selector order of config.Presets.
func (d Difficulty) step(delta int) Difficulty {
	presets := config.Presets()
	i := slices.Index(presets, d.Preset())
	i = max(0, min(len(presets)-1, i+delta))
	return DifficultyFromPreset(presets[i])
}

// DifficultyFromPreset converts a config preset. Unknown presets map to Medium.
func DifficultyFromPreset(p config.DifficultyPreset) Difficulty {
	switch p {
	case config.DifficultyEasy:
		return DifficultyEasy
	case config.DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Params is the resolved, immutable tuning of one game instance.
type Params struct {
	Motion Motion
	Canvas core.Vec2

	Duration          int // Countdown budget in ticks of CountdownInterval
	MotionInterval    time.Duration
	ParticleInterval  time.Duration
	CountdownInterval time.Duration
	SpawnInterval     time.Duration
	VisibleDuration   time.Duration
	TeleportInterval  time.Duration

	Radius     float64
	StartPos   core.Vec2
	StartVel   core.Vec2
	StartColor core.RGB
	Damping    float64
	Gravity    float64

	NudgeChance    int
	NudgeMagnitude float64

	BurstCount     int
	ParticleSpeed  float64
	ParticleLife   int
	ParticleRadius float64

	PowerUpRadius float64
	PowerUpBonus  int

	JitterStep int

	// Feature switches derived from the motion variant
	Particles bool
	PowerUps  bool
	AutoStart bool

	Difficulty config.DifficultyConfig
}

// NewParams resolves a loaded config for one motion variant.
func NewParams(cfg config.TapBallConfig, motion Motion) Params {
	color, ok := core.ParseHex(cfg.Ball.StartColor)
	if !ok {
		color = core.Red
	}

	bounce := motion == MotionBounce
	return Params{
		Motion: motion,
		Canvas: core.V(cfg.Canvas.Width, cfg.Canvas.Height),

		Duration:          cfg.Session.DurationSecs,
		MotionInterval:    ms(cfg.Session.MotionIntervalMS),
		ParticleInterval:  ms(cfg.Session.ParticleIntervalMS),
		CountdownInterval: ms(cfg.Session.CountdownIntervalMS),
		SpawnInterval:     ms(cfg.PowerUp.SpawnIntervalMS),
		VisibleDuration:   ms(cfg.PowerUp.VisibleMS),
		TeleportInterval:  ms(cfg.Variants.TeleportIntervalMS),

		Radius:     cfg.Ball.Radius,
		StartPos:   core.V(cfg.Ball.StartX, cfg.Ball.StartY),
		StartVel:   core.V(cfg.Ball.StartVX, cfg.Ball.StartVY),
		StartColor: color,
		Damping:    cfg.Ball.Damping,
		Gravity:    cfg.Ball.Gravity,

		NudgeChance:    cfg.Ball.NudgeChance,
		NudgeMagnitude: cfg.Ball.NudgeMagnitude,

		BurstCount:     cfg.Particles.BurstCount,
		ParticleSpeed:  cfg.Particles.Speed,
		ParticleLife:   cfg.Particles.Life,
		ParticleRadius: cfg.Particles.Radius,

		PowerUpRadius: cfg.PowerUp.HitRadius,
		PowerUpBonus:  cfg.PowerUp.Bonus,

		JitterStep: cfg.Variants.JitterStep,

		Particles: bounce,
		PowerUps:  bounce,
		AutoStart: !bounce,

		Difficulty: cfg.Difficulty,
	}
}

// Level returns the scaling for a difficulty.
func (p Params) Level(d Difficulty) config.LevelConfig {
	return p.Difficulty.Level(d.Preset())
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
