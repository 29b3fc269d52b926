// Package config provides YAML-based game configuration loading and
// difficulty presets for tapball.
package config

// TapBallConfig contains all configuration for the Tap the Ball game.
type TapBallConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Session    SessionConfig    `yaml:"session"`
	Ball       BallConfig       `yaml:"ball"`
	Particles  ParticleConfig   `yaml:"particles"`
	PowerUp    PowerUpConfig    `yaml:"powerup"`
	Variants   VariantConfig    `yaml:"variants"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the size of the logical play area in canvas units.
// Hosts scale it to their surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines the countdown and the logical timer periods.
type SessionConfig struct {
	DurationSecs        int `yaml:"duration_secs"`
	MotionIntervalMS    int `yaml:"motion_interval_ms"`
	ParticleIntervalMS  int `yaml:"particle_interval_ms"`
	CountdownIntervalMS int `yaml:"countdown_interval_ms"`
}

// BallConfig defines the ball and its bounce physics.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	StartVX        float64 `yaml:"start_vx"`
	StartVY        float64 `yaml:"start_vy"`
	StartColor     string  `yaml:"start_color"`
	Damping        float64 `yaml:"damping"`         // Multiplier applied to the reflected component
	Gravity        float64 `yaml:"gravity"`         // Added to vertical velocity every motion tick
	NudgeChance    int     `yaml:"nudge_chance"`    // Percent chance per tick of a random push
	NudgeMagnitude float64 `yaml:"nudge_magnitude"` // Max push per axis
}

// ParticleConfig defines the burst spawned on every ball hit.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	Speed      float64 `yaml:"speed"` // Velocity components are in [-speed/2, speed/2)
	Life       int     `yaml:"life"`  // Ticks a particle lives
	Radius     float64 `yaml:"radius"`
}

// PowerUpConfig defines the two-phase power-up cycle.
type PowerUpConfig struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	VisibleMS       int     `yaml:"visible_ms"`
	HitRadius       float64 `yaml:"hit_radius"`
	Bonus           int     `yaml:"bonus"`
}

// VariantConfig holds the parameters used only by the jitter and teleport variants.
type VariantConfig struct {
	JitterStep         int `yaml:"jitter_step"`          // Per-axis offset range [-step, step)
	TeleportIntervalMS int `yaml:"teleport_interval_ms"` // How often the ball jumps
}

// DifficultyConfig scales ball motion per difficulty level.
type DifficultyConfig struct {
	Default string                 `yaml:"default"`
	Levels  map[string]LevelConfig `yaml:"levels"`
}

// LevelConfig is the scaling applied for one difficulty level.
type LevelConfig struct {
	SpeedScale float64 `yaml:"speed_scale"` // Multiplies starting velocity
	NudgeScale float64 `yaml:"nudge_scale"` // Multiplies nudge magnitude
}
