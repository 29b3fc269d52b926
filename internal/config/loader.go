package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTapBall loads Tap the Ball configuration.
// Search order: customPath -> ~/.tapball/configs/tapball.yaml -> ./configs/tapball.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadTapBall(customPath string) (TapBallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTapBallConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTapBall(data)
		if err != nil {
			return DefaultTapBallConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tapball.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTapBall(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tapball.yaml")); err == nil {
		if cfg, err := parseTapBall(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTapBall(GetDefaultYAML("tapball"))
	if err != nil {
		return DefaultTapBallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTapBall decodes YAML over the hardcoded defaults and validates the result.
func parseTapBall(data []byte) (TapBallConfig, error) {
	cfg := DefaultTapBallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values that would stall or break the simulation.
func (c TapBallConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	for name, ms := range map[string]int{
		"session.motion_interval_ms":    c.Session.MotionIntervalMS,
		"session.particle_interval_ms":  c.Session.ParticleIntervalMS,
		"session.countdown_interval_ms": c.Session.CountdownIntervalMS,
		"powerup.spawn_interval_ms":     c.PowerUp.SpawnIntervalMS,
		"powerup.visible_ms":            c.PowerUp.VisibleMS,
		"variants.teleport_interval_ms": c.Variants.TeleportIntervalMS,
	} {
		if ms <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, ms))
		}
	}
	if c.Particles.Life <= 0 {
		errs = append(errs, fmt.Errorf("particles.life must be positive, got %d", c.Particles.Life))
	}
	if c.Particles.BurstCount < 0 {
		errs = append(errs, fmt.Errorf("particles.burst_count must not be negative, got %d", c.Particles.BurstCount))
	}
	if c.Ball.StartColor != "" && !validHex(c.Ball.StartColor) {
		errs = append(errs, fmt.Errorf("ball.start_color must be #rrggbb, got %q", c.Ball.StartColor))
	}
	return errors.Join(errs...)
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tapball", "configs", filename)
}
