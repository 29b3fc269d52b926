package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTapBall(GetDefaultYAML("tapball"))
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	want := DefaultTapBallConfig()
	if cfg.Canvas != want.Canvas {
		t.Errorf("canvas = %+v, expected %+v", cfg.Canvas, want.Canvas)
	}
	if cfg.Session != want.Session {
		t.Errorf("session = %+v, expected %+v", cfg.Session, want.Session)
	}
	if cfg.Ball != want.Ball {
		t.Errorf("ball = %+v, expected %+v", cfg.Ball, want.Ball)
	}
	if cfg.Particles != want.Particles {
		t.Errorf("particles = %+v, expected %+v", cfg.Particles, want.Particles)
	}
	if cfg.PowerUp != want.PowerUp {
		t.Errorf("powerup = %+v, expected %+v", cfg.PowerUp, want.PowerUp)
	}
	if cfg.Variants != want.Variants {
		t.Errorf("variants = %+v, expected %+v", cfg.Variants, want.Variants)
	}
	for _, p := range Presets() {
		if cfg.Difficulty.Level(p) != want.Difficulty.Level(p) {
			t.Errorf("difficulty %s = %+v, expected %+v", p, cfg.Difficulty.Level(p), want.Difficulty.Level(p))
		}
	}
}

func TestLoadTapBallCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("canvas:\n  width: 800\n  height: 600\nsession:\n  duration_secs: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTapBall(path)
	if err != nil {
		t.Fatalf("LoadTapBall() failed: %v", err)
	}

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("canvas = %+v, expected 800x600", cfg.Canvas)
	}
	if cfg.Session.DurationSecs != 10 {
		t.Errorf("duration = %d, expected 10", cfg.Session.DurationSecs)
	}
	// Unspecified keys keep defaults
	if cfg.Ball.Radius != 60 {
		t.Errorf("ball radius should default to 60, got %g", cfg.Ball.Radius)
	}
	if cfg.Session.CountdownIntervalMS != 1000 {
		t.Errorf("countdown interval should default to 1000, got %d", cfg.Session.CountdownIntervalMS)
	}
}

func TestLoadTapBallErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "canvas: [1, 2"},
		{"zero radius", "ball:\n  radius: 0\n"},
		{"zero countdown", "session:\n  countdown_interval_ms: 0\n"},
		{"bad color", "ball:\n  start_color: red\n"},
		{"negative canvas", "canvas:\n  width: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadTapBall(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			// Callers get usable defaults alongside the error
			if cfg.Ball.Radius != DefaultTapBallConfig().Ball.Radius {
				t.Errorf("fallback config should be the default, got radius %g", cfg.Ball.Radius)
			}
		})
	}
}

func TestLoadTapBallMissingFile(t *testing.T) {
	if _, err := LoadTapBall(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"normal", DifficultyMedium, false},
		{"", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"fixed", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyLevelFallback(t *testing.T) {
	d := DifficultyConfig{Levels: map[string]LevelConfig{
		"hard": {SpeedScale: 0, NudgeScale: -1},
	}}

	if lvl := d.Level(DifficultyEasy); lvl.SpeedScale != 1 || lvl.NudgeScale != 1 {
		t.Errorf("missing level should scale by 1, got %+v", lvl)
	}
	if lvl := d.Level(DifficultyHard); lvl.SpeedScale != 1 || lvl.NudgeScale != 0 {
		t.Errorf("invalid level should be sanitized, got %+v", lvl)
	}
	if d.DefaultPreset() != DifficultyMedium {
		t.Errorf("DefaultPreset() = %q, expected medium", d.DefaultPreset())
	}
}
