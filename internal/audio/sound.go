package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound names a game event with a tone.
type Sound int

const (
	SoundStart Sound = iota
	SoundTap
	SoundBonus
	SoundGameOver
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundTap:
		return "tap"
	case SoundBonus:
		return "bonus"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Duration returns the length of a sound.
func (s Sound) Duration() time.Duration {
	switch s {
	case SoundStart:
		return 100 * time.Millisecond
	case SoundTap:
		return 60 * time.Millisecond
	case SoundBonus:
		return 250 * time.Millisecond
	case SoundGameOver:
		return 450 * time.Millisecond
	default:
		return 0
	}
}

// Streamer builds a fresh streamer for a sound.
func (s Sound) Streamer(rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundStart:
		return gain(note(660, 100*time.Millisecond, WaveSine, rate), 0.5)
	case SoundTap:
		return gain(note(880, 60*time.Millisecond, WaveSine, rate), 0.6)
	case SoundBonus:
		return gain(beep.Seq(
			note(988, 70*time.Millisecond, WaveSquare, rate),
			note(1319, 180*time.Millisecond, WaveSquare, rate),
		), 0.3)
	case SoundGameOver:
		return gain(beep.Seq(
			note(440, 150*time.Millisecond, WaveSaw, rate),
			note(330, 150*time.Millisecond, WaveSaw, rate),
			note(220, 150*time.Millisecond, WaveSaw, rate),
		), 0.4)
	default:
		return beep.Silence(0)
	}
}
