// Package audio synthesizes the short tap, bonus and game-over tones.
// Sounds are generated with beep streamers; no sample files are shipped.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a tone of the given frequency and duration.
func NewTone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape applies a linear attack and release over a stream of known length.
func Shape(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream linearly. Zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(NewTone(freq, d, wave, rate), d, 2*time.Millisecond, d/2, rate)
}
