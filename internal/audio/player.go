package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the speaker rate used for every sound.
const SampleRate = beep.SampleRate(48000)

// Player mixes sounds onto the system speaker.
// A nil *Player is valid and plays nothing, which is how --mute works.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

// NewPlayer initializes the speaker. Hosts without an audio device get an
// error and should continue with a nil player.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	p := &Player{mixer: &beep.Mixer{}, ready: true}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts a sound without waiting for it to finish.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(s.Streamer(SampleRate))
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.ready = false
}
