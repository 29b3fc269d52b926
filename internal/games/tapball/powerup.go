package tapball

import (
	"math/rand"

	"github.com/vovakirdan/tapball/internal/core"
)

// cyclePhase is where the power-up cycle is waiting.
type cyclePhase int

const (
	cycleWaiting cyclePhase = iota // Spawn delay running
	cycleVisible                   // Visible window running
)

// PowerUp is the bonus target. At most one exists at a time.
type PowerUp struct {
	Pos    core.Vec2
	Radius float64
	Active bool
}

// Spawn activates the power-up at a uniformly random canvas position.
func (p *PowerUp) Spawn(bounds core.Vec2, rng *rand.Rand) {
	p.Pos = core.V(rng.Float64()*bounds.X, rng.Float64()*bounds.Y)
	p.Active = true
}

// Expire hides the power-up.
func (p *PowerUp) Expire() {
	p.Active = false
}

// Contains reports whether p is within the power-up's hit radius while visible.
func (p *PowerUp) Contains(at core.Vec2) bool {
	return p.Active && core.Dist(p.Pos, at) <= p.Radius
}

// Collect consumes a visible power-up. It reports whether one was visible.
func (p *PowerUp) Collect() bool {
	if !p.Active {
		return false
	}
	p.Active = false
	return true
}
