package tapball

import (
	"math"

	"github.com/vovakirdan/tapball/internal/core"
)

// Snapshot is the read-only view renderers draw from.
// It is also the JSON frame sent to spectators.
type Snapshot struct {
	Tick      uint64         `json:"tick"`
	Variant   string         `json:"variant"`
	Canvas    SizeView       `json:"canvas"`
	Ball      BallView       `json:"ball"`
	Particles []ParticleView `json:"particles"`
	PowerUp   PowerUpView    `json:"powerup"`
	Session   SessionView    `json:"session"`
}

// SizeView is the canvas extent.
type SizeView struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BallView describes the ball.
type BallView struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"radius"`
	Color  core.RGB `json:"color"`
}

// ParticleView describes one particle. Alpha is life / max life.
type ParticleView struct {
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Radius float64  `json:"radius"`
	Alpha  float64  `json:"alpha"`
	Color  core.RGB `json:"color"`
}

// PowerUpView describes the power-up. Position is meaningful only when Active.
type PowerUpView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Active bool    `json:"active"`
}

// SessionView is the HUD state.
type SessionView struct {
	Phase        string `json:"phase"`
	Score        int    `json:"score"`
	Remaining    int    `json:"remaining"`
	HighScore    int    `json:"high_score"`
	NewHighScore bool   `json:"new_high_score"`
	Difficulty   string `json:"difficulty"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	particles := make([]ParticleView, 0, g.particles.Len())
	for _, p := range g.particles.All() {
		particles = append(particles, ParticleView{
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Radius: g.params.ParticleRadius,
			Alpha:  p.Alpha(),
			Color:  p.Color,
		})
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.params.Motion.String(),
		Canvas:  SizeView{Width: g.params.Canvas.X, Height: g.params.Canvas.Y},
		Ball: BallView{
			X:      g.ball.Pos.X,
			Y:      g.ball.Pos.Y,
			Radius: g.ball.Radius,
			Color:  g.ball.Color,
		},
		Particles: particles,
		PowerUp: PowerUpView{
			X:      g.powerUp.Pos.X,
			Y:      g.powerUp.Pos.Y,
			Radius: g.powerUp.Radius,
			Active: g.powerUp.Active,
		},
		Session: SessionView{
			Phase:        g.session.Phase.String(),
			Score:        g.session.Score,
			Remaining:    g.session.Remaining,
			HighScore:    g.highScore,
			NewHighScore: g.newHigh,
			Difficulty:   g.session.Difficulty.String(),
		},
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Session.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Session.Remaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + uint64(snap.Ball.Color.R)
	h = h*31 + uint64(snap.Ball.Color.G)
	h = h*31 + uint64(snap.Ball.Color.B)

	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
	}

	if snap.PowerUp.Active {
		h = h*31 + math.Float64bits(snap.PowerUp.X)
		h = h*31 + math.Float64bits(snap.PowerUp.Y)
	}

	return h
}

// Phase parses the session phase back from the snapshot.
func (snap *Snapshot) Phase() Phase {
	switch snap.Session.Phase {
	case PhaseActive.String():
		return PhaseActive
	case PhaseEnded.String():
		return PhaseEnded
	default:
		return PhaseNotStarted
	}
}
