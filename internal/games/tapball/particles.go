package tapball

import (
	"math/rand"

	"github.com/vovakirdan/tapball/internal/core"
)

// Particle is one fragment of a hit burst.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Color   core.RGB
	Life    int // Remaining ticks
	MaxLife int
}

// Alpha is the remaining life fraction in (0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// ParticleSystem owns all live particles.
type ParticleSystem struct {
	particles []Particle
}

// SpawnBurst appends count particles at origin. Bursts from quick taps coexist.
func (s *ParticleSystem) SpawnBurst(origin core.Vec2, color core.RGB, count int, speed float64, life int, rng *rand.Rand) {
	for range count {
		s.particles = append(s.particles, Particle{
			Pos:     origin,
			Vel:     core.V((rng.Float64()-0.5)*speed, (rng.Float64()-0.5)*speed),
			Color:   color,
			Life:    life,
			MaxLife: life,
		})
	}
}

// Advance moves every particle one tick and drops the expired ones in place.
func (s *ParticleSystem) Advance() {
	n := 0
	for _, p := range s.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			s.particles[n] = p
			n++
		}
	}
	clear(s.particles[n:])
	s.particles = s.particles[:n]
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// All returns the live particles. The slice must not be modified.
func (s *ParticleSystem) All() []Particle {
	return s.particles
}

// Reset drops every particle.
func (s *ParticleSystem) Reset() {
	s.particles = s.particles[:0]
}
