package tapball

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tapball/internal/core"
)

func TestParticleLifetime(t *testing.T) {
	var ps ParticleSystem
	ps.SpawnBurst(core.V(100, 100), core.Red, 16, 8, 60, rand.New(rand.NewSource(1)))

	if ps.Len() != 16 {
		t.Fatalf("burst size = %d, expected 16", ps.Len())
	}
	for _, p := range ps.All() {
		if p.Life != 60 {
			t.Fatalf("fresh particle life = %d, expected 60", p.Life)
		}
	}

	for tick := 1; tick < 60; tick++ {
		ps.Advance()
		if ps.Len() != 16 {
			t.Fatalf("tick %d: %d particles, expected 16", tick, ps.Len())
		}
		for _, p := range ps.All() {
			if p.Life != 60-tick {
				t.Fatalf("tick %d: life = %d, expected %d", tick, p.Life, 60-tick)
			}
		}
	}

	ps.Advance()
	if ps.Len() != 0 {
		t.Errorf("particles should be removed when life reaches 0, got %d", ps.Len())
	}
}

func TestParticleBurstsAppend(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var ps ParticleSystem

	ps.SpawnBurst(core.V(0, 0), core.Red, 16, 8, 60, rng)
	for range 30 {
		ps.Advance()
	}
	ps.SpawnBurst(core.V(50, 50), core.RGB{G: 255}, 16, 8, 60, rng)

	if ps.Len() != 32 {
		t.Fatalf("second burst should append, got %d particles", ps.Len())
	}

	for range 30 {
		ps.Advance()
	}
	if ps.Len() != 16 {
		t.Errorf("first burst should expire on its own schedule, got %d particles", ps.Len())
	}
	for _, p := range ps.All() {
		if p.Color != (core.RGB{G: 255}) {
			t.Errorf("surviving particle color = %v, expected the second burst's", p.Color)
		}
	}
}

func TestParticleMotionAndAlpha(t *testing.T) {
	var ps ParticleSystem
	ps.SpawnBurst(core.V(10, 20), core.Red, 1, 8, 60, rand.New(rand.NewSource(5)))
	p0 := ps.All()[0]

	if p0.Vel.X < -4 || p0.Vel.X >= 4 || p0.Vel.Y < -4 || p0.Vel.Y >= 4 {
		t.Errorf("velocity %+v outside [-speed/2, speed/2)", p0.Vel)
	}

	ps.Advance()
	p1 := ps.All()[0]
	if p1.Pos != p0.Pos.Add(p0.Vel) {
		t.Errorf("Pos = %+v, expected %+v", p1.Pos, p0.Pos.Add(p0.Vel))
	}
	if p1.Alpha() != 59.0/60.0 {
		t.Errorf("Alpha() = %v, expected 59/60", p1.Alpha())
	}
}
