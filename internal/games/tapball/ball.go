package tapball

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tapball/internal/core"
)

// Ball is the tap target.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.RGB
}

// Physics is the per-session motion tuning of a bouncing ball.
type Physics struct {
	Bounds         core.Vec2
	Interval       time.Duration // Nominal motion tick; velocity is in units per tick
	Damping        float64
	Gravity        float64
	NudgeChance    int // Percent
	NudgeMagnitude float64
}

// Advance moves a bouncing ball by dt.
// A component is reflected and damped when the ball touches that wall,
// then the position is clamped so the whole ball stays on the canvas.
func (b *Ball) Advance(dt time.Duration, ph Physics, rng *rand.Rand) {
	k := 1.0
	if ph.Interval > 0 {
		k = float64(dt) / float64(ph.Interval)
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(k))

	r := b.Radius
	if b.Pos.X <= r || b.Pos.X >= ph.Bounds.X-r {
		b.Vel.X = -b.Vel.X * ph.Damping
	}
	if b.Pos.Y <= r || b.Pos.Y >= ph.Bounds.Y-r {
		b.Vel.Y = -b.Vel.Y * ph.Damping
	}
	b.clamp(ph.Bounds)

	b.Vel.Y += ph.Gravity * k

	if ph.NudgeChance > 0 && rng.Intn(100) < ph.NudgeChance {
		b.Vel.X += (rng.Float64() - 0.5) * 2 * ph.NudgeMagnitude
		b.Vel.Y += (rng.Float64() - 0.5) * 2 * ph.NudgeMagnitude
	}
}

// Jitter offsets the ball by a random amount in [-step, step) per axis.
func (b *Ball) Jitter(step int, bounds core.Vec2, rng *rand.Rand) {
	if step > 0 {
		b.Pos.X += float64(rng.Intn(2*step) - step)
		b.Pos.Y += float64(rng.Intn(2*step) - step)
	}
	b.clamp(bounds)
}

// Relocate moves the ball to a uniformly random position fully inside bounds.
func (b *Ball) Relocate(bounds core.Vec2, rng *rand.Rand) {
	b.Pos = core.V(
		randomIn(b.Radius, bounds.X-b.Radius, rng),
		randomIn(b.Radius, bounds.Y-b.Radius, rng),
	)
}

// Recolor picks a random opaque color that differs from the current one.
func (b *Ball) Recolor(rng *rand.Rand) {
	prev := b.Color
	for b.Color == prev {
		b.Color = core.RGB{
			R: uint8(rng.Intn(256)), //#nosec G115 -- bounded by Intn
			G: uint8(rng.Intn(256)), //#nosec G115 -- bounded by Intn
			B: uint8(rng.Intn(256)), //#nosec G115 -- bounded by Intn
		}
	}
}

// Contains reports whether p is within the ball's hit radius.
func (b *Ball) Contains(p core.Vec2) bool {
	return core.Dist(b.Pos, p) <= b.Radius
}

func (b *Ball) clamp(bounds core.Vec2) {
	b.Pos.X = core.ClampF(b.Pos.X, b.Radius, bounds.X-b.Radius)
	b.Pos.Y = core.ClampF(b.Pos.Y, b.Radius, bounds.Y-b.Radius)
}

// randomIn returns a value in [lo, hi]. A degenerate range yields its midpoint.
func randomIn(lo, hi float64, rng *rand.Rand) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}
