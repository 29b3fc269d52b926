// Package tapball implements Tap the Ball: a timed round in which the player
// taps a moving ball for points while particle bursts and a bonus power-up
// play out on a fixed-size canvas.
package tapball

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tapball/internal/config"
	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the starting difficulty set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
// Must be called before creating game instances.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty selected when a game is reset.
// An empty preset uses the configured default.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// Game implements Tap the Ball for one motion variant.
type Game struct {
	id     string
	title  string
	motion Motion

	params     Params
	configured bool

	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   time.Duration // Logical time per Step
	tick    uint64
	endTick uint64 // Frame on which the last session ended

	sched      Scheduler
	session    Session
	ball       Ball
	particles  ParticleSystem
	powerUp    PowerUp
	powerCycle cyclePhase

	// Per-session motion, scaled by difficulty at Start
	physics          Physics
	jitterStep       int
	teleportInterval time.Duration

	store     registry.ScoreStore
	highScore int
	newHigh   bool
	storeErr  error

	viewport Viewport
}

// New creates a game that loads its config on the first Reset.
func New(motion Motion) *Game {
	id, title := variantInfo(motion)
	return &Game{id: id, title: title, motion: motion}
}

// NewWithConfig creates a game with an explicit config, bypassing file lookup.
func NewWithConfig(cfg config.TapBallConfig, motion Motion) *Game {
	g := New(motion)
	g.params = NewParams(cfg, motion)
	g.configured = true
	return g
}

func variantInfo(m Motion) (id, title string) {
	switch m {
	case MotionJitter:
		return "tapball_jitter", "Tap the Ball: Jitter"
	case MotionTeleport:
		return "tapball_teleport", "Tap the Ball: Teleport"
	default:
		return "tapball", "Tap the Ball"
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description summarizes how the variant plays.
func (g *Game) Description() string {
	switch g.motion {
	case MotionJitter:
		return "The ball shivers in place and hops away when hit"
	case MotionTeleport:
		return "The ball blinks to a new spot twice a second"
	default:
		return "Bouncing ball with gravity, sparks and golden bonuses"
	}
}

// Reset returns the game to the start screen.
// Jitter and teleport variants have no start screen and begin a session immediately.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.configured {
		cfg, err := config.LoadTapBall(configPath)
		if err != nil {
			cfg = config.DefaultTapBallConfig()
		}
		g.params = NewParams(cfg, g.motion)
		g.configured = true
	}

	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultTickRate
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic gameplay RNG
	g.frame = runtime.Frame()
	g.tick = 0

	difficulty := DifficultyFromPreset(g.params.Difficulty.DefaultPreset())
	if difficultyPreset != "" {
		difficulty = DifficultyFromPreset(difficultyPreset)
	}

	g.sched.CancelAll()
	g.session = Session{Phase: PhaseNotStarted, Difficulty: difficulty}
	g.resetEntities()
	g.newHigh = false
	g.loadHighScore()
	g.viewport = LayoutViewport(g.params.Canvas, runtime.ScreenW, runtime.ScreenH)

	if g.params.AutoStart {
		g.Start()
	}
}

// resetEntities puts the ball at its start position and clears particles and the power-up.
func (g *Game) resetEntities() {
	g.ball = Ball{
		Pos:    g.params.StartPos,
		Vel:    g.params.StartVel,
		Radius: g.params.Radius,
		Color:  g.params.StartColor,
	}
	g.ball.clamp(g.params.Canvas)
	g.particles.Reset()
	g.powerUp = PowerUp{Radius: g.params.PowerUpRadius}
	g.powerCycle = cycleWaiting
}

// Start begins a new session from the start screen or after game over.
// It returns false when a session is already running or Reset was never called.
func (g *Game) Start() bool {
	if g.rng == nil || !g.session.Start(g.params.Duration) {
		return false
	}

	level := g.params.Level(g.session.Difficulty)
	g.newHigh = false
	g.resetEntities()
	g.ball.Vel = g.params.StartVel.Scale(level.SpeedScale)
	g.physics = Physics{
		Bounds:         g.params.Canvas,
		Interval:       g.params.MotionInterval,
		Damping:        g.params.Damping,
		Gravity:        g.params.Gravity,
		NudgeChance:    g.params.NudgeChance,
		NudgeMagnitude: g.params.NudgeMagnitude * level.NudgeScale,
	}
	g.jitterStep = int(math.Round(float64(g.params.JitterStep) * level.SpeedScale))
	g.teleportInterval = time.Duration(float64(g.params.TeleportInterval) / level.SpeedScale)

	g.sched.CancelAll()
	switch g.params.Motion {
	case MotionBounce:
		g.sched.Arm(TimerMotion, g.params.MotionInterval, g.moveBall)
	case MotionJitter:
		g.sched.Arm(TimerMotion, g.params.MotionInterval, g.jitterBall)
	case MotionTeleport:
		g.sched.Arm(TimerTeleport, g.teleportInterval, g.teleportBall)
	}
	if g.params.Particles {
		g.sched.Arm(TimerParticles, g.params.ParticleInterval, g.advanceParticles)
	}
	g.sched.Arm(TimerCountdown, g.params.CountdownInterval, g.countdown)
	if g.params.PowerUps {
		g.sched.Arm(TimerPowerUp, g.params.SpawnInterval, g.cyclePowerUp)
	}
	return true
}

// End finishes the running session, stops every timer and persists the high score once.
// It returns false when no session is running.
func (g *Game) End() bool {
	if !g.session.End() {
		return false
	}
	g.sched.CancelAll()
	g.endTick = g.tick
	g.persistHighScore()
	return true
}

// RestartGuard is how long the game-over panel ignores taps.
const RestartGuard = time.Second

// TapStarts reports whether a tap outside a session should start one.
// A player still tapping when the clock runs out lands on the game-over panel,
// so taps there only count once RestartGuard of frames has passed.
func (g *Game) TapStarts() bool {
	switch g.session.Phase {
	case PhaseNotStarted:
		return true
	case PhaseEnded:
		guard := uint64(RestartGuard.Seconds() * float64(g.runtime.TickRate))
		return g.tick-g.endTick >= guard
	default:
		return false
	}
}

func (g *Game) persistHighScore() {
	score := g.session.Score
	prev := g.highScore
	best := max(prev, score)

	if g.store != nil {
		stored, err := g.store.SaveHighScore(g.id, score)
		g.storeErr = err
		if err == nil {
			best = max(stored, score)
		}
	}

	g.newHigh = score > prev
	g.highScore = best
}

func (g *Game) loadHighScore() {
	if g.store == nil {
		return
	}
	hs, err := g.store.HighScore(g.id)
	g.storeErr = err
	if err == nil {
		g.highScore = hs
	}
}

// BindScores attaches the high score store and loads the stored value.
func (g *Game) BindScores(store registry.ScoreStore) {
	g.store = store
	g.loadHighScore()
}

// Step advances the game by one frame of logical time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	wasActive := g.session.Phase == PhaseActive

	if wasActive {
		if in.Has(core.ActionBack) {
			g.End()
		}
	} else {
		if in.Has(core.ActionUp) {
			g.session.SetDifficulty(g.session.Difficulty.Prev())
		}
		if in.Has(core.ActionDown) {
			g.session.SetDifficulty(g.session.Difficulty.Next())
		}
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.Start()
		}
	}

	g.sched.Advance(g.frame)

	return core.StepResult{
		State: g.State(),
		Ended: wasActive && g.session.Phase == PhaseEnded,
	}
}

// Advance moves logical time forward without reading input.
func (g *Game) Advance(dt time.Duration) {
	g.sched.Advance(dt)
}

func (g *Game) moveBall() time.Duration {
	if g.session.Phase != PhaseActive {
		return 0
	}
	g.ball.Advance(g.params.MotionInterval, g.physics, g.rng)
	return 0
}

func (g *Game) jitterBall() time.Duration {
	if g.session.Phase != PhaseActive {
		return 0
	}
	g.ball.Jitter(g.jitterStep, g.params.Canvas, g.rng)
	return 0
}

func (g *Game) teleportBall() time.Duration {
	if g.session.Phase != PhaseActive {
		return 0
	}
	g.ball.Relocate(g.params.Canvas, g.rng)
	return 0
}

func (g *Game) advanceParticles() time.Duration {
	if g.session.Phase != PhaseActive {
		return 0
	}
	g.particles.Advance()
	return 0
}

func (g *Game) countdown() time.Duration {
	if g.session.Countdown() {
		g.End()
	}
	return 0
}

// cyclePowerUp alternates between the spawn delay and the visible window.
// A power-up collected early stays hidden until the next spawn.
func (g *Game) cyclePowerUp() time.Duration {
	if g.session.Phase != PhaseActive {
		return 0
	}
	if g.powerCycle == cycleWaiting {
		if !g.powerUp.Active {
			g.powerUp.Spawn(g.params.Canvas, g.rng)
		}
		g.powerCycle = cycleVisible
		return g.params.VisibleDuration
	}
	g.powerUp.Expire()
	g.powerCycle = cycleWaiting
	return g.params.SpawnInterval
}

// HandleTap hit-tests a tap in canvas coordinates.
// The power-up takes priority; a tap that collects it never scores the ball.
func (g *Game) HandleTap(p core.Vec2) core.TapOutcome {
	if g.session.Phase != PhaseActive {
		return core.TapIgnored
	}

	if g.powerUp.Contains(p) {
		g.powerUp.Collect()
		g.session.Award(g.params.PowerUpBonus)
		return core.TapPowerUp
	}

	if g.ball.Contains(p) {
		g.session.Award(1)
		if g.params.Particles {
			g.particles.SpawnBurst(g.ball.Pos, g.ball.Color,
				g.params.BurstCount, g.params.ParticleSpeed, g.params.ParticleLife, g.rng)
		}
		g.ball.Recolor(g.rng)
		if g.params.Motion == MotionJitter {
			g.ball.Relocate(g.params.Canvas, g.rng)
		}
		return core.TapBall
	}

	return core.TapMiss
}

// Tap handles a tap on a cell of the last rendered frame.
func (g *Game) Tap(col, row int) core.TapOutcome {
	return g.HandleTap(g.viewport.CellToCanvas(col, row))
}

// TapCanvas handles a tap in canvas coordinates.
func (g *Game) TapCanvas(p core.Vec2) core.TapOutcome {
	return g.HandleTap(p)
}

// Render draws the current state and remembers the viewport for cell taps.
func (g *Game) Render(dst *core.Screen) {
	g.viewport = RenderSnapshot(g.Snapshot(), dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.session.Phase == PhaseEnded,
		Running:  g.session.Phase == PhaseActive,
	}
}

// Session returns a copy of the session state.
func (g *Game) Session() Session {
	return g.session
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Canvas returns the canvas extent.
func (g *Game) Canvas() core.Vec2 {
	return g.params.Canvas
}

// Viewport returns the cell mapping of the last rendered frame.
func (g *Game) Viewport() Viewport {
	return g.viewport
}

// LastStoreError returns the error of the most recent store call, if any.
func (g *Game) LastStoreError() error {
	return g.storeErr
}

// Register the variants with the registry
func init() {
	for _, m := range []Motion{MotionBounce, MotionJitter, MotionTeleport} {
		id, _ := variantInfo(m)
		registry.Register(id, func() registry.Game {
			return New(m)
		})
	}
}
