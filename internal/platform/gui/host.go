// Package gui runs Tap the Ball in a desktop window with Ebitengine.
// The logical screen is the canvas itself, so cursor and touch positions
// are already canvas coordinates and the window only scales the picture.
package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tapball/internal/audio"
	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/logging"
	"github.com/vovakirdan/tapball/internal/storage"
)

// Options are the optional collaborators of the window host.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Sounds   interface{ Play(audio.Sound) }
	Spectate interface{ Publish(v any) }
	// WindowScale shrinks the canvas to a window that fits common displays.
	WindowScale float64
}

// Host adapts a tapball.Game to ebiten.Game.
type Host struct {
	game    *tapball.Game
	opts    Options
	logger  *log.Logger
	face    faces
	running bool
	started time.Time
}

// NewHost resets the game and binds the store.
func NewHost(game *tapball.Game, cfg core.RuntimeConfig, opts Options) (*Host, error) {
	cfg = cfg.Normalized()
	if opts.WindowScale <= 0 {
		opts.WindowScale = 0.45
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	if opts.Store != nil {
		game.BindScores(opts.Store)
	}
	game.Reset(cfg)

	return &Host{game: game, opts: opts, logger: logger, face: f}, nil
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *tapball.Game, cfg core.RuntimeConfig, opts Options) error {
	h, err := NewHost(game, cfg, opts)
	if err != nil {
		return err
	}

	canvas := game.Canvas()
	ebiten.SetWindowSize(int(canvas.X*h.opts.WindowScale), int(canvas.Y*h.opts.WindowScale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Normalized().TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update reads input and advances the game by one frame.
func (h *Host) Update() error {
	frame := core.NewInputFrame()

	for _, k := range []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyW, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyS, core.ActionDown},
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeySpace, core.ActionConfirm},
		{ebiten.KeyEscape, core.ActionBack},
		{ebiten.KeyR, core.ActionRestart},
	} {
		if inpututil.IsKeyJustPressed(k.key) {
			frame.Set(k.action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, p := range justPressed() {
		h.tap(p, &frame)
	}

	result := h.game.Step(frame)
	if !h.running && result.State.Running {
		h.onSessionStart()
	}
	h.running = result.State.Running
	if result.Ended {
		h.onSessionEnd(result.State.Score)
	}

	if h.opts.Spectate != nil {
		h.opts.Spectate.Publish(h.game.Snapshot())
	}
	return nil
}

// justPressed returns the canvas positions of clicks and touches begun this frame.
func justPressed() []core.Vec2 {
	var out []core.Vec2
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, core.V(float64(x), float64(y)))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		out = append(out, core.V(float64(x), float64(y)))
	}
	return out
}

// tap scores a running session, or starts one from the start and game-over screens.
// Game-over taps right after the clock runs out are dropped.
func (h *Host) tap(p core.Vec2, frame *core.InputFrame) {
	if !h.game.State().Running {
		if h.game.TapStarts() {
			frame.Set(core.ActionConfirm)
		}
		return
	}

	outcome := h.game.TapCanvas(p)
	h.logger.Debug("tap", "game", h.game.ID(), "x", p.X, "y", p.Y, "outcome", outcome)
	if h.opts.Sounds == nil {
		return
	}
	switch outcome {
	case core.TapBall:
		h.opts.Sounds.Play(audio.SoundTap)
	case core.TapPowerUp:
		h.opts.Sounds.Play(audio.SoundBonus)
	}
}

func (h *Host) onSessionStart() {
	h.started = time.Now()
	h.logger.Info("session started", "game", h.game.ID(), "difficulty", h.game.Session().Difficulty)
	if h.opts.Sounds != nil {
		h.opts.Sounds.Play(audio.SoundStart)
	}
}

func (h *Host) onSessionEnd(score int) {
	difficulty := h.game.Session().Difficulty.String()
	h.logger.Info("session ended",
		"game", h.game.ID(),
		"score", score,
		"difficulty", difficulty,
		"played", time.Since(h.started).Round(time.Second),
	)
	if err := h.game.LastStoreError(); err != nil {
		h.logger.Warn("could not save high score", "game", h.game.ID(), "error", err)
	}
	if h.opts.Sounds != nil {
		h.opts.Sounds.Play(audio.SoundGameOver)
	}
	if h.opts.Store != nil && score > 0 {
		if _, err := h.opts.Store.SaveScore(h.game.ID(), score, difficulty); err != nil {
			h.logger.Warn("could not save session", "game", h.game.ID(), "error", err)
		}
	}
}

// Draw paints the current snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, h.game.Snapshot(), h.face)
}

// Layout keeps the logical screen at canvas size regardless of the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := h.game.Canvas()
	return int(c.X), int(c.Y)
}
