package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tapball/internal/audio"
	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/logging"
	"github.com/vovakirdan/tapball/internal/registry"
	"github.com/vovakirdan/tapball/internal/storage"
)

// SoundPlayer plays short feedback sounds. *audio.Player implements it.
type SoundPlayer interface {
	Play(s audio.Sound)
}

// Publisher receives one snapshot per tick. *spectate.Hub implements it.
type Publisher interface {
	Publish(v any)
}

// Hooks are the optional collaborators of a play session.
// Nil fields are skipped.
type Hooks struct {
	Logger   *log.Logger
	Sounds   SoundPlayer
	Spectate Publisher
}

func (h Hooks) logger() *log.Logger {
	if h.Logger == nil {
		return logging.Discard()
	}
	return h.Logger
}

// snapshotter is implemented by games that expose the renderer read contract.
type snapshotter interface {
	Snapshot() tapball.Snapshot
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	hooks      Hooks
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	started    time.Time
	embedded   bool // Inside the menu flow, Back outside a session returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The store may be nil; scores are then kept in memory only.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hooks Hooks) Model {
	cfg = cfg.Normalized()

	if binder, ok := game.(registry.ScoreBinder); ok && store != nil {
		binder.BindScores(loggedStore{store: store, log: hooks.logger()})
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		hooks:      hooks,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back outside a session leaves the game when running under the menu
	if m.embedded && !m.gameState.Running && m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.inputFrame.Clear()
	}

	return m, nil
}

// handleMouse delivers a left click to the game as a tap.
// The tap is resolved against the viewport of the last rendered frame.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row, ok := m.keys.MapMouse(msg)
	if !ok {
		return m, nil
	}
	pointer, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}

	outcome := pointer.Tap(col, row)
	m.hooks.logger().Debug("tap", "game", m.game.ID(), "col", col, "row", row, "outcome", outcome)
	m.playTapSound(outcome)
	m.gameState = m.game.State()

	return m, nil
}

func (m Model) playTapSound(outcome core.TapOutcome) {
	if m.hooks.Sounds == nil {
		return
	}
	switch outcome {
	case core.TapBall:
		m.hooks.Sounds.Play(audio.SoundTap)
	case core.TapPowerUp:
		m.hooks.Sounds.Play(audio.SoundBonus)
	}
}

// handleResize processes window resize events.
// A running session is kept; the next frame is laid out for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasRunning := m.gameState.Running

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !wasRunning && m.gameState.Running {
		m.onSessionStart()
	}
	if result.Ended {
		m.onSessionEnd()
	}

	if m.hooks.Spectate != nil {
		if snap, ok := m.game.(snapshotter); ok {
			m.hooks.Spectate.Publish(snap.Snapshot())
		}
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *Model) onSessionStart() {
	m.started = time.Now()
	m.hooks.logger().Info("session started", "game", m.game.ID(), "difficulty", m.difficulty())
	if m.hooks.Sounds != nil {
		m.hooks.Sounds.Play(audio.SoundStart)
	}
}

// onSessionEnd runs once per finished session.
func (m *Model) onSessionEnd() {
	logger := m.hooks.logger()
	score := m.gameState.Score
	logger.Info("session ended",
		"game", m.game.ID(),
		"score", score,
		"difficulty", m.difficulty(),
		"played", time.Since(m.started).Round(time.Second),
	)
	if m.hooks.Sounds != nil {
		m.hooks.Sounds.Play(audio.SoundGameOver)
	}

	if m.store != nil && score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score, m.difficulty()); err != nil {
			// Best-effort save, game continues regardless
			logger.Warn("could not save session", "game", m.game.ID(), "error", err)
		}
	}
}

func (m Model) difficulty() string {
	if snap, ok := m.game.(snapshotter); ok {
		return snap.Snapshot().Session.Difficulty
	}
	return ""
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tapball", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hooks Hooks) error {
	model := NewModel(game, store, cfg, hooks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
	)

	_, err := p.Run()
	return err
}

// loggedStore reports store failures to the session log.
// The game keeps its in-memory score whatever the store returns.
type loggedStore struct {
	store registry.ScoreStore
	log   *log.Logger
}

func (s loggedStore) HighScore(gameID string) (int, error) {
	hs, err := s.store.HighScore(gameID)
	if err != nil {
		s.log.Warn("could not load high score", "game", gameID, "error", err)
	}
	return hs, err
}

func (s loggedStore) SaveHighScore(gameID string, candidate int) (int, error) {
	stored, err := s.store.SaveHighScore(gameID, candidate)
	if err != nil {
		s.log.Warn("could not save high score", "game", gameID, "score", candidate, "error", err)
	}
	return stored, err
}
