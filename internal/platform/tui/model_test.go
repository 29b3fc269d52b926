package tui

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tapball/internal/audio"
	"github.com/vovakirdan/tapball/internal/config"
	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
	"github.com/vovakirdan/tapball/internal/logging"
	"github.com/vovakirdan/tapball/internal/platform/spectate"
	"github.com/vovakirdan/tapball/internal/storage"
)

type fakeSounds struct {
	played []audio.Sound
}

func (f *fakeSounds) Play(s audio.Sound) {
	f.played = append(f.played, s)
}

func (f *fakeSounds) count(s audio.Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

type fakePublisher struct {
	mu    sync.Mutex
	snaps []tapball.Snapshot
}

func (f *fakePublisher) Publish(v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if snap, ok := v.(tapball.Snapshot); ok {
		f.snaps = append(f.snaps, snap)
	}
}

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

func newTestModel(t *testing.T, store *storage.Store, hooks Hooks) (Model, *tapball.Game) {
	t.Helper()
	game := tapball.NewWithConfig(config.DefaultTapBallConfig(), tapball.MotionBounce)
	m := NewModel(game, store, testRuntime, hooks)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Loop: m.loop})
}

func click(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModelStartsOnEnter(t *testing.T) {
	sounds := &fakeSounds{}
	m, game := newTestModel(t, nil, Hooks{Sounds: sounds})

	m = tick(t, m)
	if game.State().Running {
		t.Fatal("bounce variant should wait on the start screen")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	if !game.State().Running {
		t.Fatal("enter should start a session")
	}
	if sounds.count(audio.SoundStart) != 1 {
		t.Errorf("start sound played %d times, expected 1", sounds.count(audio.SoundStart))
	}
	if !m.gameState.Running {
		t.Error("model should track the running state")
	}
}

func TestModelClickScoresBall(t *testing.T) {
	sounds := &fakeSounds{}
	m, game := newTestModel(t, nil, Hooks{Sounds: sounds})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m.View()

	snap := game.Snapshot()
	col, row := game.Viewport().CanvasToCell(core.V(snap.Ball.X, snap.Ball.Y))
	m = update(t, m, click(col, row))

	if game.State().Score != 1 {
		t.Errorf("score after clicking the ball = %d, expected 1", game.State().Score)
	}
	if sounds.count(audio.SoundTap) != 1 {
		t.Errorf("tap sound played %d times, expected 1", sounds.count(audio.SoundTap))
	}

	// Release and right clicks are not taps
	update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if game.State().Score != 1 {
		t.Errorf("mouse release changed the score to %d", game.State().Score)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t, nil, Hooks{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	game.HandleTap(core.V(game.Snapshot().Ball.X, game.Snapshot().Ball.Y))

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m.View()

	if !game.State().Running || game.State().Score != 1 {
		t.Errorf("resize reset the session: %+v", game.State())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if game.Viewport().Area.Bottom() > 40 || game.Viewport().Area.H <= 21 {
		t.Errorf("viewport %+v not laid out for the new size", game.Viewport().Area)
	}
}

func TestModelSessionEndSavesHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	sounds := &fakeSounds{}
	m, game := newTestModel(t, store, Hooks{Sounds: sounds})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	game.HandleTap(core.V(game.Snapshot().Ball.X, game.Snapshot().Ball.Y))

	// Esc ends the running session early
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	m = tick(t, m)

	if !game.State().GameOver {
		t.Fatal("esc should end the session")
	}
	if sounds.count(audio.SoundGameOver) != 1 {
		t.Errorf("game over sound played %d times, expected 1", sounds.count(audio.SoundGameOver))
	}

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 || scores[0].Difficulty != "Medium" {
		t.Errorf("history = %+v, expected one Medium session with score 1", scores)
	}
	if hs, _ := store.HighScore(game.ID()); hs != 1 {
		t.Errorf("stored high score = %d, expected 1", hs)
	}
	if m.IsQuitting() || m.BackToMenu() {
		t.Error("ending a session should stay on the game screen")
	}
}

func TestModelPublishesSnapshots(t *testing.T) {
	pub := &fakePublisher{}
	m, _ := newTestModel(t, nil, Hooks{Spectate: pub})

	for range 3 {
		m = tick(t, m)
	}

	if len(pub.snaps) != 3 {
		t.Fatalf("published %d snapshots, expected 3", len(pub.snaps))
	}
	if pub.snaps[2].Tick != 3 {
		t.Errorf("last snapshot tick = %d, expected 3", pub.snaps[2].Tick)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	pub := &fakePublisher{}
	m, _ := newTestModel(t, nil, Hooks{Spectate: pub})

	next, cmd := m.Update(TickMsg{Loop: m.loop + 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if len(pub.snaps) != 0 {
		t.Error("stale tick should not step the game")
	}
	if _, ok := next.(Model); !ok {
		t.Errorf("Update() returned %T", next)
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil, Hooks{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(nil, testRuntime, Hooks{})

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewScoreboard {
		t.Fatalf("tab should open the scoreboard, view = %d", s.view)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Fatalf("esc should return to the menu, view = %d", s.view)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame || s.game == nil {
		t.Fatalf("enter should start the selected game, view = %d", s.view)
	}
	if s.game.game.ID() != "tapball" {
		t.Errorf("selected game = %q, expected tapball", s.game.game.ID())
	}

	// Back on the start screen returns to the menu
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu || s.game != nil {
		t.Errorf("esc on the start screen should return to the menu, view = %d", s.view)
	}

	next, cmd := s.Update(runeKey('q'))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q in the menu should quit")
	}
}

func TestSSHSessionsGetOwnSpectatorChannel(t *testing.T) {
	hub := spectate.NewHub(0, nil)
	defer hub.Close()
	srv := &SSHServer{config: SSHServerConfig{Spectate: hub}, logger: logging.Discard()}

	doneA, doneB := make(chan struct{}), make(chan struct{})
	a := srv.sessionHooks("alice", doneA)
	b := srv.sessionHooks("bob", doneB)

	chA, okA := a.Spectate.(*spectate.Channel)
	chB, okB := b.Spectate.(*spectate.Channel)
	if !okA || !okB {
		t.Fatalf("Spectate = %T, %T; expected per-session channels", a.Spectate, b.Spectate)
	}
	if chA.ID() == chB.ID() {
		t.Errorf("sessions share channel %q", chA.ID())
	}
	if len(hub.Sessions()) != 2 {
		t.Fatalf("Sessions() = %v, expected 2", hub.Sessions())
	}

	close(doneA)
	deadline := time.Now().Add(2 * time.Second)
	for len(hub.Sessions()) != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("Sessions() = %v, expected alice's channel to close", hub.Sessions())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Sessions()[0] != chB.ID() {
		t.Errorf("remaining session = %s, expected bob's %s", hub.Sessions()[0], chB.ID())
	}
	close(doneB)
}

func TestSSHSessionWithoutSpectating(t *testing.T) {
	srv := &SSHServer{logger: logging.Discard()}
	if h := srv.sessionHooks("dave", make(chan struct{})); h.Spectate != nil {
		t.Errorf("Spectate = %T, expected none", h.Spectate)
	}
}
