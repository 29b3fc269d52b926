package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tapball/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestItemAt(t *testing.T) {
	tests := []struct {
		row  int
		idx  int
		want bool
	}{
		{0, 0, false},
		{menuTop - 1, 0, false},
		{menuTop, 0, true},
		{menuTop + 1, 0, true},
		{menuTop + 2, 0, false}, // Spacer
		{menuTop + itemRows, 1, true},
		{menuTop + 3*itemRows, 0, false}, // Past the last item
	}

	for _, tc := range tests {
		idx, ok := itemAt(tc.row, 3)
		if ok != tc.want || (ok && idx != tc.idx) {
			t.Errorf("itemAt(%d) = %d, %v; expected %d, %v", tc.row, idx, ok, tc.idx, tc.want)
		}
	}
}

func TestMenuClickSelectsVariant(t *testing.T) {
	m := NewMenuModel(nil, testRuntime)

	next, cmd := m.Update(click(10, menuTop+itemRows))
	menu := next.(MenuModel)
	if cmd == nil || menu.Selected() == nil {
		t.Fatal("clicking a variant should select it and leave the menu")
	}
	if menu.Selected().GameID != "tapball_jitter" {
		t.Errorf("Selected() = %q, expected tapball_jitter", menu.Selected().GameID)
	}
}

func TestMenuShowsBestAndDescription(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveHighScore("tapball_teleport", 23); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	m := NewMenuModel(store, testRuntime)
	view := ansi.Strip(m.View())

	if !strings.Contains(view, "Best 23") {
		t.Errorf("menu does not show the stored best:\n%s", view)
	}
	if !strings.Contains(view, "twice a second") {
		t.Errorf("menu does not show the teleport description:\n%s", view)
	}
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[menuTop], "▶") || !strings.Contains(lines[menuTop], "Tap the Ball") {
		t.Errorf("first item row = %q, expected the highlighted classic variant", lines[menuTop])
	}
}

func TestMenuShowsPlayCounts(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{4, 9, 6} {
		if _, err := store.SaveScore("tapball_jitter", score, "Medium"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tapball_teleport", 2, "Easy"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, testRuntime)
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	tests := []struct {
		row  int
		want string
	}{
		{menuTop, "0 plays"},
		{menuTop + itemRows, "3 plays"},
		{menuTop + 2*itemRows, "1 play"},
	}
	for _, tc := range tests {
		if !strings.Contains(lines[tc.row], tc.want) {
			t.Errorf("row %d = %q, expected it to contain %q", tc.row, lines[tc.row], tc.want)
		}
	}
}
