package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tapball/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame) {
		t.Error("enter should not quit")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set Confirm")
	}

	km.MapKeyToFrame(runeKey('x'), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key added actions: %v", frame.Actions)
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
	}{
		{"left press", tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (col != 10 || row != 5) {
				t.Errorf("MapMouse() = (%d, %d), expected (10, 5)", col, row)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestGameHelpLabels(t *testing.T) {
	km := NewKeyMapper()
	want := map[core.Action]string{
		core.ActionUp:   "easier",
		core.ActionDown: "harder",
	}

	for _, b := range km.game {
		label, ok := want[b.action]
		if !ok {
			continue
		}
		if got := b.Help().Desc; got != label {
			t.Errorf("help for %v = %q, expected %q", b.action, got, label)
		}
		delete(want, b.action)
	}
	if len(want) != 0 {
		t.Errorf("no bindings for %v", want)
	}
}
