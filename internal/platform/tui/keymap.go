package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tapball/internal/core"
)

type actionBinding struct {
	key.Binding
	action core.Action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	key.Binding
	action MenuAction
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// The same bindings drive the help lines, so the two never disagree.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	quit := key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))
	return &KeyMapper{
		quit: quit,
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("↑", "easier")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("↓", "harder")), core.ActionDown},
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "end/back")), core.ActionBack},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/k", "up")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/j", "down")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/click", "play")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")), MenuActionScoreboard},
			{key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "back")), MenuActionBack},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse reports the cell of a tap. Only left button presses count,
// so a single click never produces two taps.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (col, row int, ok bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, 0, false
	}
	return msg.X, msg.Y, true
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// MenuHelp returns the menu bindings for a help line.
func (km *KeyMapper) MenuHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.menu)+1)
	for _, b := range km.menu {
		if b.action != MenuActionBack {
			out = append(out, b.Binding)
		}
	}
	return append(out, km.quit)
}
