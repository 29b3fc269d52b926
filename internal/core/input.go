package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - previous difficulty on the start screen
	ActionDown           // S, Down arrow - next difficulty on the start screen
	ActionConfirm        // Enter, Space - start a session
	ActionBack           // B, Escape - end the running session early
	ActionRestart        // R key - start again after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the key actions triggered during one simulation tick.
// Pointer taps are not buffered here; hosts deliver them to the game as they arrive.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// TapOutcome reports what a single tap did.
type TapOutcome int

const (
	TapIgnored TapOutcome = iota // No session is running
	TapMiss                      // Session running, nothing hit
	TapBall                      // Ball hit, +1
	TapPowerUp                   // Power-up collected, bonus awarded
)

// String returns a short name used in logs.
func (o TapOutcome) String() string {
	switch o {
	case TapIgnored:
		return "ignored"
	case TapMiss:
		return "miss"
	case TapBall:
		return "ball"
	case TapPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Scored reports whether the tap changed the score.
func (o TapOutcome) Scored() bool {
	return o == TapBall || o == TapPowerUp
}
