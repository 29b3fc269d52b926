package tapball

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session tracks one timed round: phase, score and remaining time.
type Session struct {
	Phase      Phase
	Score      int
	Remaining  int
	Difficulty Difficulty
}

// Start begins a round with the given countdown budget.
// Starting is allowed only from NotStarted or Ended.
func (s *Session) Start(budget int) bool {
	if s.Phase == PhaseActive {
		return false
	}
	s.Phase = PhaseActive
	s.Score = 0
	s.Remaining = budget
	return true
}

// Award adds points while the round is running.
func (s *Session) Award(points int) bool {
	if s.Phase != PhaseActive || points <= 0 {
		return false
	}
	s.Score += points
	return true
}

// Countdown removes one unit of remaining time and reports whether the round ran out.
func (s *Session) Countdown() bool {
	if s.Phase != PhaseActive {
		return false
	}
	if s.Remaining > 0 {
		s.Remaining--
	}
	return s.Remaining == 0
}

// End finishes the round. Only the first call after Start returns true.
func (s *Session) End() bool {
	if s.Phase != PhaseActive {
		return false
	}
	s.Phase = PhaseEnded
	return true
}

// SetDifficulty changes the difficulty outside a running round.
func (s *Session) SetDifficulty(d Difficulty) bool {
	if s.Phase == PhaseActive {
		return false
	}
	s.Difficulty = d
	return true
}
