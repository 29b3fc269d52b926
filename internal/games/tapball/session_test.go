package tapball

import "testing"

func TestSessionLifecycle(t *testing.T) {
	var s Session

	if s.Award(1) {
		t.Error("Award should be ignored before Start")
	}
	if s.End() {
		t.Error("End should be a no-op before Start")
	}

	if !s.Start(3) {
		t.Fatal("Start from NotStarted should succeed")
	}
	if s.Start(3) {
		t.Error("Start while Active should fail")
	}
	if s.SetDifficulty(DifficultyHard) {
		t.Error("difficulty should be fixed while Active")
	}

	s.Award(1)
	s.Award(10)
	s.Award(-5)
	if s.Score != 11 {
		t.Errorf("Score = %d, expected 11", s.Score)
	}

	if !s.End() {
		t.Fatal("first End should succeed")
	}
	if s.End() {
		t.Error("second End should be a no-op")
	}
	if s.Award(1) || s.Score != 11 {
		t.Errorf("score changed after End: %d", s.Score)
	}

	// Direct restart from Ended
	if !s.Start(3) || s.Score != 0 || s.Remaining != 3 {
		t.Errorf("restart = %+v, expected a fresh Active session", s)
	}
}

func TestSessionCountdownNeverNegative(t *testing.T) {
	s := Session{}
	s.Start(2)

	if s.Countdown() {
		t.Error("countdown expired early")
	}
	if !s.Countdown() {
		t.Error("countdown should expire at 0")
	}
	s.Remaining = 0
	s.Countdown()
	if s.Remaining != 0 {
		t.Errorf("Remaining = %d, expected 0", s.Remaining)
	}
}

func TestDifficultyStepping(t *testing.T) {
	tests := []struct {
		d          Difficulty
		prev, next Difficulty
	}{
		{DifficultyEasy, DifficultyEasy, DifficultyMedium},
		{DifficultyMedium, DifficultyEasy, DifficultyHard},
		{DifficultyHard, DifficultyMedium, DifficultyHard},
	}

	for _, tc := range tests {
		if got := tc.d.Prev(); got != tc.prev {
			t.Errorf("%s.Prev() = %s, expected %s", tc.d, got, tc.prev)
		}
		if got := tc.d.Next(); got != tc.next {
			t.Errorf("%s.Next() = %s, expected %s", tc.d, got, tc.next)
		}
		if got := DifficultyFromPreset(tc.d.Preset()); got != tc.d {
			t.Errorf("preset round trip of %s = %s", tc.d, got)
		}
	}
}
