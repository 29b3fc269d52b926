package tapball

import "time"

// TimerID names one of the session's periodic activities.
// Timers due at the same instant fire in ID order.
type TimerID int

const (
	TimerMotion TimerID = iota
	TimerParticles
	TimerCountdown
	TimerPowerUp
	TimerTeleport
	timerCount
)

// String returns the timer name.
func (id TimerID) String() string {
	switch id {
	case TimerMotion:
		return "motion"
	case TimerParticles:
		return "particles"
	case TimerCountdown:
		return "countdown"
	case TimerPowerUp:
		return "powerup"
	case TimerTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// FireFunc runs when a timer elapses. A positive return value becomes the
// timer's next interval; zero keeps the current one.
type FireFunc func() time.Duration

type timer struct {
	armed    bool
	interval time.Duration
	elapsed  time.Duration
	fire     FireFunc
}

// Scheduler drives the session's periodic activities on logical time.
// Hosts advance it from their own clock so tests stay deterministic.
type Scheduler struct {
	timers [timerCount]timer
	epoch  uint64 // Bumped by CancelAll so in-flight Advance calls stop
}

// Arm starts or restarts a timer. The first fire happens after interval.
func (s *Scheduler) Arm(id TimerID, interval time.Duration, fire FireFunc) {
	if interval <= 0 || fire == nil {
		return
	}
	s.timers[id] = timer{armed: true, interval: interval, fire: fire}
}

// Cancel stops a single timer.
func (s *Scheduler) Cancel(id TimerID) {
	s.timers[id].armed = false
}

// CancelAll stops every timer, including ones due later in a running Advance.
func (s *Scheduler) CancelAll() {
	for i := range s.timers {
		s.timers[i].armed = false
	}
	s.epoch++
}

// Armed reports whether a timer is running.
func (s *Scheduler) Armed(id TimerID) bool {
	return s.timers[id].armed
}

// Active returns the number of running timers.
func (s *Scheduler) Active() int {
	n := 0
	for i := range s.timers {
		if s.timers[i].armed {
			n++
		}
	}
	return n
}

// Advance moves logical time forward by dt, firing due timers in time order.
// A timer that is due several times fires several times; timers due at the
// same instant fire in ID order. A fire that cancels everything stops the
// fires due later in the same Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	epoch := s.epoch
	left := dt
	for {
		next, wait := s.nextDue()
		if next < 0 || wait > left {
			s.elapse(left)
			return
		}
		s.elapse(wait)
		left -= wait

		t := &s.timers[next]
		t.elapsed = 0
		if iv := t.fire(); iv > 0 && t.armed {
			t.interval = iv
		}
		if s.epoch != epoch {
			return
		}
	}
}

// nextDue returns the armed timer that fires first and how long until it does.
// It returns -1 when nothing is armed.
func (s *Scheduler) nextDue() (TimerID, time.Duration) {
	next, best := TimerID(-1), time.Duration(0)
	for i := range s.timers {
		t := &s.timers[i]
		if !t.armed {
			continue
		}
		wait := max(t.interval-t.elapsed, 0)
		if next < 0 || wait < best {
			next, best = TimerID(i), wait
		}
	}
	return next, best
}

func (s *Scheduler) elapse(d time.Duration) {
	for i := range s.timers {
		if s.timers[i].armed {
			s.timers[i].elapsed += d
		}
	}
}
