// Package tui provides the Bubble Tea host for Tap the Ball.
// It drives the game clock, maps keys and mouse clicks, and paints the screen buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain so a replaced game model ignores stale ticks.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns a fresh tick chain identifier.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
