// Package tui provides the Bubble Tea integration for snake: the board
// renderer, the tick clock, key bindings and the menu/game session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg asks the game model to advance the engine by one tick.
// gen identifies the clock that scheduled it; a tick from an older clock is
// dropped, so pausing or restarting never leaves two clocks running.
type tickMsg struct {
	gen  int
	time time.Time
}

// tickCmd schedules one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, time: t}
	})
}

var clockSeq atomic.Int64

// nextClock returns a generation number no other clock in the process uses.
func nextClock() int {
	return int(clockSeq.Add(1))
}
