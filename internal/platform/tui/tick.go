// Package tui runs the snake session inside a Bubble Tea program.
// It maps keys and focus events to actions, drives the session clock,
// and draws snapshots to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to poll the session gates.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// pollDuration converts a session poll interval in microseconds.
func pollDuration(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}
