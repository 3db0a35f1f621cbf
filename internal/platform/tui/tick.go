// Package tui provides the Bubble Tea integration for the runner: the
// terminal UI loop, input mapping, overlays, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation tick. The wall-clock timestamp it carries is
// what the simulation's delta time is derived from.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
