package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// mapKey translates a key press into a semantic action. Unbound keys map to
// ActionNone.
func mapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case " ", "up", "w", "k":
		return core.ActionJump
	case "down", "s", "j":
		return core.ActionSlide
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "q", "ctrl+c":
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}
