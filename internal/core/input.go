package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The simulation only understands jump, slide, and pause; restart
// and quit are handled by the platform layer.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump / double jump / cancel slide
	ActionSlide          // S, Down - slide under flying obstacles
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over (platform level)
	ActionQuit           // Q, Ctrl+C - exit (platform level)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input intents queued for a single simulation
// tick. Intents that are invalid in the current state (slide while airborne,
// jump while dead) are silent no-ops inside the simulation.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
