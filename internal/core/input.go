package core

// Action represents a semantic game action, abstracted from physical keys.
// Frontends translate their own key events into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - steer left (held)
	ActionRight        // Right arrow, D - steer right (held)
	ActionUp           // Up arrow, W - steer up (held)
	ActionDown         // Down arrow, S - steer down (held)
	ActionStart        // Space, Enter - start from the menu, leave game over
	ActionPause        // P - pause/unpause while playing
	ActionBack         // Esc, B - back to the game picker
	ActionQuit         // Q, Ctrl+C - close the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Directional reports whether the action steers the player.
func (a Action) Directional() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame is the input state for one frame. Pressed holds discrete key
// presses that happened since the previous frame; Held holds the keys that
// are currently down.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks a discrete press of a for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks a as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if a is currently held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}
