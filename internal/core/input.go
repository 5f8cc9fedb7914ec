package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up (menus)
	ActionDown           // S, Down arrow - move cursor down (menus)
	ActionLeft           // A, Left arrow, H - move palette cursor left
	ActionRight          // D, Right arrow, L - move palette cursor right
	ActionConfirm        // Enter, Space - apply the selected color
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Besides semantic actions it can carry a direct color pick (digit keys)
// and a raw click position; the game owns the hit test against its layout.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// ColorPick is a directly selected palette index, or -1 if none.
	ColorPick int

	// Clicked reports whether a pointer click happened this frame;
	// ClickX/ClickY are its screen coordinates.
	Clicked bool
	ClickX  int
	ClickY  int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:   make(map[Action]bool),
		ColorPick: -1,
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

// PickColor records a direct palette index selection for this frame.
func (f *InputFrame) PickColor(idx int) {
	f.ColorPick = idx
}

// SetClick records a pointer click at screen coordinates (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Clicked = true
	f.ClickX = x
	f.ClickY = y
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.ColorPick = -1
	f.Clicked = false
	f.ClickX = 0
	f.ClickY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.ColorPick = f.ColorPick
	clone.Clicked = f.Clicked
	clone.ClickX = f.ClickX
	clone.ClickY = f.ClickY
	return clone
}
