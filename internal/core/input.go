package core

// Action is a semantic intent derived from a key press.
// Games react to actions and never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - walk up / previous menu item
	ActionDown           // Down arrow - walk down / next menu item
	ActionLeft           // Left arrow - walk left / decrease a value
	ActionRight          // Right arrow - walk right / increase a value
	ActionAttack         // Space, F - shoot a fireball
	ActionPause          // Esc in game - pause/resume
	ActionExit           // S - leave the level (only honoured while paused)
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Esc, B - back to the previous screen
	ActionQuit           // Q, Ctrl+C - exit the program
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionAttack:  "Attack",
	ActionPause:   "Pause",
	ActionExit:    "Exit",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Direction returns the horizontal and vertical walk intent of the frame,
// each in -1..1. Opposite keys in the same frame cancel out.
func (f InputFrame) Direction() (dx, dy int) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}
