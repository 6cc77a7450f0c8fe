package core

import "strings"

// Action is a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionJump           // Up arrow, W, K, Space
	ActionPause          // P, Esc while playing
	ActionRestart        // R
	ActionBack           // Esc, B
	ActionQuit           // Q, Ctrl+C

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions held or triggered during one frame.
// The zero value is an empty frame and frames are copied by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Unset clears a single action.
func (f *InputFrame) Unset(a Action) {
	if a < actionCount {
		f.bits &^= 1 << a
	}
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions returns the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String lists the active actions joined by "+", or "None".
func (f InputFrame) String() string {
	acts := f.Actions()
	if len(acts) == 0 {
		return ActionNone.String()
	}
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
