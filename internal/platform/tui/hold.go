package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// holdTracker turns key presses into held actions.
// Terminals report presses and auto-repeats but never releases, so each press
// keeps its action down for a short window. Repeats extend the window.
type holdTracker struct {
	window time.Duration
	held   map[core.Action]*hold
}

type hold struct {
	until   time.Time
	applied bool // Whether a frame has seen this press
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		held:   make(map[core.Action]*hold),
	}
}

// opposite returns the action released by pressing a, if any.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press holds a until now plus the window.
func (h *holdTracker) Press(a core.Action, now time.Time) {
	if o := opposite(a); o != core.ActionNone {
		delete(h.held, o)
	}
	h.held[a] = &hold{until: now.Add(h.window)}
}

// ReleaseAll drops every held action.
func (h *holdTracker) ReleaseAll() {
	clear(h.held)
}

// Held reports whether a is held at now.
func (h *holdTracker) Held(a core.Action, now time.Time) bool {
	p, ok := h.held[a]
	return ok && now.Before(p.until)
}

// Apply sets every action held at now on frame and forgets expired ones.
// A press is visible for at least one frame even if the window has passed.
func (h *holdTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, p := range h.held {
		if now.Before(p.until) || !p.applied {
			frame.Set(a)
			p.applied = true
		}
		if !now.Before(p.until) {
			delete(h.held, a)
		}
	}
}
