package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func applied(h *holdTracker, now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	h.Apply(&frame, now)
	return frame
}

func TestHoldTrackerWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(150 * time.Millisecond)
	h.Press(core.ActionRight, t0)

	tests := []struct {
		at       time.Duration
		expected bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{149 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{300 * time.Millisecond, false},
	}

	for _, tc := range tests {
		got := applied(h, t0.Add(tc.at)).Has(core.ActionRight)
		if got != tc.expected {
			t.Errorf("at %v: Right held = %v, expected %v", tc.at, got, tc.expected)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(150 * time.Millisecond)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionLeft, t0.Add(100*time.Millisecond))

	if !h.Held(core.ActionLeft, t0.Add(200*time.Millisecond)) {
		t.Error("a repeat should extend the hold")
	}
	if h.Held(core.ActionLeft, t0.Add(250*time.Millisecond)) {
		t.Error("hold should end one window after the last repeat")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(time.Second)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionJump, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := applied(h, t0.Add(20*time.Millisecond))
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) {
		t.Errorf("expected right and jump held, got %v", frame)
	}
}

func TestHoldTrackerShortPressSeenOnce(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(10 * time.Millisecond)
	h.Press(core.ActionJump, t0)

	// The first frame comes after the window already ran out
	if !applied(h, t0.Add(50*time.Millisecond)).Has(core.ActionJump) {
		t.Error("a press should reach at least one frame")
	}
	if applied(h, t0.Add(60*time.Millisecond)).Has(core.ActionJump) {
		t.Error("an expired press should not be applied twice")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(time.Second)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionJump, t0)
	h.ReleaseAll()

	if frame := applied(h, t0); !frame.Empty() {
		t.Errorf("expected nothing held, got %v", frame)
	}
}

func TestFrameClock(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := &frameClock{nominal: time.Second / 60}

	if got := c.Elapsed(t0); got != time.Second/60 {
		t.Errorf("first frame = %v, expected nominal tick", got)
	}
	if got := c.Elapsed(t0.Add(40 * time.Millisecond)); got != 40*time.Millisecond {
		t.Errorf("second frame = %v, expected 40ms", got)
	}
	if got := c.Elapsed(t0); got != time.Second/60 {
		t.Errorf("clock going backwards = %v, expected nominal tick", got)
	}

	c.Reset()
	if got := c.Elapsed(t0.Add(time.Hour)); got != time.Second/60 {
		t.Errorf("after reset = %v, expected nominal tick", got)
	}
}
