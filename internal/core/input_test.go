package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Errorf("expected Left and Jump, got %v", f)
	}
	if f.Has(ActionRight) || f.Has(ActionNone) {
		t.Errorf("unexpected actions in %v", f)
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Unset should clear Left")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("Clear should empty the frame, got %v", f)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRight) {
		t.Error("clone should keep its actions after the original is cleared")
	}
}

func TestInputFrameString(t *testing.T) {
	tests := []struct {
		actions  []Action
		expected string
	}{
		{nil, "None"},
		{[]Action{ActionJump}, "Jump"},
		{[]Action{ActionJump, ActionLeft}, "Left+Jump"},
		{[]Action{ActionQuit, ActionPause, ActionRight}, "Right+Pause+Quit"},
	}

	for _, tc := range tests {
		var f InputFrame
		for _, a := range tc.actions {
			f.Set(a)
		}
		if got := f.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("got %q", ActionRestart.String())
	}
	if Action(200).String() != "Unknown" {
		t.Errorf("got %q", Action(200).String())
	}
}
