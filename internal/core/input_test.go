package core

import "testing"

func TestInputFramePressImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionFire)
	f.Hold(ActionLeft)

	if !f.Pressed(ActionFire) || !f.Held(ActionFire) {
		t.Error("pressed action should also be held")
	}
	if f.Pressed(ActionLeft) {
		t.Error("held-only action should not be pressed")
	}
	if !f.Held(ActionLeft) {
		t.Error("Left should be held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Held(ActionUp) || f.Pressed(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionUp)
	if !f.Pressed(ActionUp) {
		t.Error("zero frame should accept presses")
	}
}

func TestActionString(t *testing.T) {
	for _, a := range Actions {
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
