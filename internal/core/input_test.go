package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionAttack)
	f.Set(ActionNone)
	if !f.Has(ActionAttack) {
		t.Error("Set(ActionAttack) not recorded")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		dx, dy  int
	}{
		{"none", nil, 0, 0},
		{"left", []Action{ActionLeft}, -1, 0},
		{"down right", []Action{ActionDown, ActionRight}, 1, 1},
		{"opposite cancels", []Action{ActionLeft, ActionRight, ActionUp}, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			dx, dy := f.Direction()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Direction() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionExit.String() != "Exit" {
		t.Errorf("ActionExit.String() = %q", ActionExit.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v", got)
	}
	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() with zero rate = %v", got)
	}

	resized := cfg.WithSize(100, 30)
	if resized.ScreenW != 100 || resized.ScreenH != 30 || cfg.ScreenW != 80 {
		t.Error("WithSize should return a resized copy")
	}
}
