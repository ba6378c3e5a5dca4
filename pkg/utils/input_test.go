package utils

import (
	"testing"
)

func TestPointerTrackerInitialState(t *testing.T) {
	var pt PointerTracker

	if pt.IsHeld() {
		t.Error("Expected IsHeld to be false initially")
	}
	if ok, _, _ := pt.Update(false, 10, 10); ok {
		t.Error("Released pointer should not produce a target")
	}
}

func TestPointerTrackerSequence(t *testing.T) {
	type frame struct {
		pressed bool
		x, y    int
		want    bool
	}

	tests := []struct {
		name   string
		frames []frame
	}{
		{
			name: "press emits once while stationary",
			frames: []frame{
				{true, 100, 200, true},
				{true, 100, 200, false},
				{true, 100, 200, false},
			},
		},
		{
			name: "drag emits on every move",
			frames: []frame{
				{true, 100, 200, true},
				{true, 110, 200, true},
				{true, 110, 210, true},
				{true, 110, 210, false},
			},
		},
		{
			name: "release then press at same spot emits again",
			frames: []frame{
				{true, 50, 50, true},
				{false, 50, 50, false},
				{true, 50, 50, true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pt PointerTracker
			for i, f := range tt.frames {
				got, x, y := pt.Update(f.pressed, f.x, f.y)
				if got != f.want {
					t.Fatalf("frame %d: Update(%v,%d,%d) = %v, want %v", i, f.pressed, f.x, f.y, got, f.want)
				}
				if got && (x != f.x || y != f.y) {
					t.Errorf("frame %d: position (%d,%d), want (%d,%d)", i, x, y, f.x, f.y)
				}
			}
		})
	}
}

func TestPointerTrackerReset(t *testing.T) {
	var pt PointerTracker
	pt.Update(true, 1, 2)
	pt.Reset()

	if pt.IsHeld() {
		t.Error("Expected IsHeld to be false after reset")
	}
	if ok, _, _ := pt.Update(true, 1, 2); !ok {
		t.Error("Expected press after reset to emit a target")
	}
}
