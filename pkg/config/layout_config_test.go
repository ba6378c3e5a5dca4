package config

import (
	"math"
	"testing"

	"github.com/decker502/conga/pkg/utils"
)

func TestScreenToWorld(t *testing.T) {
	visible := utils.NewRect(1000, 192, 2048, 1152)

	tests := []struct {
		name   string
		sx, sy float64
		want   utils.Vector2
	}{
		{"top-left", 0, 0, utils.Vec2(1000, 192)},
		{"center", GameWindowWidth / 2, GameWindowHeight / 2, utils.Vec2(2024, 768)},
		{"bottom-right", GameWindowWidth, GameWindowHeight, utils.Vec2(3048, 1344)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToWorld(tt.sx, tt.sy, GameWindowWidth, GameWindowHeight, visible)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("ScreenToWorld(%v,%v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}

			sx, sy := WorldToScreen(got, GameWindowWidth, GameWindowHeight, visible)
			if math.Abs(sx-tt.sx) > 1e-9 || math.Abs(sy-tt.sy) > 1e-9 {
				t.Errorf("WorldToScreen round trip = (%v,%v), want (%v,%v)", sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestScreenToWorldDegenerate(t *testing.T) {
	visible := utils.NewRect(0, 0, 100, 100)
	if got := ScreenToWorld(10, 10, 0, 0, visible); got != visible.Center() {
		t.Errorf("zero-size screen should map to visible center, got %v", got)
	}
	if got := WorldScale(GameWindowWidth, utils.Rect{}); got != 1 {
		t.Errorf("WorldScale with empty rect = %v, want 1", got)
	}
	if got := WorldScale(1024, utils.NewRect(0, 0, 2048, 1152)); got != 0.5 {
		t.Errorf("WorldScale = %v, want 0.5", got)
	}
}
