package utils

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	var c FrameClock
	start := time.Unix(1000, 0)

	steps := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"first call is zero", start, 0},
		{"regular frame", start.Add(16 * time.Millisecond), 0.016},
		{"long pause is not clamped", start.Add(2016 * time.Millisecond), 2},
		{"clock going backwards is zero", start, 0},
	}
	for _, tt := range steps {
		if got := c.Delta(tt.now); !almostEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	c.Reset()
	if got := c.Delta(start.Add(time.Hour)); got != 0 {
		t.Errorf("first call after Reset: got %v, want 0", got)
	}
}
