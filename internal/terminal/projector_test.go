package terminal

import (
	"math"
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/sim"
	"github.com/decker502/conga/pkg/utils"
)

func TestProjectorRoundTrip(t *testing.T) {
	p := Projector{Cols: 80, Rows: 23, Visible: utils.NewRect(500, 192, 2048, 1152)}

	tests := []struct {
		name     string
		col, row int
	}{
		{"top-left", 0, 0},
		{"middle", 40, 11},
		{"bottom-right", 79, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := p.WorldOf(tt.col, tt.row)
			col, row, ok := p.CellOf(w)
			if !ok || col != tt.col || row != tt.row {
				t.Errorf("CellOf(WorldOf(%d,%d)) = (%d,%d,%v)", tt.col, tt.row, col, row, ok)
			}
		})
	}
}

func TestProjectorOutside(t *testing.T) {
	p := Projector{Cols: 10, Rows: 10, Visible: utils.NewRect(0, 0, 100, 100)}

	for _, pos := range []utils.Vector2{utils.Vec2(-1, 50), utils.Vec2(50, 100), utils.Vec2(100, 0)} {
		if _, _, ok := p.CellOf(pos); ok {
			t.Errorf("CellOf(%v) should be outside the grid", pos)
		}
	}

	empty := Projector{Visible: utils.NewRect(0, 0, 100, 100)}
	if _, _, ok := empty.CellOf(utils.Vec2(1, 1)); ok {
		t.Error("empty grid should contain nothing")
	}
	if got := empty.WorldOf(0, 0); got != utils.Vec2(50, 50) {
		t.Errorf("empty grid WorldOf = %v, want visible center", got)
	}
}

func TestCellsPlayerOnTop(t *testing.T) {
	p := Projector{Cols: 10, Rows: 10, Visible: utils.NewRect(0, 0, 100, 100)}
	snap := &sim.Snapshot{Actors: []sim.ActorSnapshot{
		{ID: 1, Kind: components.KindBackgroundTile, X: 5, Y: 5, Visible: true},
		{ID: 2, Kind: components.KindPlayer, X: 55, Y: 55, Visible: true},
		{ID: 3, Kind: components.KindHazard, X: 55, Y: 55, Visible: true},
		{ID: 4, Kind: components.KindCapture, X: 15, Y: 15, Visible: false},
		{ID: 5, Kind: components.KindCapture, X: 500, Y: 15, Visible: true},
	}}

	cells := p.Cells(snap)
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2: %+v", len(cells), cells)
	}
	last := cells[len(cells)-1]
	if last.Kind != components.KindPlayer || last.Rune != '@' || last.Col != 5 || last.Row != 5 {
		t.Errorf("player cell = %+v, want '@' at (5,5) drawn last", last)
	}
}

func TestVolumeExponent(t *testing.T) {
	if got := volumeExponent(0); got != 0 {
		t.Errorf("volumeExponent(0) = %v, want 0", got)
	}
	if got, want := volumeExponent(1), math.Log2(0.3); math.Abs(got-want) > 1e-12 {
		t.Errorf("volumeExponent(1) = %v, want %v", got, want)
	}
}
