package systems

import (
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

func TestReflect(t *testing.T) {
	bounds := utils.NewRect(0, 0, 100, 50)
	tests := []struct {
		name     string
		position utils.Vector2
		velocity utils.Vector2
		want     utils.Vector2
	}{
		{"inside", utils.Vec2(50, 25), utils.Vec2(10, 10), utils.Vec2(10, 10)},
		{"right edge", utils.Vec2(100, 25), utils.Vec2(10, 5), utils.Vec2(-10, 5)},
		{"past top", utils.Vec2(50, 60), utils.Vec2(3, 7), utils.Vec2(3, -7)},
		{"corner", utils.Vec2(-1, -1), utils.Vec2(-4, -4), utils.Vec2(4, 4)},
		{"at rest on edge", utils.Vec2(100, 50), utils.Vec2(0, 0), utils.Vec2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflect(tt.position, tt.velocity, bounds); got != tt.want {
				t.Errorf("Reflect: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampLeadingEdge(t *testing.T) {
	bounds := utils.NewRect(200, 0, 100, 100)

	p, v, clamped := ClampLeadingEdge(utils.Vec2(150, 40), utils.Vec2(-30, 5), bounds)
	if !clamped {
		t.Fatal("position left of min should be clamped")
	}
	if p.X != 200 || p.Y != 40 {
		t.Errorf("clamped position: got %v, want (200,40)", p)
	}
	if v.X != 30 || v.Y != 5 {
		t.Errorf("clamped velocity: got %v, want (30,5)", v)
	}

	_, _, clamped = ClampLeadingEdge(utils.Vec2(250, 40), utils.Vec2(-30, 5), bounds)
	if clamped {
		t.Error("position inside bounds should not be clamped")
	}
}

func TestBoundarySystemIdempotentAtRest(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestPlayer(t, em, utils.Vec2(0, 10))
	bounds := utils.NewRect(0, 10, 100, 100)
	sys := NewBoundarySystem(em)

	for i := 0; i < 5; i++ {
		sys.Update(bounds)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if pos.Vector2 != utils.Vec2(0, 10) || !vel.IsZero() {
		t.Errorf("resting actor moved: pos %v vel %v", pos.Vector2, vel.Vector2)
	}
}

func TestBoundarySystemScrolledPastStationaryActor(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestPlayer(t, em, utils.Vec2(50, 50))
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	vel.Vector2 = utils.Vec2(-20, 0)

	// 镜头已经把左边界推到 80
	NewBoundarySystem(em).Update(utils.NewRect(80, 0, 100, 100))

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 80 {
		t.Errorf("x: got %v, want 80", pos.X)
	}
	if vel.X != 20 {
		t.Errorf("vx: got %v, want 20", vel.X)
	}
}
