package systems

import (
	"math"
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/utils"
)

func TestInvincibilityBlinkAndExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestPlayer(t, em, utils.Vec2(0, 0))
	sys := NewInvincibilitySystem(em)
	actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)

	sys.Start(id)
	if !actor.Invincible {
		t.Fatal("Start should set the invincible flag")
	}

	// 3 秒 10 次闪烁: 每段 0.3 秒，后半段隐藏
	tests := []struct {
		dt          float64
		wantVisible bool
	}{
		{0.1, true},   // 0.10
		{0.1, false},  // 0.20
		{0.15, true},  // 0.35
		{0.15, false}, // 0.50
	}
	for i, tt := range tests {
		sys.Update(tt.dt)
		if actor.Visible != tt.wantVisible {
			t.Errorf("step %d: visible %v, want %v", i, actor.Visible, tt.wantVisible)
		}
		if !actor.Invincible {
			t.Errorf("step %d: invincibility ended early", i)
		}
	}

	sys.Update(3)
	if actor.Invincible || !actor.Visible {
		t.Errorf("after window: invincible=%v visible=%v", actor.Invincible, actor.Visible)
	}
}

func TestScatterAnimationRemovesEntity(t *testing.T) {
	em, cs, ids := newConvoy(t, utils.Vec2(500, 500))
	cs.Scatter(1)
	sys := NewScatterSystem(em)

	sys.Update(0.5)
	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, ids[0])
	if !almostEqual(scale.ScaleX, 0.5) {
		t.Errorf("half-way scale: got %v, want 0.5", scale.ScaleX)
	}
	facing, _ := ecs.GetComponent[*components.FacingComponent](em, ids[0])
	if !almostEqual(facing.Radians, 2*math.Pi) {
		t.Errorf("half-way spin: got %v, want 2pi", facing.Radians)
	}
	if em.IsMarkedForDestroy(ids[0]) {
		t.Error("removed before the animation finished")
	}

	sys.Update(0.5)
	sc, _ := ecs.GetComponent[*components.ScatterComponent](em, ids[0])
	if got := position(em, ids[0]); !vecAlmostEqual(got, sc.To) {
		t.Errorf("final position: got %v, want %v", got, sc.To)
	}
	if !em.IsMarkedForDestroy(ids[0]) {
		t.Error("scattered link should be removed when the animation ends")
	}
}

func TestIdleAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	id, _ := entities.NewCaptureEntity(em, cfg, utils.Vec2(0, 0))
	sys := NewIdleAnimationSystem(em)
	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)

	sys.Update(0.25)
	if !almostEqual(scale.ScaleX, 0.5) {
		t.Errorf("appear scale: got %v, want 0.5", scale.ScaleX)
	}

	sys.Update(0.25 + 0.25) // 摆动开始后 0.25 个周期
	if !almostEqual(scale.ScaleX, 1+idleWiggleScale) {
		t.Errorf("wiggle peak scale: got %v, want %v", scale.ScaleX, 1+idleWiggleScale)
	}
	facing, _ := ecs.GetComponent[*components.FacingComponent](em, id)
	if !almostEqual(facing.Radians, -entities.CaptureWiggleAngle) {
		t.Errorf("wiggle angle: got %v", facing.Radians)
	}

	// 存活时间最后阶段缩小
	lt, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	lt.CurrentLifetime = lt.MaxLifetime - 0.1
	sys.Update(0)
	if scale.ScaleX >= 1 {
		t.Errorf("expiring capture should shrink, scale %v", scale.ScaleX)
	}
}
