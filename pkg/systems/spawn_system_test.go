package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/utils"
)

func newSpawnSystem(cfg *config.GameConfig) (*ecs.EntityManager, *SpawnSystem) {
	em := ecs.NewEntityManager()
	return em, NewSpawnSystem(em, cfg, rand.New(rand.NewSource(1)))
}

func TestSpawnTimerResetsWithoutCatchUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em, sys := newSpawnSystem(cfg)
	visible := utils.NewRect(0, 192, 2048, 1152)

	// 一帧 5 秒：两个计时器各触发一次，不补发
	spawned := sys.Update(5, visible)
	if len(spawned) != 2 {
		t.Fatalf("spawned: got %d, want 2", len(spawned))
	}
	if got := sys.Timer(components.KindCapture).Accumulated; got != 0 {
		t.Errorf("capture timer should reset to 0, got %v", got)
	}

	sys.Update(0.5, visible)
	if n := len(entities.EntitiesOfKind(em, components.KindCapture)); n != 1 {
		t.Errorf("capture count after 0.5s: got %d, want 1", n)
	}
	sys.Update(0.5, visible)
	if n := len(entities.EntitiesOfKind(em, components.KindCapture)); n != 2 {
		t.Errorf("capture count after 1.0s: got %d, want 2", n)
	}
}

func TestSpawnPlacement(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em, sys := newSpawnSystem(cfg)
	visible := utils.NewRect(500, 192, 2048, 1152)

	for i := 0; i < 50; i++ {
		p := sys.CapturePosition(visible)
		if !visible.Contains(p) {
			t.Fatalf("capture position %v outside visible rect", p)
		}

		pos, vel := sys.HazardPlacement(visible)
		if pos.X != visible.MaxX()+cfg.Hazard.Width/2 {
			t.Fatalf("hazard x: got %v, want %v", pos.X, visible.MaxX()+cfg.Hazard.Width/2)
		}
		if pos.Y < visible.MinY()+cfg.Hazard.Height/2 || pos.Y > visible.MaxY()-cfg.Hazard.Height/2 {
			t.Fatalf("hazard y %v outside playable band", pos.Y)
		}
		wantSpeed := (visible.Width + cfg.Hazard.Width) / cfg.Hazard.TraverseSeconds
		if vel != utils.Vec2(-wantSpeed, 0) {
			t.Fatalf("hazard velocity: got %v, want (%v,0)", vel, -wantSpeed)
		}
	}

	sys.Update(cfg.Hazard.SpawnInterval, visible)
	hazards := entities.EntitiesOfKind(em, components.KindHazard)
	if len(hazards) != 1 {
		t.Fatalf("hazard count: got %d, want 1", len(hazards))
	}
	lt, ok := ecs.GetComponent[*components.LifetimeComponent](em, hazards[0])
	if !ok || lt.MaxLifetime != cfg.Hazard.TraverseSeconds {
		t.Errorf("hazard should self-destruct after traverse, got %+v", lt)
	}
}

func TestSetSpawnIntervalClamps(t *testing.T) {
	_, sys := newSpawnSystem(config.DefaultGameConfig())

	sys.SetSpawnInterval(components.KindHazard, -3)
	if got := sys.Timer(components.KindHazard).Interval; got != config.MinSpawnInterval {
		t.Errorf("negative interval: got %v, want %v", got, config.MinSpawnInterval)
	}
	sys.SetSpawnInterval(components.KindCapture, 4)
	if got := sys.Timer(components.KindCapture).Interval; got != 4 {
		t.Errorf("interval: got %v, want 4", got)
	}
}

func TestSpawnSystemDisabled(t *testing.T) {
	_, sys := newSpawnSystem(config.DefaultGameConfig())
	sys.SetEnabled(false)
	if spawned := sys.Update(10, utils.NewRect(0, 0, 100, 100)); len(spawned) != 0 {
		t.Errorf("disabled spawner spawned %d actors", len(spawned))
	}
}
