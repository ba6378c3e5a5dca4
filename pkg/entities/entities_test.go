package entities

import (
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewPlayerEntity(em, cfg)
	if err != nil {
		t.Fatalf("NewPlayerEntity: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 400 || pos.Y != 400 {
		t.Errorf("player position: got %+v", pos)
	}
	steer, ok := ecs.GetComponent[*components.SteeringComponent](em, id)
	if !ok || steer.MaxSpeed != 480 || steer.HasTarget {
		t.Errorf("steering: got %+v", steer)
	}
	if kinds := EntitiesOfKind(em, components.KindPlayer); len(kinds) != 1 || kinds[0] != id {
		t.Errorf("player index: got %v", kinds)
	}

	if _, err := NewPlayerEntity(nil, cfg); err == nil {
		t.Error("nil entity manager should fail")
	}
	if _, err := NewPlayerEntity(em, nil); err == nil {
		t.Error("nil config should fail")
	}
}

func TestNewCaptureAndHazard(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	capID, err := NewCaptureEntity(em, cfg, utils.Vec2(10, 20))
	if err != nil {
		t.Fatalf("NewCaptureEntity: %v", err)
	}
	if ecs.HasComponent[*components.VelocityComponent](em, capID) {
		t.Error("capture actors must not move")
	}
	if !ecs.HasComponent[*components.IdleAnimationComponent](em, capID) {
		t.Error("capture actors should idle-animate")
	}
	if lt, ok := ecs.GetComponent[*components.LifetimeComponent](em, capID); !ok || lt.MaxLifetime != 10.5 {
		t.Errorf("capture lifetime: got %+v", lt)
	}

	cfg.Capture.Lifetime = 0
	forever, _ := NewCaptureEntity(em, cfg, utils.Vec2(0, 0))
	if ecs.HasComponent[*components.LifetimeComponent](em, forever) {
		t.Error("lifetime 0 means the capture waits forever")
	}

	hazID, err := NewHazardEntity(em, cfg, utils.Vec2(100, 100), utils.Vec2(-50, 0))
	if err != nil {
		t.Fatalf("NewHazardEntity: %v", err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, hazID)
	if vel.X != -50 {
		t.Errorf("hazard velocity: got %v", vel.Vector2)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, hazID)
	if col.Inset != 20 {
		t.Errorf("hazard inset: got %v, want 20", col.Inset)
	}

	if got := EntitiesOfKind(em, components.KindCapture); len(got) != 2 {
		t.Errorf("capture index: got %v", got)
	}
	if got := EntitiesOfKind(em, components.KindHazard); len(got) != 1 || got[0] != hazID {
		t.Errorf("hazard index: got %v", got)
	}
}

func TestSetKindMovesIndex(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	id, _ := NewCaptureEntity(em, cfg, utils.Vec2(0, 0))

	if !SetKind(em, id, components.KindConvoyLink) {
		t.Fatal("SetKind should succeed on an actor")
	}
	if kind, _ := KindOf(em, id); kind != components.KindConvoyLink {
		t.Errorf("KindOf: got %v, want convoy_link", kind)
	}
	if len(EntitiesOfKind(em, components.KindCapture)) != 0 {
		t.Error("capture index should be empty after retag")
	}
	if got := EntitiesOfKind(em, components.KindConvoyLink); len(got) != 1 || got[0] != id {
		t.Errorf("convoy index: got %v", got)
	}

	bare := em.CreateEntity()
	if SetKind(em, bare, components.KindHazard) {
		t.Error("SetKind on an entity without ActorComponent should fail")
	}
}

func TestNewBackgroundTiles(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	ids, err := NewBackgroundTiles(em, cfg)
	if err != nil {
		t.Fatalf("NewBackgroundTiles: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("tile count: got %d, want 2", len(ids))
	}
	second, _ := ecs.GetComponent[*components.PositionComponent](em, ids[1])
	if second.X != 2048+1024 {
		t.Errorf("second tile center: got %v, want %v", second.X, 2048+1024)
	}
}
