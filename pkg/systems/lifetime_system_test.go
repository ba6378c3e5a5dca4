package systems

import (
	"testing"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 2.0})

	if expired := system.Update(1.5); len(expired) != 0 {
		t.Errorf("expired too early: %v", expired)
	}
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 1.5 || lifetime.IsExpired {
		t.Errorf("after 1.5s: got %+v", lifetime)
	}

	expired := system.Update(0.5)
	if len(expired) != 1 || expired[0] != id {
		t.Fatalf("expired: got %v, want [%d]", expired, id)
	}
	// 同一实体只报告一次
	if again := system.Update(1); len(again) != 0 {
		t.Errorf("expired entity reported twice: %v", again)
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("expired entity should be removed")
	}
}
