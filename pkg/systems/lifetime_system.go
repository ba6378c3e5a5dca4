package systems

import (
	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 未被捕获的可捕获实体和横穿结束的危险实体在这里被移除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
//
// 返回本次过期（被标记删除）的实体ID
func (s *LifetimeSystem) Update(deltaTime float64) []ecs.EntityID {
	var expired []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime < lifetime.MaxLifetime {
			continue
		}

		lifetime.IsExpired = true
		s.entityManager.DestroyEntity(id)
		expired = append(expired, id)
	}
	return expired
}
