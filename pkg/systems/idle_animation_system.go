package systems

import (
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// idleWiggleScale 摆动时的最大放大量
const idleWiggleScale = 0.2

// IdleAnimationSystem 可捕获实体的装饰动画
//
// 先从 0 放大到 1（AppearSeconds），之后左右摆动并伴随缩放脉动；
// 带存活时间的实体在最后 AppearSeconds 内缩小到 0。
// 动画只影响朝向和缩放，不影响位置和碰撞。
type IdleAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewIdleAnimationSystem 创建待机动画系统
func NewIdleAnimationSystem(em *ecs.EntityManager) *IdleAnimationSystem {
	return &IdleAnimationSystem{entityManager: em}
}

// Update 推进待机动画
func (s *IdleAnimationSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.IdleAnimationComponent, *components.ScaleComponent](s.entityManager)
	for _, id := range entities {
		idle, _ := ecs.GetComponent[*components.IdleAnimationComponent](s.entityManager, id)
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
		idle.Elapsed += dt

		k := idleScale(idle)
		if lt, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok && idle.AppearSeconds > 0 {
			remaining := lt.MaxLifetime - lt.CurrentLifetime
			if remaining < idle.AppearSeconds {
				k *= utils.Clamp(remaining/idle.AppearSeconds, 0, 1)
			}
		}
		scale.ScaleX, scale.ScaleY = k, k

		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
			facing.Radians = idleWiggle(idle)
		}
	}
}

func idleScale(idle *components.IdleAnimationComponent) float64 {
	if idle.Elapsed < idle.AppearSeconds {
		return utils.Clamp(idle.Elapsed/idle.AppearSeconds, 0, 1)
	}
	if idle.WigglePeriod <= 0 {
		return 1
	}
	u := (idle.Elapsed - idle.AppearSeconds) / idle.WigglePeriod
	// 每个周期放大-缩回两次
	return 1 + idleWiggleScale*(1-math.Cos(4*math.Pi*u))/2
}

func idleWiggle(idle *components.IdleAnimationComponent) float64 {
	if idle.Elapsed < idle.AppearSeconds || idle.WigglePeriod <= 0 {
		return 0
	}
	u := (idle.Elapsed - idle.AppearSeconds) / idle.WigglePeriod
	return -idle.WiggleAngle * math.Sin(2*math.Pi*u)
}
