package systems

import (
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
)

// InvincibilitySystem 推进无敌窗口倒计时并控制闪烁
type InvincibilitySystem struct {
	entityManager *ecs.EntityManager
}

// NewInvincibilitySystem 创建无敌系统
func NewInvincibilitySystem(em *ecs.EntityManager) *InvincibilitySystem {
	return &InvincibilitySystem{entityManager: em}
}

// Start 让实体进入无敌窗口
func (s *InvincibilitySystem) Start(id ecs.EntityID) {
	inv, ok := ecs.GetComponent[*components.InvincibilityComponent](s.entityManager, id)
	if !ok {
		return
	}
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
	if !ok {
		return
	}
	if inv.Duration <= 0 {
		return
	}
	inv.Remaining = inv.Duration
	actor.Invincible = true
}

// Update 倒计时无敌窗口
//
// 窗口被均分为 BlinkCount 段，每段后半段隐藏；窗口结束时恢复可见并取消无敌。
func (s *InvincibilitySystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.InvincibilityComponent, *components.ActorComponent](s.entityManager)
	for _, id := range entities {
		inv, _ := ecs.GetComponent[*components.InvincibilityComponent](s.entityManager, id)
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		if !actor.Invincible {
			continue
		}

		inv.Remaining -= dt
		if inv.Remaining <= 0 {
			inv.Remaining = 0
			actor.Invincible = false
			actor.Visible = true
			continue
		}

		actor.Visible = blinkVisible(inv.Duration-inv.Remaining, inv.Duration, inv.BlinkCount)
	}
}

// blinkVisible 闪烁相位: 每个时间片的后半段隐藏
func blinkVisible(elapsed, duration float64, blinkCount int) bool {
	if blinkCount <= 0 {
		return true
	}
	slice := duration / float64(blinkCount)
	return math.Mod(elapsed, slice) <= slice/2
}
