package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/utils"
)

// ScatterSpin 散落动画的总旋转量（弧度）
const ScatterSpin = 4 * math.Pi

// AdvanceConvoy 推进车队一步
//
// 每节按链顺序跟随前一节（第一节跟随 leader）在本步移动之前的位置。
// 只有当前跳跃完成后才会发起新的跳跃：方向指向目标，速度为 speed，持续 hopSeconds。
// 已不存在的实体被跳过。
func AdvanceConvoy(em *ecs.EntityManager, chain []ecs.EntityID, leader utils.Vector2, speed, hopSeconds, dt float64) {
	target := leader
	for _, id := range chain {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		link, ok := ecs.GetComponent[*components.ConvoyLinkComponent](em, id)
		if !ok {
			continue
		}

		before := pos.Vector2

		if link.HopRemaining <= 0 {
			link.HopVelocity = Seek(target, pos.Vector2, speed)
			link.HopRemaining = hopSeconds
		}

		moveTime := math.Min(dt, link.HopRemaining)
		pos.Vector2 = Integrate(pos.Vector2, link.HopVelocity, moveTime)
		link.HopRemaining -= dt

		target = before
	}
}

// ConvoySystem 维护车队链（链头到链尾的有序实体ID）
type ConvoySystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
	chain         []ecs.EntityID
}

// NewConvoySystem 创建车队系统
func NewConvoySystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *ConvoySystem {
	return &ConvoySystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// Len 当前链长
func (s *ConvoySystem) Len() int {
	return len(s.chain)
}

// Chain 返回链的副本
func (s *ConvoySystem) Chain() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.chain))
	copy(out, s.chain)
	return out
}

// Append 把可捕获实体转换为车队成员并追加到链尾
//
// 转换时清除速度、待机动画、缩放和存活时间，朝向归零。
func (s *ConvoySystem) Append(id ecs.EntityID) bool {
	if !entities.SetKind(s.entityManager, id, components.KindConvoyLink) {
		return false
	}
	actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
	actor.Tag = components.ConvoyTag
	actor.Visible = true

	ecs.RemoveComponent[*components.VelocityComponent](s.entityManager, id)
	ecs.RemoveComponent[*components.IdleAnimationComponent](s.entityManager, id)
	ecs.RemoveComponent[*components.LifetimeComponent](s.entityManager, id)
	ecs.AddComponent(s.entityManager, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
		facing.Radians = 0
	}
	ecs.AddComponent(s.entityManager, id, &components.ConvoyLinkComponent{})

	s.chain = append(s.chain, id)
	return true
}

// Update 以 leader 为链头推进车队
func (s *ConvoySystem) Update(dt float64, leader utils.Vector2) {
	AdvanceConvoy(s.entityManager, s.chain, leader, s.config.Convoy.Speed, s.config.Convoy.HopSeconds, dt)
}

// Scatter 从链尾移除至多 n 节
//
// 被移除的节清除车队标签，向随机方向飞出并旋转缩小，动画结束后由 ScatterSystem 删除。
// 返回被散落的实体ID（链尾在前）。
func (s *ConvoySystem) Scatter(n int) []ecs.EntityID {
	if n <= 0 || len(s.chain) == 0 {
		return nil
	}
	if n > len(s.chain) {
		n = len(s.chain)
	}

	scattered := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		last := len(s.chain) - 1
		id := s.chain[last]
		s.chain = s.chain[:last]

		s.detach(id)
		scattered = append(scattered, id)
	}

	log.Printf("[ConvoySystem] Scattered %d links, %d remain", len(scattered), len(s.chain))
	return scattered
}

func (s *ConvoySystem) detach(id ecs.EntityID) {
	em := s.entityManager
	if actor, ok := ecs.GetComponent[*components.ActorComponent](em, id); ok {
		actor.Tag = ""
	}
	ecs.RemoveComponent[*components.ConvoyLinkComponent](em, id)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		em.DestroyEntity(id)
		return
	}
	startFacing := 0.0
	if facing, ok := ecs.GetComponent[*components.FacingComponent](em, id); ok {
		startFacing = facing.Radians
	}

	r := s.config.Convoy.ScatterRadius
	offset := utils.Vec2((s.rng.Float64()*2-1)*r, (s.rng.Float64()*2-1)*r)
	ecs.AddComponent(em, id, &components.ScatterComponent{
		From:        pos.Vector2,
		To:          pos.Vector2.Add(offset),
		StartFacing: startFacing,
		Spin:        ScatterSpin,
		Duration:    s.config.Convoy.ScatterSeconds,
	})
}

// RemoveLinkActors 把链上的实体全部移出世界，链长保持不变
// 胜利时调用
func (s *ConvoySystem) RemoveLinkActors() {
	for _, id := range s.chain {
		s.entityManager.DestroyEntity(id)
	}
}
