package systems

import (
	"log"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/utils"
)

// CollisionEvent 一次玩家与其他实体的碰撞
type CollisionEvent struct {
	Kind  components.ActorKind // 被撞实体种类（Capture 或 Hazard）
	Other ecs.EntityID
}

// HitBox 以实体位置为中心的碰撞盒（已应用 Inset）
func HitBox(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	box := utils.RectFromCenter(pos.Vector2, col.Width, col.Height)
	if col.Inset > 0 {
		box = box.Inset(col.Inset, col.Inset)
	}
	return box, true
}

// CheckCollisions 检测玩家与所有可捕获/危险实体的 AABB 碰撞
//
// 先按ID升序检测可捕获实体，再检测危险实体。已标记删除的实体不参与检测。
func CheckCollisions(em *ecs.EntityManager, player ecs.EntityID) []CollisionEvent {
	playerBox, ok := HitBox(em, player)
	if !ok {
		return nil
	}

	var events []CollisionEvent
	for _, kind := range []components.ActorKind{components.KindCapture, components.KindHazard} {
		for _, id := range entities.EntitiesOfKind(em, kind) {
			if id == player || em.IsMarkedForDestroy(id) {
				continue
			}
			box, ok := HitBox(em, id)
			if !ok {
				continue
			}
			if playerBox.Intersects(box) {
				events = append(events, CollisionEvent{Kind: kind, Other: id})
			}
		}
	}
	return events
}

// CollisionSystem 检测碰撞并执行状态转换
//
// 可捕获实体 → 车队成员；危险实体 → 扣命、无敌、散落车尾。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	gameState     *game.GameState
	convoy        *ConvoySystem
	invincibility *InvincibilitySystem
	listener      game.EventListener
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（散落数量、危险实体是否撞后移除）
//   - gs: 本局游戏状态
//   - convoy: 车队系统（捕获追加、散落）
//   - inv: 无敌系统
//   - listener: 通知接收方，不能为 nil（可以是空的 Dispatcher）
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, gs *game.GameState,
	convoy *ConvoySystem, inv *InvincibilitySystem, listener game.EventListener) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		config:        cfg,
		gameState:     gs,
		convoy:        convoy,
		invincibility: inv,
		listener:      listener,
	}
}

// Update 检测并处理本帧的所有碰撞，返回检测到的事件
func (s *CollisionSystem) Update(player ecs.EntityID) []CollisionEvent {
	events := CheckCollisions(s.entityManager, player)
	s.Apply(player, events)
	return events
}

// Apply 按顺序执行碰撞事件的状态转换
//
// 同一帧内多个可捕获实体全部被捕获；第一个危险碰撞生效后玩家进入无敌，
// 同帧其余危险碰撞被忽略。终态下不做任何处理。
func (s *CollisionSystem) Apply(player ecs.EntityID, events []CollisionEvent) {
	for _, ev := range events {
		if s.gameState.IsOver() {
			return
		}
		switch ev.Kind {
		case components.KindCapture:
			s.capture(ev.Other)
		case components.KindHazard:
			s.hazardHit(player, ev.Other)
		}
	}
}

func (s *CollisionSystem) capture(id ecs.EntityID) {
	if !s.convoy.Append(id) {
		return
	}
	s.gameState.CapturedTotal++
	s.gameState.RecordConvoyLength(s.convoy.Len())
	log.Printf("[CollisionSystem] Captured entity %d, convoy length %d", id, s.convoy.Len())
	s.listener.OnCaptureAcquired(id)
}

func (s *CollisionSystem) hazardHit(player, hazard ecs.EntityID) {
	actor, ok := ecs.GetComponent[*components.ActorComponent](s.entityManager, player)
	if !ok || actor.Invincible {
		return
	}

	s.gameState.LoseLife()
	s.invincibility.Start(player)
	scattered := s.convoy.Scatter(s.config.Convoy.ScatterCount)

	if s.config.Hazard.RemoveOnHit {
		s.entityManager.DestroyEntity(hazard)
	}

	log.Printf("[CollisionSystem] Hazard %d struck player, lives left %d", hazard, s.gameState.Lives)
	s.listener.OnHazardStruck(s.config.Player.InvincibleSeconds)
	if len(scattered) > 0 {
		s.listener.OnConvoyScattered(scattered)
	}
}
