package sim

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/game"
	"github.com/decker502/conga/pkg/systems"
	"github.com/decker502/conga/pkg/utils"
)

// Simulation 追逐游戏的逐帧模拟核心
//
// 单线程使用：所有方法必须在同一个 goroutine（或调用方持有的锁）中调用。
// 每帧调用一次 Step，输入事件通过 SetSteeringTarget 排队，在下一次 Step 开始时生效。
type Simulation struct {
	config     *config.GameConfig
	rng        *rand.Rand
	dispatcher *game.Dispatcher

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	player        ecs.EntityID

	pendingTarget utils.Vector2
	hasPending    bool

	invincibility *systems.InvincibilitySystem
	steering      *systems.SteeringSystem
	movement      *systems.MovementSystem
	boundary      *systems.BoundarySystem
	camera        *systems.CameraSystem
	convoy        *systems.ConvoySystem
	collision     *systems.CollisionSystem
	scatter       *systems.ScatterSystem
	idle          *systems.IdleAnimationSystem
	lifetime      *systems.LifetimeSystem
	spawn         *systems.SpawnSystem
}

// NewSimulation 按配置创建模拟
//
// cfg 为 nil 时使用默认配置。过小的生成间隔被限制到下限，其余无效配置返回错误。
func NewSimulation(cfg *config.GameConfig) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	s := &Simulation{
		config:     cfg,
		rng:        newRand(cfg.Seed),
		dispatcher: &game.Dispatcher{},
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// build 创建实体管理器、系统和初始实体（玩家、背景图块）
func (s *Simulation) build() error {
	em := ecs.NewEntityManager()
	cfg := s.config

	s.entityManager = em
	s.gameState = game.NewGameState(cfg.Player.Lives, cfg.Convoy.WinThreshold)
	s.hasPending = false

	s.invincibility = systems.NewInvincibilitySystem(em)
	s.steering = systems.NewSteeringSystem(em)
	s.movement = systems.NewMovementSystem(em)
	s.boundary = systems.NewBoundarySystem(em)
	s.camera = systems.NewCameraSystem(em, cfg)
	s.convoy = systems.NewConvoySystem(em, cfg, s.rng)
	s.collision = systems.NewCollisionSystem(em, cfg, s.gameState, s.convoy, s.invincibility, s.dispatcher)
	s.scatter = systems.NewScatterSystem(em)
	s.idle = systems.NewIdleAnimationSystem(em)
	s.lifetime = systems.NewLifetimeSystem(em)
	s.spawn = systems.NewSpawnSystem(em, cfg, s.rng)

	if _, err := entities.NewBackgroundTiles(em, cfg); err != nil {
		return fmt.Errorf("failed to create background: %w", err)
	}
	player, err := entities.NewPlayerEntity(em, cfg)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	s.player = player
	return nil
}

// Reset 以同一配置重新开始一局，已注册的监听器保留
func (s *Simulation) Reset() {
	if s.config.Seed != 0 {
		s.rng.Seed(s.config.Seed)
	}
	if err := s.build(); err != nil {
		// 配置在构造时已验证，这里只可能是编程错误
		log.Printf("[Simulation] ERROR: reset failed: %v", err)
		return
	}
	log.Printf("[Simulation] Reset")
}

// AddListener 注册通知监听器（Step 内同步回调，不能阻塞）
func (s *Simulation) AddListener(l game.EventListener) {
	s.dispatcher.Add(l)
}

// SetSteeringTarget 排队新的转向目标，下一次 Step 开始时生效
// 两次 Step 之间多次调用只保留最后一次；非有限坐标被忽略
func (s *Simulation) SetSteeringTarget(target utils.Vector2) {
	if !target.IsFinite() {
		return
	}
	s.pendingTarget = target
	s.hasPending = true
}

// SetSpawnInterval 运行时修改生成间隔（自动限制到最小值）
func (s *Simulation) SetSpawnInterval(kind components.ActorKind, interval float64) {
	s.spawn.SetSpawnInterval(kind, interval)
}

// Config 当前配置
func (s *Simulation) Config() *config.GameConfig {
	return s.config
}

// PlayerID 玩家实体ID
func (s *Simulation) PlayerID() ecs.EntityID {
	return s.player
}

// Phase 当前游戏阶段
func (s *Simulation) Phase() game.Phase {
	return s.gameState.Phase
}

// Result 当前游戏状态的副本（终态时用于统计）
func (s *Simulation) Result() game.GameState {
	return *s.gameState
}

// VisibleRect 当前镜头可见区域（世界坐标）
func (s *Simulation) VisibleRect() utils.Rect {
	return s.camera.VisibleRect()
}

// EntityManager 暴露实体管理器（测试与调试用，调用方不得在 Step 之外修改）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// SanitizeDelta 非有限值或负数的帧间隔按 0 处理
func SanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

// Step 推进一帧
//
// 顺序: 帧间隔 → 转向/积分 → 边界反弹 → 镜头 → 车队 → 碰撞 → 状态转换 → 计时器。
// 进入终态后只累计时间，世界保持冻结。
func (s *Simulation) Step(dt float64) {
	dt = SanitizeDelta(dt)
	s.gameState.ElapsedTime += dt

	if s.gameState.IsOver() {
		s.hasPending = false
		return
	}

	if s.hasPending {
		s.steering.SetTarget(s.player, s.pendingTarget)
		s.hasPending = false
	}

	s.invincibility.Update(dt)

	bounds := s.camera.VisibleRect()
	s.steering.Update(dt)
	s.movement.Update(dt)
	s.boundary.Update(bounds)

	s.camera.Update(dt)

	s.convoy.Update(dt, s.playerPosition())

	s.collision.Update(s.player)
	if phase, changed := s.gameState.Evaluate(s.convoy.Len()); changed {
		s.enterTerminal(phase)
		s.entityManager.RemoveMarkedEntities()
		return
	}

	s.scatter.Update(dt)
	s.idle.Update(dt)
	s.lifetime.Update(dt)
	s.spawn.Update(dt, s.camera.VisibleRect())

	s.entityManager.RemoveMarkedEntities()
}

func (s *Simulation) enterTerminal(phase game.Phase) {
	s.spawn.SetEnabled(false)
	switch phase {
	case game.PhaseWon:
		s.convoy.RemoveLinkActors()
		log.Printf("[Simulation] Convoy of %d reached, game won", s.convoy.Len())
		s.dispatcher.OnGameWon()
	case game.PhaseLost:
		log.Printf("[Simulation] Out of lives, game lost")
		s.dispatcher.OnGameLost()
	}
}

func (s *Simulation) playerPosition() utils.Vector2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return utils.Vector2{}
	}
	return pos.Vector2
}
