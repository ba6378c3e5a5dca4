package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/entities"
	"github.com/decker502/conga/pkg/utils"
)

// SpawnSystem 按固定间隔生成可捕获实体和危险实体
//
// 两个计时器相互独立。计时器触发后累积时间重置为 0（不保留余量），
// 一帧延迟不会导致补发。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
	timers        []*components.SpawnTimer
	enabled       bool
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（提供生成间隔和实体尺寸）
//   - rng: 随机数源（固定种子时生成位置可复现）
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized with capture interval=%.2fs, hazard interval=%.2fs",
		cfg.Capture.SpawnInterval, cfg.Hazard.SpawnInterval)
	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		timers: []*components.SpawnTimer{
			{Kind: components.KindCapture, Interval: config.ClampSpawnInterval(cfg.Capture.SpawnInterval)},
			{Kind: components.KindHazard, Interval: config.ClampSpawnInterval(cfg.Hazard.SpawnInterval)},
		},
		enabled: true,
	}
}

// SetEnabled 启用或暂停生成
func (s *SpawnSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// SetSpawnInterval 修改某类实体的生成间隔（限制到不低于 MinSpawnInterval）
func (s *SpawnSystem) SetSpawnInterval(kind components.ActorKind, interval float64) {
	if t := s.timer(kind); t != nil {
		t.Interval = config.ClampSpawnInterval(interval)
	}
}

// Timer 返回某类实体的计时器（只读用途），不存在时返回 nil
func (s *SpawnSystem) Timer(kind components.ActorKind) *components.SpawnTimer {
	return s.timer(kind)
}

func (s *SpawnSystem) timer(kind components.ActorKind) *components.SpawnTimer {
	for _, t := range s.timers {
		if t.Kind == kind {
			return t
		}
	}
	return nil
}

// Update 推进计时器，到期时生成实体
//
// 参数:
//   - dt: 帧间隔
//   - visible: 当前镜头相对可见区域
//
// 返回:
//   - []ecs.EntityID: 本帧生成的实体
func (s *SpawnSystem) Update(dt float64, visible utils.Rect) []ecs.EntityID {
	if !s.enabled {
		return nil
	}

	var spawned []ecs.EntityID
	for _, t := range s.timers {
		t.Accumulated += dt
		if t.Accumulated < t.Interval {
			continue
		}
		t.Accumulated = 0

		var (
			id  ecs.EntityID
			err error
		)
		switch t.Kind {
		case components.KindCapture:
			id, err = entities.NewCaptureEntity(s.entityManager, s.config, s.CapturePosition(visible))
		case components.KindHazard:
			pos, vel := s.HazardPlacement(visible)
			id, err = entities.NewHazardEntity(s.entityManager, s.config, pos, vel)
		default:
			continue
		}
		if err != nil {
			log.Printf("[SpawnSystem] WARNING: Failed to spawn %s: %v", t.Kind, err)
			continue
		}
		spawned = append(spawned, id)
	}
	return spawned
}

// CapturePosition 可见区域内的随机位置
func (s *SpawnSystem) CapturePosition(visible utils.Rect) utils.Vector2 {
	return utils.Vec2(
		visible.MinX()+s.rng.Float64()*visible.Width,
		visible.MinY()+s.rng.Float64()*visible.Height,
	)
}

// HazardPlacement 危险实体的出生位置和横穿速度
//
// 出生于可见区域尾边（水平最大边）之外半个身位，垂直位置在可玩带内随机；
// 在 TraverseSeconds 内匀速横穿整个可见宽度后完全离开另一侧。
func (s *SpawnSystem) HazardPlacement(visible utils.Rect) (utils.Vector2, utils.Vector2) {
	w := s.config.Hazard.Width
	h := s.config.Hazard.Height

	minY := visible.MinY() + h/2
	maxY := visible.MaxY() - h/2
	y := visible.Center().Y
	if maxY > minY {
		y = minY + s.rng.Float64()*(maxY-minY)
	}

	pos := utils.Vec2(visible.MaxX()+w/2, y)
	speed := (visible.Width + w) / s.config.Hazard.TraverseSeconds
	return pos, utils.Vec2(-speed, 0)
}
