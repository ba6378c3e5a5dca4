package entities

import (
	"fmt"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// NewHazardEntity 创建危险实体
//
// 危险实体以恒定速度直线横穿，TraverseSeconds 后自毁。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - pos: 出生位置（可见区域尾边，即水平最大边之外）
//   - velocity: 横穿速度
func NewHazardEntity(em *ecs.EntityManager, cfg *config.GameConfig, pos, velocity utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := newActor(em, components.KindHazard, pos.X, pos.Y)
	ecs.AddComponent(em, id, &components.VelocityComponent{Vector2: velocity})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hazard.Width,
		Height: cfg.Hazard.Height,
		Inset:  cfg.Hazard.HitInset,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: cfg.Hazard.TraverseSeconds,
	})
	return id, nil
}
