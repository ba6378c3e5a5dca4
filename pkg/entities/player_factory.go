package entities

import (
	"fmt"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
//
// 玩家在配置的起始位置出生，初始静止，没有转向目标。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID
//   - error: 参数为 nil 时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := newActor(em, components.KindPlayer, cfg.Player.StartX, cfg.Player.StartY)
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	ecs.AddComponent(em, id, &components.SteeringComponent{
		MaxSpeed:    cfg.Player.MoveSpeed,
		RotateSpeed: cfg.Player.RotateSpeed,
	})
	ecs.AddComponent(em, id, &components.InvincibilityComponent{
		Duration:   cfg.Player.InvincibleSeconds,
		BlinkCount: cfg.Player.BlinkCount,
	})
	return id, nil
}
