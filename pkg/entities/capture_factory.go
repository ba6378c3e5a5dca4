package entities

import (
	"fmt"
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/config"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

const (
	// CaptureWigglePeriod 待机摆动周期（秒）
	CaptureWigglePeriod = 1.0
	// CaptureWiggleAngle 待机摆动幅度（弧度）
	CaptureWiggleAngle = math.Pi / 16
)

// NewCaptureEntity 创建可捕获实体
//
// 可捕获实体没有速度，只播放装饰性的出现/摆动动画，原地等待被捕获；
// 配置了 Lifetime 时超时自动消失。
func NewCaptureEntity(em *ecs.EntityManager, cfg *config.GameConfig, pos utils.Vector2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := newActor(em, components.KindCapture, pos.X, pos.Y)
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Capture.Width,
		Height: cfg.Capture.Height,
	})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 0, ScaleY: 0})
	ecs.AddComponent(em, id, &components.IdleAnimationComponent{
		AppearSeconds: cfg.Capture.AppearSeconds,
		WigglePeriod:  CaptureWigglePeriod,
		WiggleAngle:   CaptureWiggleAngle,
	})
	if cfg.Capture.Lifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			MaxLifetime: cfg.Capture.Lifetime,
		})
	}
	return id, nil
}
