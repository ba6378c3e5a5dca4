package systems

import (
	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// ScatterSystem 播放散落动画：移动到随机点、旋转并缩小到 0，结束后删除实体
type ScatterSystem struct {
	entityManager *ecs.EntityManager
}

// NewScatterSystem 创建散落动画系统
func NewScatterSystem(em *ecs.EntityManager) *ScatterSystem {
	return &ScatterSystem{entityManager: em}
}

// Update 推进所有散落动画
func (s *ScatterSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.ScatterComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		sc, _ := ecs.GetComponent[*components.ScatterComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		sc.Elapsed += dt
		t := 1.0
		if sc.Duration > 0 {
			t = utils.Clamp(sc.Elapsed/sc.Duration, 0, 1)
		}

		p := utils.LerpVector(sc.From, sc.To, t)
		pos.X, pos.Y = p.X, p.Y

		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
			facing.Radians = sc.StartFacing + sc.Spin*t
		}
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scale.ScaleX = 1 - t
			scale.ScaleY = 1 - t
		}

		if t >= 1 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
