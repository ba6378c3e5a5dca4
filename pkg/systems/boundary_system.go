package systems

import (
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// Reflect 在边界上反弹速度
//
// 每个轴独立判断：位置 <= 最小值或 >= 最大值时取反该轴速度分量。
func Reflect(position, velocity utils.Vector2, bounds utils.Rect) utils.Vector2 {
	if position.X <= bounds.MinX() || position.X >= bounds.MaxX() {
		velocity.X = -velocity.X
	}
	if position.Y <= bounds.MinY() || position.Y >= bounds.MaxY() {
		velocity.Y = -velocity.Y
	}
	return velocity
}

// ClampLeadingEdge 可见区域前沿（水平最小边）的特殊处理
//
// 位置越过左边界时吸附到边界上，并强制水平速度非负，
// 防止镜头把边界推过静止的角色时角色卡在边界外。
// 返回是否发生了吸附。
func ClampLeadingEdge(position, velocity utils.Vector2, bounds utils.Rect) (utils.Vector2, utils.Vector2, bool) {
	if position.X > bounds.MinX() {
		return position, velocity, false
	}
	position.X = bounds.MinX()
	velocity.X = math.Abs(velocity.X)
	return position, velocity, true
}

// BoundarySystem 让带转向组件的角色在可见区域内反弹
type BoundarySystem struct {
	entityManager *ecs.EntityManager
}

// NewBoundarySystem 创建边界系统
func NewBoundarySystem(em *ecs.EntityManager) *BoundarySystem {
	return &BoundarySystem{entityManager: em}
}

// Update 按给定边界处理反弹
// bounds 为本帧的镜头相对可见区域（静态世界传入固定的可玩区域即可）
func (s *BoundarySystem) Update(bounds utils.Rect) {
	entities := ecs.GetEntitiesWith3[
		*components.SteeringComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		p, v, clamped := ClampLeadingEdge(pos.Vector2, vel.Vector2, bounds)
		if clamped {
			// 水平方向已处理，只反弹垂直方向
			v.Y = Reflect(p, v, bounds).Y
		} else {
			v = Reflect(p, v, bounds)
		}
		pos.Vector2 = p
		vel.Vector2 = v
	}
}
