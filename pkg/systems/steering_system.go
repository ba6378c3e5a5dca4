package systems

import (
	"math"

	"github.com/decker502/conga/pkg/components"
	"github.com/decker502/conga/pkg/ecs"
	"github.com/decker502/conga/pkg/utils"
)

// Seek 计算朝目标点移动的速度
//
// 方向 = normalize(target - position)，速度大小为 maxSpeed。
// 偏移为零时返回零速度（不会产生 NaN）。
func Seek(target, position utils.Vector2, maxSpeed float64) utils.Vector2 {
	direction := target.Sub(position).Normalized()
	velocity := direction.Scale(maxSpeed)
	if !velocity.IsFinite() {
		return utils.Vector2{}
	}
	return velocity
}

// Integrate 按速度和时间推进位置: position + velocity * dt
func Integrate(position, velocity utils.Vector2, dt float64) utils.Vector2 {
	return position.Add(velocity.Scale(dt))
}

// RotateToward 以有限角速度将朝向转向目标方向
//
// 每步最多转动 maxRadiansPerSec * dt，且不会越过目标方向。
func RotateToward(facing, heading, maxRadiansPerSec, dt float64) float64 {
	diff := utils.ShortestAngleBetween(facing, heading)
	step := math.Min(maxRadiansPerSec*dt, math.Abs(diff))
	return facing + step*utils.Sign(diff)
}

// HasArrived 判断本帧是否到达目标
// 本帧移动距离 >= 剩余距离即视为到达
func HasArrived(position, velocity, target utils.Vector2, dt float64) bool {
	return velocity.Scale(dt).Length() >= target.Sub(position).Length()
}

// SteeringSystem 处理玩家的点击转向、积分移动和朝向旋转
type SteeringSystem struct {
	entityManager *ecs.EntityManager
}

// NewSteeringSystem 创建转向系统
func NewSteeringSystem(em *ecs.EntityManager) *SteeringSystem {
	return &SteeringSystem{entityManager: em}
}

// SetTarget 为实体设置新的转向目标，并立即按当前位置重新计算速度
func (s *SteeringSystem) SetTarget(id ecs.EntityID, target utils.Vector2) {
	steer, ok := ecs.GetComponent[*components.SteeringComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !ok {
		return
	}
	if !target.IsFinite() {
		return
	}

	steer.Target = target
	steer.HasTarget = true
	vel.Vector2 = Seek(target, pos.Vector2, steer.MaxSpeed)
}

// Update 推进所有带转向组件的实体
//
// 有目标且本帧可以到达时直接吸附到目标点并清零速度，
// 否则按速度积分位置，并把朝向转向速度方向。
func (s *SteeringSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[
		*components.SteeringComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		steer, _ := ecs.GetComponent[*components.SteeringComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if !vel.IsFinite() {
			vel.Vector2 = utils.Vector2{}
		}

		if steer.HasTarget && HasArrived(pos.Vector2, vel.Vector2, steer.Target, dt) {
			pos.Vector2 = steer.Target
			vel.Vector2 = utils.Vector2{}
			steer.HasTarget = false
			continue
		}

		pos.Vector2 = Integrate(pos.Vector2, vel.Vector2, dt)

		if vel.IsZero() {
			continue
		}
		if facing, ok := ecs.GetComponent[*components.FacingComponent](s.entityManager, id); ok {
			facing.Radians = RotateToward(facing.Radians, vel.Angle(), steer.RotateSpeed, dt)
		}
	}
}

// MovementSystem 匀速移动没有转向组件的实体（危险实体横穿）
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建匀速移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 按速度积分位置
func (s *MovementSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range entities {
		if ecs.HasComponent[*components.SteeringComponent](s.entityManager, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.Vector2 = Integrate(pos.Vector2, vel.Vector2, dt)
	}
}
