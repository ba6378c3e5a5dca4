package components

import "github.com/decker502/conga/pkg/utils"

// PositionComponent 实体的世界坐标（中心点）
type PositionComponent struct {
	utils.Vector2
}

// VelocityComponent 实体的速度（像素/秒）
type VelocityComponent struct {
	utils.Vector2
}

// FacingComponent 实体朝向（弧度）
type FacingComponent struct {
	Radians float64
}
