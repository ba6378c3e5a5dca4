package components

import "github.com/decker502/conga/pkg/utils"

// SteeringComponent 玩家的转向状态
type SteeringComponent struct {
	Target      utils.Vector2 // 当前目标点（世界坐标）
	HasTarget   bool          // 是否存在未到达的目标
	MaxSpeed    float64       // 移动速度（像素/秒）
	RotateSpeed float64       // 最大转向角速度（弧度/秒）
}

// InvincibilityComponent 无敌窗口计时
// 无敌布尔值本身存放在 ActorComponent.Invincible
type InvincibilityComponent struct {
	Duration   float64 // 无敌窗口总时长（秒）
	Remaining  float64 // 剩余时长（秒）
	BlinkCount int     // 窗口内闪烁次数
}
