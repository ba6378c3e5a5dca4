package components

import "github.com/decker502/conga/pkg/utils"

// ConvoyLinkComponent 车队节点的跳跃移动状态
//
// 节点只在上一次跳跃完成后才发起新的跳跃（离散跳步，而非连续追赶），
// 因此队列呈现一节一节的"康加舞"效果。
type ConvoyLinkComponent struct {
	HopVelocity  utils.Vector2 // 当前跳跃速度
	HopRemaining float64       // 当前跳跃剩余时间（秒），<= 0 表示空闲
}

// ScatterComponent 被撞散的车队节点的散落动画
// 动画期间节点旋转、移动到随机位置并缩小到 0，结束后实体被删除
type ScatterComponent struct {
	From        utils.Vector2
	To          utils.Vector2
	StartFacing float64
	Spin        float64 // 整个动画的总旋转量（弧度）
	Elapsed     float64
	Duration    float64
}

// IdleAnimationComponent 可捕获实体的装饰性待机动画（出现缩放 + 摆动）
// 被捕获时移除
type IdleAnimationComponent struct {
	Elapsed       float64
	AppearSeconds float64 // 从 0 缩放到 1 的时长
	WigglePeriod  float64 // 摆动周期（秒）
	WiggleAngle   float64 // 摆动幅度（弧度）
}
