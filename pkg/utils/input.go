// Package utils 提供通用工具函数
package utils

// PointerTracker 把逐帧的指针状态转换成“目标点”事件
//
// 按下的那一帧和按住拖动到新位置时各产生一次事件，
// 按住不动时不重复产生，松开后重置。
type PointerTracker struct {
	held         bool
	lastX, lastY int
}

// Update 输入本帧的指针状态，返回是否产生新目标以及目标的屏幕坐标
func (pt *PointerTracker) Update(pressed bool, x, y int) (bool, int, int) {
	if !pressed {
		pt.held = false
		return false, 0, 0
	}

	if pt.held && x == pt.lastX && y == pt.lastY {
		return false, 0, 0
	}
	pt.held = true
	pt.lastX, pt.lastY = x, y
	return true, x, y
}

// IsHeld 指针是否处于按住状态
func (pt *PointerTracker) IsHeld() bool {
	return pt.held
}

// Reset 清除按住状态
func (pt *PointerTracker) Reset() {
	pt.held = false
	pt.lastX, pt.lastY = 0, 0
}
